package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tally"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	id       string
	name     string
	price    string
	quantity int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new product to the catalog" }
func (*addCmd) Usage() string {
	return `tly add -id <id> -name <name> -price <price> [-qty <quantity>]

  Adds a new product to the catalog:
  - id: The unique product id (e.g., "101"). Must not already exist.
  - name: The display name of the product.
  - price: The non-negative unit price (e.g., "19.99").
  - qty: The initial stock quantity (defaults to 0).
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Unique product id (required)")
	f.StringVar(&c.name, "name", "", "Product display name (required)")
	f.StringVar(&c.price, "price", "", "Unit price (required)")
	f.IntVar(&c.quantity, "qty", 0, "Initial stock quantity")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -id, -name and -price flags are required.")
		return subcommands.ExitUsageError
	}

	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	p, err := tally.NewProduct(c.id, c.name, price, c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := inv.Add(p); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added product %q (%s) with %d in stock.\n", p.ID, p.Name, p.Quantity)
	return subcommands.ExitSuccess
}
