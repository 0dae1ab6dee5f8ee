package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restockCmd struct {
	id       string
	quantity int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "set the stock quantity of a product" }
func (*restockCmd) Usage() string {
	return `tly restock -id <id> -qty <quantity>

  Sets the absolute stock quantity of an existing product. The quantity
  is the new stock count, not a delta.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id (required)")
	f.IntVar(&c.quantity, "qty", -1, "New stock quantity (required)")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.quantity < 0 {
		fmt.Fprintln(os.Stderr, "Error: -id and a non-negative -qty are required.")
		return subcommands.ExitUsageError
	}

	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := inv.SetQuantity(c.id, c.quantity); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Product %q stock set to %d.\n", c.id, c.quantity)
	return subcommands.ExitSuccess
}
