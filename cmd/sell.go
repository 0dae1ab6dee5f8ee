package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/tally"
	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type sellCmd struct {
	saleID string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale and decrement stock" }
func (*sellCmd) Usage() string {
	return `tly sell [-id <saleID>] <productID>:<qty> [<productID>:<qty> ...]

  Records a sale of one or more line items. Every item is validated
  against the catalog before any stock is touched: an unknown product or
  an insufficient stock rejects the whole sale and changes nothing.
  Without -id, a sale id is generated.

Usage Example:
$ tly sell -id 1 102:2 101:3
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.saleID, "id", "", "Sale id grouping the line items (generated when empty)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	items, err := parseSaleItems(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one <productID>:<qty> item is required.")
		return subcommands.ExitUsageError
	}

	saleID := c.saleID
	if saleID == "" {
		saleID = uuid.NewString()
	}

	_, ledger, err := OpenStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	receipt, err := ledger.ProcessSale(saleID, items)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ReceiptMarkdown(saleID, receipt, *displayCurrency))
	return subcommands.ExitSuccess
}

// parseSaleItems parses command line arguments of the form
// "<productID>:<qty>" into sale items, preserving their order.
func parseSaleItems(args []string) ([]tally.SaleItem, error) {
	items := make([]tally.SaleItem, 0, len(args))
	for _, arg := range args {
		id, qty, ok := strings.Cut(arg, ":")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid item %q, want <productID>:<qty>", arg)
		}
		n, err := strconv.Atoi(qty)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in item %q: %w", arg, err)
		}
		items = append(items, tally.SaleItem{ProductID: id, Quantity: n})
	}
	return items, nil
}
