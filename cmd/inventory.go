package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

type inventoryCmd struct{}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "display the product catalog" }
func (*inventoryCmd) Usage() string {
	return `tly inventory

  Displays all products in the catalog with their price and current
  stock, in the order they were added.
`
}

func (*inventoryCmd) SetFlags(f *flag.FlagSet) {}

func (*inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.InventoryMarkdown(inv, *displayCurrency))
	return subcommands.ExitSuccess
}
