// Package cmd implements the CLI application to manage a shop's
// inventory and sales ledger.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tally"
	"github.com/google/subcommands"
)

// Commands lists all subcommands.
// A main package registers each of them on its commander.
var Commands = []subcommands.Command{
	&inventoryCmd{},
	&addCmd{},
	&restockCmd{},
	&sellCmd{},
	&reportCmd{},
	&importCmd{},
	&exportCmd{},
	&shellCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", "inventory.csv", "Path to the product catalog file (CSV format)")
var salesFile = flag.String("sales-file", "sales.csv", "Path to the sales ledger file (CSV format)")
var displayCurrency = flag.String("currency", "USD", "Currency code used to display prices and totals")

// OpenInventory is the central function to open the product catalog.
// A missing catalog file starts an empty catalog, created on first save.
func OpenInventory() (*tally.Inventory, error) {
	return tally.OpenInventory(*inventoryFile)
}

// OpenStores opens the product catalog and the sales ledger bound to it.
func OpenStores() (*tally.Inventory, *tally.Ledger, error) {
	inv, err := OpenInventory()
	if err != nil {
		return nil, nil, err
	}
	ledger, err := tally.OpenLedger(*salesFile, inv)
	if err != nil {
		return nil, nil, err
	}
	return inv, ledger, nil
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
