package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the sales ledger" }
func (*reportCmd) Usage() string {
	return `tly report

  Displays every recorded sale line in insertion order, one row per
  line item, with a grand total. Lines of the same sale share a sale id.
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (*reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, ledger, err := OpenStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SalesMarkdown(ledger, *displayCurrency))
	return subcommands.ExitSuccess
}
