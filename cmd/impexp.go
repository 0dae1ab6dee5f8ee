package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tally"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a supplier feed into the catalog" }
func (*importCmd) Usage() string {
	return `tly import -file <feed.json>

  Reads a supplier feed (a JSON document with a 'products' list) and
  applies it to the catalog: unknown products are added, and the stock
  of known products is set to the feed count.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Supplier feed file (required)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file flag is required.")
		return subcommands.ExitUsageError
	}

	feed, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening feed %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer feed.Close()

	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	res, err := tally.ImportFeed(feed, inv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %q: %d added, %d restocked.\n", c.file, res.Added, res.Updated)
	return subcommands.ExitSuccess
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the catalog in the interchange format" }
func (*exportCmd) Usage() string {
	return `tly export [-o <file>]

  Writes the catalog as JSONL, one product per line, to the given file
  or to standard output. The output can be merged into another catalog.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to standard output)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := OpenInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if c.output != "" {
		w, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q for writing: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
	}

	if err := tally.ExportInventory(w, inv); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
