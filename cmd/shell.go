package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/tally"
	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// sentinel terminates the line item entry of a sale, case-insensitively.
const sentinel = "done"

const menu = `
Shop Tally
  1. View inventory
  2. Add a product
  3. Process a sale
  4. View sales report
  5. Exit
Choose an option (1-5): `

type shellCmd struct {
	in  io.Reader // defaults to os.Stdin
	out io.Writer // defaults to os.Stdout
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run the interactive menu" }
func (*shellCmd) Usage() string {
	return `tly shell

  Presents a numbered menu to view the inventory, add products, process
  sales and view the sales report, looping until exit is chosen. During
  sale entry, type '` + sentinel + `' to finish the line items.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}

	inv, ledger, err := OpenStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := runShell(c.in, c.out, inv, ledger, *displayCurrency); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runShell loops over the menu until exit is chosen or the input ends.
// It performs no business validation itself: adds and sales are
// delegated to the inventory and the ledger, and their errors are
// printed before returning to the menu.
func runShell(in io.Reader, out io.Writer, inv *tally.Inventory, ledger *tally.Ledger, currency string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, menu)
		if !scanner.Scan() {
			// End of input exits like option 5.
			fmt.Fprintln(out)
			return scanner.Err()
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			fmt.Fprint(out, renderer.InventoryMarkdown(inv, currency))
		case "2":
			shellAddProduct(scanner, out, inv)
		case "3":
			shellProcessSale(scanner, out, ledger, currency)
		case "4":
			fmt.Fprint(out, renderer.SalesMarkdown(ledger, currency))
		case "5":
			fmt.Fprintln(out, "Bye.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice, enter a number between 1 and 5.")
		}
	}
}

func shellAddProduct(scanner *bufio.Scanner, out io.Writer, inv *tally.Inventory) {
	id, ok := prompt(scanner, out, "Product id: ")
	if !ok {
		return
	}
	name, ok := prompt(scanner, out, "Product name: ")
	if !ok {
		return
	}
	price, ok := promptDecimal(scanner, out, "Unit price: ")
	if !ok {
		return
	}
	quantity, ok := promptInt(scanner, out, "Stock quantity: ")
	if !ok {
		return
	}

	p, err := tally.NewProduct(id, name, price, quantity)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	if err := inv.Add(p); err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	fmt.Fprintf(out, "Added product %q (%s) with %d in stock.\n", p.ID, p.Name, p.Quantity)
}

func shellProcessSale(scanner *bufio.Scanner, out io.Writer, ledger *tally.Ledger, currency string) {
	saleID, ok := prompt(scanner, out, "Sale id (leave empty to generate one): ")
	if !ok {
		return
	}
	if saleID == "" {
		saleID = uuid.NewString()
	}

	var items []tally.SaleItem
	for {
		id, ok := prompt(scanner, out, "Product id (or '"+sentinel+"' to finish): ")
		if !ok {
			return
		}
		if strings.EqualFold(id, sentinel) {
			break
		}
		quantity, ok := promptInt(scanner, out, "Quantity: ")
		if !ok {
			return
		}
		items = append(items, tally.SaleItem{ProductID: id, Quantity: quantity})
	}

	receipt, err := ledger.ProcessSale(saleID, items)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	fmt.Fprint(out, renderer.ReceiptMarkdown(saleID, receipt, currency))
}

// prompt prints a label and returns the next input line, trimmed.
// It returns false when the input is exhausted.
func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		fmt.Fprintln(out)
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

// promptInt re-prompts until the input parses as an integer, so a typo
// never aborts the session.
func promptInt(scanner *bufio.Scanner, out io.Writer, label string) (int, bool) {
	for {
		s, ok := prompt(scanner, out, label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintf(out, "Error: %q is not a whole number, try again.\n", s)
			continue
		}
		return n, true
	}
}

// promptDecimal re-prompts until the input parses as a decimal number.
func promptDecimal(scanner *bufio.Scanner, out io.Writer, label string) (decimal.Decimal, bool) {
	for {
		s, ok := prompt(scanner, out, label)
		if !ok {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			fmt.Fprintf(out, "Error: %q is not a number, try again.\n", s)
			continue
		}
		return d, true
	}
}
