// Package renderer builds the markdown views of the catalog and the
// sales ledger. All human-readable output of the `tly` tool goes through
// this package so that tables are formatted in a single place.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/tally"
	"github.com/shopspring/decimal"
)

// Amount formats a decimal amount for display in the given currency.
// Unknown currency codes fall back to USD.
func Amount(d decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	// go-money formats from the minor unit (e.g. cents).
	minor := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// InventoryMarkdown renders the product catalog as a markdown table, in
// the catalog's insertion order.
func InventoryMarkdown(inv *tally.Inventory, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Inventory\n\n")
	if inv.Len() == 0 {
		fmt.Fprintln(&b, "The catalog is empty.")
		return b.String()
	}
	fmt.Fprintln(&b, "| ID | Product | Price | In Stock |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for p := range inv.Products() {
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", p.ID, p.Name, Amount(p.Price, currency), p.Quantity)
	}
	return b.String()
}

// SalesMarkdown renders the full sales ledger as a markdown table, one
// row per line item, with a grand total. Rows of the same sale share a
// sale id and are contiguous.
func SalesMarkdown(l *tally.Ledger, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sales Report\n\n")
	if l.Len() == 0 {
		fmt.Fprintln(&b, "No sales recorded.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Sale | Product ID | Product | Qty | Total |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for line := range l.Lines() {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			line.SaleID, line.ProductID, line.ProductName, line.Quantity, Amount(line.Total, currency))
	}
	fmt.Fprintf(&b, "\n**Grand total: %s**\n", Amount(l.Total(), currency))
	return b.String()
}

// ReceiptMarkdown renders the lines appended by a single sale.
func ReceiptMarkdown(saleID string, lines []tally.SaleLine, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sale %s\n\n", saleID)
	if len(lines) == 0 {
		fmt.Fprintln(&b, "Nothing sold.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Product | Qty | Total |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	total := decimal.Zero
	for _, line := range lines {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", line.ProductName, line.Quantity, Amount(line.Total, currency))
		total = total.Add(line.Total)
	}
	fmt.Fprintf(&b, "\n**Total: %s**\n", Amount(total, currency))
	return b.String()
}
