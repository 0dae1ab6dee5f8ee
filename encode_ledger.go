package tally

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

// ledgerHeader is the fixed column order of the sales file. There is one
// row per line item, not per sale, so sale_id values may repeat.
var ledgerHeader = []string{"sale_id", "product_id", "product_name", "quantity_sold", "total_price"}

// EncodeLedger writes all recorded sale lines to w as a CSV table, in
// insertion order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return err
	}
	for line := range l.Lines() {
		row := []string{line.SaleID, line.ProductID, line.ProductName,
			strconv.Itoa(line.Quantity), line.Total.String()}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeLedger reads a CSV sales table from r and returns a new in-memory
// ledger, not yet bound to an inventory.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(ledgerHeader)

	header, err := cr.Read()
	if err == io.EOF {
		// An empty file is an empty ledger.
		return NewLedger(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read sales header: %w", err)
	}
	if !slices.Equal(header, ledgerHeader) {
		return nil, fmt.Errorf("format error: sales header is %q, want %q", header, ledgerHeader)
	}

	l := NewLedger(nil)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return l, nil
		}
		if err != nil {
			return nil, fmt.Errorf("format error in sales: %w", err)
		}

		quantity, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("format error in sales row %q: invalid quantity: %w", row, err)
		}
		if quantity <= 0 {
			return nil, fmt.Errorf("format error in sales row %q: quantity %d is not positive", row, quantity)
		}
		total, err := decimal.NewFromString(row[4])
		if err != nil {
			return nil, fmt.Errorf("format error in sales row %q: invalid total: %w", row, err)
		}
		l.lines = append(l.lines, SaleLine{
			SaleID:      row[0],
			ProductID:   row[1],
			ProductName: row[2],
			Quantity:    quantity,
			Total:       total,
		})
	}
}
