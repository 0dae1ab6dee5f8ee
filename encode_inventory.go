package tally

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

// This file contains the code to persist the product catalog as a CSV
// table with a fixed header row. Numeric fields are stored as text and
// parsed on load. The format is human-readable and trivial to inspect
// with any spreadsheet tool.

// inventoryHeader is the fixed column order of the catalog file.
var inventoryHeader = []string{"product_id", "product_name", "price", "quantity"}

// EncodeInventory writes the whole catalog to w as a CSV table, one row
// per product, in the inventory's insertion order.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(inventoryHeader); err != nil {
		return err
	}
	for p := range inv.Products() {
		row := []string{p.ID, p.Name, p.Price.String(), strconv.Itoa(p.Quantity)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeInventory reads a CSV catalog table from r and returns a new
// in-memory inventory. The header row must match the catalog format.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(inventoryHeader)

	header, err := cr.Read()
	if err == io.EOF {
		// An empty file is an empty catalog.
		return NewInventory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog header: %w", err)
	}
	if !slices.Equal(header, inventoryHeader) {
		return nil, fmt.Errorf("format error: catalog header is %q, want %q", header, inventoryHeader)
	}

	inv := NewInventory()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return inv, nil
		}
		if err != nil {
			return nil, fmt.Errorf("format error in catalog: %w", err)
		}

		price, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, fmt.Errorf("format error in catalog row %q: invalid price: %w", row, err)
		}
		quantity, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("format error in catalog row %q: invalid quantity: %w", row, err)
		}
		p, err := NewProduct(row[0], row[1], price, quantity)
		if err != nil {
			return nil, fmt.Errorf("format error in catalog row %q: %w", row, err)
		}
		if inv.Has(p.ID) {
			return nil, fmt.Errorf("format error in catalog: product %q is already defined", p.ID)
		}
		inv.order = append(inv.order, p.ID)
		inv.index[p.ID] = &p
	}
}
