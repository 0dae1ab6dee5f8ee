package tally

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a single catalog entry: one sellable item and its current
// stock level. Products are never deleted; stock reaches zero instead.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal // unit price, non-negative
	Quantity int             // units in stock, non-negative
}

// NewProduct creates a product and checks its fields for consistency.
func NewProduct(id, name string, price decimal.Decimal, quantity int) (Product, error) {
	p := Product{ID: strings.TrimSpace(id), Name: strings.TrimSpace(name), Price: price, Quantity: quantity}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Validate checks the product invariants: a non-empty id and name, a
// non-negative price, and a non-negative stock quantity.
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product %q: name is required", p.ID)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %q: price %s is negative", p.ID, p.Price)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("product %q: quantity %d is negative", p.ID, p.Quantity)
	}
	return nil
}
