package tally

import "errors"

// Sentinel errors returned by the inventory and the sales ledger. They are
// always wrapped with the offending product or sale id, so callers should
// match with errors.Is.
var (
	// ErrDuplicateProduct is returned when adding a product whose id is
	// already in the catalog.
	ErrDuplicateProduct = errors.New("duplicate product")

	// ErrProductNotFound is returned when an operation references a
	// product id absent from the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a sale requests more units
	// than the catalog holds. The whole sale is rejected.
	ErrInsufficientStock = errors.New("insufficient stock")
)
