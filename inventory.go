package tally

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log"
	"os"
)

// Inventory holds the product catalog, indexed by product id.
//
// Products keep their insertion order for display purposes; the order is
// not part of the data contract. When the inventory is bound to a file,
// every mutation rewrites the whole file (write-through): data volumes
// are small and there is never an in-memory-only window to lose.
type Inventory struct {
	path  string // empty for a purely in-memory inventory
	order []string
	index map[string]*Product
}

// NewInventory returns a new empty in-memory inventory.
func NewInventory() *Inventory {
	return &Inventory{
		order: make([]string, 0),
		index: make(map[string]*Product),
	}
}

// OpenInventory loads the catalog file at path. A missing file is not an
// error: the inventory starts empty and the file is created on the first
// mutation.
func OpenInventory(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, inventory file %q does not exist, starting with an empty catalog", path)
		inv := NewInventory()
		inv.path = path
		return inv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open inventory file %q: %w", path, err)
	}
	defer f.Close()

	inv, err := DecodeInventory(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read inventory file %q: %w", path, err)
	}
	inv.path = path
	return inv, nil
}

// Len returns the number of products in the catalog.
func (inv *Inventory) Len() int { return len(inv.order) }

// Has returns true if a product with this id is in the catalog.
func (inv *Inventory) Has(id string) bool {
	_, ok := inv.index[id]
	return ok
}

// Get returns a copy of the product with this id. Missing ids are
// reported by the boolean, never by an error.
func (inv *Inventory) Get(id string) (Product, bool) {
	p, ok := inv.index[id]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

// Add inserts a new product and persists the catalog. It returns
// ErrDuplicateProduct if the id is already taken, leaving the catalog
// unchanged.
func (inv *Inventory) Add(p Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if inv.Has(p.ID) {
		return fmt.Errorf("product %q: %w", p.ID, ErrDuplicateProduct)
	}
	inv.order = append(inv.order, p.ID)
	inv.index[p.ID] = &p
	return inv.flush()
}

// SetQuantity sets the absolute stock quantity of a product and persists
// the catalog. Callers compute the delta. It returns ErrProductNotFound
// for an unknown id, and rejects negative quantities.
func (inv *Inventory) SetQuantity(id string, quantity int) error {
	p, ok := inv.index[id]
	if !ok {
		return fmt.Errorf("product %q: %w", id, ErrProductNotFound)
	}
	if quantity < 0 {
		return fmt.Errorf("product %q: quantity %d is negative", id, quantity)
	}
	p.Quantity = quantity
	return inv.flush()
}

// Products iterates over all products in insertion order.
func (inv *Inventory) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, id := range inv.order {
			if !yield(*inv.index[id]) {
				return
			}
		}
	}
}

// Save rewrites the whole catalog file.
func (inv *Inventory) Save() error {
	f, err := os.Create(inv.path)
	if err != nil {
		return fmt.Errorf("cannot open inventory file %q for writing: %w", inv.path, err)
	}
	defer f.Close()
	if err := EncodeInventory(f, inv); err != nil {
		return fmt.Errorf("cannot write inventory file %q: %w", inv.path, err)
	}
	return nil
}

// flush persists the catalog when it is bound to a file.
func (inv *Inventory) flush() error {
	if inv.path == "" {
		return nil
	}
	return inv.Save()
}
