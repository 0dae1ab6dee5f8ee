package tally

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log"
	"os"

	"github.com/shopspring/decimal"
)

// SaleItem is one requested line of a sale: a product id and the number
// of units to sell.
type SaleItem struct {
	ProductID string
	Quantity  int
}

// SaleLine is one recorded line of a committed sale. The product name and
// the total are denormalized snapshots taken at sale time; later catalog
// changes do not rewrite history.
type SaleLine struct {
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	Total       decimal.Decimal
}

// Ledger is the append-only record of all sale lines. It holds a
// reference to the inventory it decrements: the ledger reads and writes
// stock during sale processing, but the inventory remains the sole owner
// of the catalog.
//
// In a Ledger, lines are always in insertion order.
type Ledger struct {
	path  string // empty for a purely in-memory ledger
	inv   *Inventory
	lines []SaleLine
}

// NewLedger returns a new empty in-memory ledger selling from inv.
func NewLedger(inv *Inventory) *Ledger {
	return &Ledger{inv: inv, lines: make([]SaleLine, 0)}
}

// OpenLedger loads the sales file at path. A missing file is not an
// error: the ledger starts empty and the file is created on the first
// recorded sale.
func OpenLedger(path string, inv *Inventory) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, sales file %q does not exist, starting with an empty ledger", path)
		l := NewLedger(inv)
		l.path = path
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open sales file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read sales file %q: %w", path, err)
	}
	l.path = path
	l.inv = inv
	return l, nil
}

// Len returns the number of recorded sale lines.
func (l *Ledger) Len() int { return len(l.lines) }

// Lines iterates over all recorded sale lines in insertion order. Lines
// of the same sale share a SaleID and are contiguous.
func (l *Ledger) Lines() iter.Seq[SaleLine] {
	return func(yield func(SaleLine) bool) {
		for _, line := range l.lines {
			if !yield(line) {
				return
			}
		}
	}
}

// Total returns the grand total of all recorded sale lines.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.Total)
	}
	return total
}

// ProcessSale records a sale of the given items, decrementing stock.
//
// The sale is processed in two phases. The validation phase checks every
// item before any mutation: each product must exist, and the stock must
// cover the quantity requested across the whole sale, so a product id
// repeated within one sale is checked against the cumulative request. The
// commit phase then appends one ledger line per item, in the given order,
// and decrements the stock through the inventory. On any validation
// error, neither the ledger nor the inventory has changed.
//
// The appended lines are returned as a receipt. An empty item list is a
// no-op success and does not persist anything.
func (l *Ledger) ProcessSale(saleID string, items []SaleItem) ([]SaleLine, error) {
	if saleID == "" {
		return nil, fmt.Errorf("sale id is required")
	}
	if len(items) == 0 {
		return nil, nil
	}

	// Validation phase: no mutation.
	requested := make(map[string]int)
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("sale %q: product %q: quantity %d is not positive", saleID, item.ProductID, item.Quantity)
		}
		p, ok := l.inv.Get(item.ProductID)
		if !ok {
			return nil, fmt.Errorf("sale %q: product %q: %w", saleID, item.ProductID, ErrProductNotFound)
		}
		requested[item.ProductID] += item.Quantity
		if requested[item.ProductID] > p.Quantity {
			return nil, fmt.Errorf("sale %q: product %q: requested %d of %d in stock: %w",
				saleID, item.ProductID, requested[item.ProductID], p.Quantity, ErrInsufficientStock)
		}
	}

	// Commit phase: every item has been validated.
	receipt := make([]SaleLine, 0, len(items))
	for _, item := range items {
		p, _ := l.inv.Get(item.ProductID)
		line := SaleLine{
			SaleID:      saleID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			Total:       p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
		l.lines = append(l.lines, line)
		if err := l.inv.SetQuantity(p.ID, p.Quantity-item.Quantity); err != nil {
			return nil, fmt.Errorf("sale %q: cannot decrement stock: %w", saleID, err)
		}
		receipt = append(receipt, line)
	}

	// One ledger write per sale, not per line.
	if err := l.flush(); err != nil {
		return nil, err
	}
	return receipt, nil
}

// Save rewrites the whole sales file.
func (l *Ledger) Save() error {
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("cannot open sales file %q for writing: %w", l.path, err)
	}
	defer f.Close()
	if err := EncodeLedger(f, l); err != nil {
		return fmt.Errorf("cannot write sales file %q: %w", l.path, err)
	}
	return nil
}

func (l *Ledger) flush() error {
	if l.path == "" {
		return nil
	}
	return l.Save()
}
