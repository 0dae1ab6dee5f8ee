package tally

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export formats.
// Import reads a supplier feed; export should remain human readable,
// single file, and easy to merge into another catalog.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// feedProductsPath locates the product list inside a supplier feed.
const feedProductsPath = "$.products[*]"

// FeedResult reports what a feed import did to the catalog.
type FeedResult struct {
	Added   int // products created
	Updated int // products whose stock was set to the feed count
}

// ImportFeed reads a supplier feed from r and applies it to the
// inventory.
//
// The feed is a single JSON document whose 'products' property holds a
// list of objects with properties 'id', 'name', 'price' (number) and
// 'quantity' (number). Unknown products are added to the catalog; for
// known products the feed count is authoritative and the stock quantity
// is set to it.
func ImportFeed(r io.Reader, inv *Inventory) (FeedResult, error) {
	var res FeedResult

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return res, fmt.Errorf("cannot parse supplier feed: %w", err)
	}

	jval, err := jsonpath.Get(feedProductsPath, jobj)
	if err != nil {
		return res, fmt.Errorf("cannot find products in supplier feed: %q: %w", feedProductsPath, err)
	}
	// because jsonpath may return a single answer instead of a list of one:
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	for _, jitem := range jlist {
		jproduct, ok := jitem.(map[string]any)
		if !ok {
			return res, fmt.Errorf("format error in supplier feed: product entry %v is not an object", jitem)
		}
		id, _ := jproduct["id"].(string)
		name, _ := jproduct["name"].(string)
		price, ok := jproduct["price"].(float64)
		if !ok {
			return res, fmt.Errorf("format error in supplier feed: product %q has no numeric price", id)
		}
		quantity, ok := jproduct["quantity"].(float64)
		if !ok {
			return res, fmt.Errorf("format error in supplier feed: product %q has no numeric quantity", id)
		}

		if inv.Has(id) {
			if err := inv.SetQuantity(id, int(quantity)); err != nil {
				return res, err
			}
			res.Updated++
			continue
		}
		p, err := NewProduct(id, name, decimal.NewFromFloat(price), int(quantity))
		if err != nil {
			return res, fmt.Errorf("format error in supplier feed: %w", err)
		}
		if err := inv.Add(p); err != nil {
			return res, err
		}
		res.Added++
	}
	return res, nil
}

// ExportInventory exports the catalog to 'w' in the import/export format.
//
// The format is a JSONL file, where each line is a JSON object
// representing a product, with properties 'id', 'name', 'price' and
// 'quantity'. Lines follow the catalog's insertion order.
func ExportInventory(w io.Writer, inv *Inventory) error {
	type jproduct struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		Quantity int             `json:"quantity"`
	}

	for p := range inv.Products() {
		line, err := json.Marshal(jproduct{ID: p.ID, Name: p.Name, Price: p.Price, Quantity: p.Quantity})
		if err != nil {
			return fmt.Errorf("cannot export product %q: %w", p.ID, err)
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}

// ImportInventory imports products from 'r' in the import/export format
// into a new in-memory inventory. Blank lines are skipped.
func ImportInventory(r io.Reader) (*Inventory, error) {
	type jproduct struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		Quantity int             `json:"quantity"`
	}

	inv := NewInventory()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var jp jproduct
		if err := json.Unmarshal([]byte(line), &jp); err != nil {
			return nil, fmt.Errorf("cannot parse line for product import format: %q: %w", line, err)
		}
		p, err := NewProduct(jp.ID, jp.Name, jp.Price, jp.Quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid product on line %q: %w", line, err)
		}
		if err := inv.Add(p); err != nil {
			return nil, err
		}
	}
	return inv, scanner.Err()
}
