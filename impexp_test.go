package tally

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestImportFeed(t *testing.T) {
	inv := NewInventory()
	if err := inv.Add(Product{ID: "101", Name: "Soap", Price: decimal.NewFromInt(20), Quantity: 5}); err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}

	feed := `{
	  "supplier": "acme",
	  "products": [
	    {"id": "101", "name": "Soap", "price": 20, "quantity": 50},
	    {"id": "103", "name": "Toothpaste", "price": 3.5, "quantity": 12}
	  ]
	}`

	res, err := ImportFeed(strings.NewReader(feed), inv)
	if err != nil {
		t.Fatalf("ImportFeed() returned an unexpected error: %v", err)
	}
	if res.Added != 1 || res.Updated != 1 {
		t.Errorf("ImportFeed() = %+v, want 1 added and 1 updated", res)
	}

	// The feed count is authoritative for the known product.
	if got, _ := inv.Get("101"); got.Quantity != 50 {
		t.Errorf("stock of 101 = %d, want 50", got.Quantity)
	}
	// The unknown product was added as described by the feed.
	got, ok := inv.Get("103")
	if !ok {
		t.Fatal("product 103 was not added")
	}
	if got.Name != "Toothpaste" || !got.Price.Equal(decimal.RequireFromString("3.5")) || got.Quantity != 12 {
		t.Errorf("product 103 = %+v, want Toothpaste at 3.5 with 12 in stock", got)
	}
}

func TestImportFeed_badInput(t *testing.T) {
	testCases := []struct {
		name string
		feed string
	}{
		{"not json", "product_id,product_name\n"},
		{"no products", `{"supplier": "acme"}`},
		{"missing price", `{"products": [{"id": "101", "name": "Soap", "quantity": 1}]}`},
		{"missing quantity", `{"products": [{"id": "101", "name": "Soap", "price": 1}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportFeed(strings.NewReader(tc.feed), NewInventory()); err == nil {
				t.Error("ImportFeed() should fail")
			}
		})
	}
}

func TestExportImportInventory_roundTrip(t *testing.T) {
	inv := NewInventory()
	products := []Product{
		{ID: "101", Name: "Soap", Price: decimal.RequireFromString("19.99"), Quantity: 50},
		{ID: "102", Name: "Shampoo", Price: decimal.NewFromInt(120), Quantity: 30},
	}
	for _, p := range products {
		if err := inv.Add(p); err != nil {
			t.Fatalf("Add(%q) returned an unexpected error: %v", p.ID, err)
		}
	}

	var b strings.Builder
	if err := ExportInventory(&b, inv); err != nil {
		t.Fatalf("ExportInventory() returned an unexpected error: %v", err)
	}

	imported, err := ImportInventory(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ImportInventory() returned an unexpected error: %v", err)
	}
	if imported.Len() != len(products) {
		t.Fatalf("round trip kept %d products, want %d", imported.Len(), len(products))
	}
	for _, want := range products {
		got, ok := imported.Get(want.ID)
		if !ok {
			t.Fatalf("round trip lost product %q", want.ID)
		}
		if got.Name != want.Name || !got.Price.Equal(want.Price) || got.Quantity != want.Quantity {
			t.Errorf("round trip product %q = %+v, want %+v", want.ID, got, want)
		}
	}
}
