package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/tally"
	"github.com/shopspring/decimal"
)

func TestAmount(t *testing.T) {
	testCases := []struct {
		amount   string
		currency string
		want     string
	}{
		{"60", "USD", "$60.00"},
		{"19.99", "USD", "$19.99"},
		{"240", "EUR", "€240.00"},
	}
	for _, tc := range testCases {
		got := Amount(decimal.RequireFromString(tc.amount), tc.currency)
		if got != tc.want {
			t.Errorf("Amount(%s, %s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestInventoryMarkdown(t *testing.T) {
	inv := tally.NewInventory()
	if err := inv.Add(tally.Product{ID: "101", Name: "Soap", Price: decimal.NewFromInt(20), Quantity: 50}); err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}

	md := InventoryMarkdown(inv, "USD")
	if !strings.Contains(md, "| 101 | Soap | $20.00 | 50 |") {
		t.Errorf("InventoryMarkdown() is missing the product row:\n%s", md)
	}
}

func TestInventoryMarkdown_empty(t *testing.T) {
	md := InventoryMarkdown(tally.NewInventory(), "USD")
	if !strings.Contains(md, "empty") {
		t.Errorf("InventoryMarkdown() on an empty catalog should say so:\n%s", md)
	}
}

func TestSalesMarkdown(t *testing.T) {
	inv := tally.NewInventory()
	if err := inv.Add(tally.Product{ID: "101", Name: "Soap", Price: decimal.NewFromInt(20), Quantity: 50}); err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}
	ledger := tally.NewLedger(inv)
	if _, err := ledger.ProcessSale("1", []tally.SaleItem{{ProductID: "101", Quantity: 3}}); err != nil {
		t.Fatalf("ProcessSale() returned an unexpected error: %v", err)
	}

	md := SalesMarkdown(ledger, "USD")
	if !strings.Contains(md, "| 1 | 101 | Soap | 3 | $60.00 |") {
		t.Errorf("SalesMarkdown() is missing the sale row:\n%s", md)
	}
	if !strings.Contains(md, "Grand total: $60.00") {
		t.Errorf("SalesMarkdown() is missing the grand total:\n%s", md)
	}
}

func TestReceiptMarkdown(t *testing.T) {
	lines := []tally.SaleLine{
		{SaleID: "1", ProductID: "102", ProductName: "Shampoo", Quantity: 2, Total: decimal.NewFromInt(240)},
		{SaleID: "1", ProductID: "101", ProductName: "Soap", Quantity: 3, Total: decimal.NewFromInt(60)},
	}
	md := ReceiptMarkdown("1", lines, "USD")
	if !strings.Contains(md, "# Sale 1") {
		t.Errorf("ReceiptMarkdown() is missing the title:\n%s", md)
	}
	if !strings.Contains(md, "Total: $300.00") {
		t.Errorf("ReceiptMarkdown() is missing the total:\n%s", md)
	}
}
