package tally

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeInventory(t *testing.T) {
	// A catalog table as it is stored on disk.
	csvStream := `product_id,product_name,price,quantity
101,Soap,19.99,50
102,Shampoo,120,30
`
	inv, err := DecodeInventory(strings.NewReader(csvStream))
	if err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}
	if inv.Len() != 2 {
		t.Fatalf("decoded %d products, want 2", inv.Len())
	}
	soap, _ := inv.Get("101")
	if soap.Name != "Soap" || !soap.Price.Equal(decimal.RequireFromString("19.99")) || soap.Quantity != 50 {
		t.Errorf("product 101 = %+v, want Soap at 19.99 with 50 in stock", soap)
	}
}

func TestDecodeInventory_badInput(t *testing.T) {
	testCases := []struct {
		name string
		csv  string
	}{
		{"wrong header", "id,name,cost,count\n101,Soap,1,1\n"},
		{"non-numeric price", "product_id,product_name,price,quantity\n101,Soap,cheap,1\n"},
		{"non-numeric quantity", "product_id,product_name,price,quantity\n101,Soap,1,many\n"},
		{"negative quantity", "product_id,product_name,price,quantity\n101,Soap,1,-3\n"},
		{"duplicate id", "product_id,product_name,price,quantity\n101,Soap,1,1\n101,Bleach,2,2\n"},
		{"missing column", "product_id,product_name,price,quantity\n101,Soap,1\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeInventory(strings.NewReader(tc.csv)); err == nil {
				t.Error("DecodeInventory() should fail")
			}
		})
	}
}

func TestDecodeInventory_emptyFileIsEmptyCatalog(t *testing.T) {
	inv, err := DecodeInventory(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}
	if inv.Len() != 0 {
		t.Errorf("decoded %d products from an empty file, want 0", inv.Len())
	}
}

func TestEncodeInventory(t *testing.T) {
	inv := NewInventory()
	if err := inv.Add(Product{ID: "101", Name: "Soap", Price: decimal.RequireFromString("19.99"), Quantity: 50}); err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}

	var b strings.Builder
	if err := EncodeInventory(&b, inv); err != nil {
		t.Fatalf("EncodeInventory() returned an unexpected error: %v", err)
	}

	want := "product_id,product_name,price,quantity\n101,Soap,19.99,50\n"
	if b.String() != want {
		t.Errorf("EncodeInventory() wrote:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestDecodeLedger(t *testing.T) {
	csvStream := `sale_id,product_id,product_name,quantity_sold,total_price
1,102,Shampoo,2,240
1,101,Soap,3,60
`
	l, err := DecodeLedger(strings.NewReader(csvStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("decoded %d lines, want 2", l.Len())
	}
	if want := decimal.NewFromInt(300); !l.Total().Equal(want) {
		t.Errorf("ledger total = %s, want %s", l.Total(), want)
	}
}

func TestDecodeLedger_badInput(t *testing.T) {
	testCases := []struct {
		name string
		csv  string
	}{
		{"wrong header", "sale,product,name,qty,total\n1,101,Soap,1,20\n"},
		{"non-numeric quantity", "sale_id,product_id,product_name,quantity_sold,total_price\n1,101,Soap,three,60\n"},
		{"zero quantity", "sale_id,product_id,product_name,quantity_sold,total_price\n1,101,Soap,0,0\n"},
		{"non-numeric total", "sale_id,product_id,product_name,quantity_sold,total_price\n1,101,Soap,3,sixty\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.csv)); err == nil {
				t.Error("DecodeLedger() should fail")
			}
		})
	}
}

func TestEncodeLedger_roundTrip(t *testing.T) {
	inv := newTestInventory(t)
	ledger := NewLedger(inv)
	if _, err := ledger.ProcessSale("1", []SaleItem{
		{ProductID: "102", Quantity: 2},
		{ProductID: "101", Quantity: 3},
	}); err != nil {
		t.Fatalf("ProcessSale() returned an unexpected error: %v", err)
	}

	var b strings.Builder
	if err := EncodeLedger(&b, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	decoded, err := DecodeLedger(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if decoded.Len() != ledger.Len() {
		t.Fatalf("round trip kept %d lines, want %d", decoded.Len(), ledger.Len())
	}
	if !decoded.Total().Equal(ledger.Total()) {
		t.Errorf("round trip total = %s, want %s", decoded.Total(), ledger.Total())
	}
}
