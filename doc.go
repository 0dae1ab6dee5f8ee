// Package tally provides the core types and logic for a small shop
// inventory and sales tracker. It is designed to be local-first and
// auditable: all state lives in two human-readable tabular files that
// can be inspected, diffed, and versioned.
//
// The core functionalities include:
//   - Inventory Management: A catalog of products (id, name, unit price,
//     stock quantity) with lookup, insertion, and stock-update operations,
//     persisted on every mutation.
//   - Sales Ledger: An append-only record of sale line items. Processing
//     a sale validates availability for every line item before mutating
//     any stock, so a partially invalid sale leaves state unchanged.
//   - Data Persistence: Encoding and decoding of the catalog and the
//     ledger to and from CSV files with a fixed header row, plus a JSON
//     supplier-feed import and a JSONL export for interchange.
//
// This package serves as the foundational logic for the `tly`
// command-line tool.
package tally
