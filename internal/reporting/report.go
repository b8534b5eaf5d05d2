// Package reporting renders batch pricing results as CSV or Markdown.
package reporting

import "time"

// Report is one priced book.
type Report struct {
	// Metadata
	RunID       string
	GeneratedAt time.Time
	Paths       int
	Seed        uint64

	// Rows, in book order
	Rows []Row
}

// Row is one priced contract.
type Row struct {
	Name          string
	Kind          string
	PayoffKind    string
	Expiry        float64
	Price         float64
	StandardError float64
	Discount      float64
}
