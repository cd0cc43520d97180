package domain

import "context"

// Provenance tags stamped on records by the ingestion paths.
const (
	SourceScrape = "scrape"
	SourceAPI    = "api"
)

type Product struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Price    *int    `json:"price"`
	Currency string  `json:"currency"`
	Image    *string `json:"image"`
	Stock    *int    `json:"stock"`
	Source   string  `json:"source"`
}

// RawRecord is a loosely typed product record as decoded from a feed
// response or assembled by a mock source. Field values keep whatever
// dynamic type the decoder produced.
type RawRecord map[string]any

// UpsertResult reports the outcome of a store write. Skipped marks a
// write that was deliberately not attempted (store disabled or not
// configured), which still counts as a successful run.
type UpsertResult struct {
	Upserted int
	Skipped  bool
}

type ProductSource interface {
	Fetch(ctx context.Context) ([]RawRecord, error)
	Name() string
}

type ProductRepository interface {
	UpsertProducts(ctx context.Context, products []Product) (*UpsertResult, error)
}
