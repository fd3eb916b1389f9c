package model

// Market identifies a reference symbol table.
type Market string

const (
	MarketBist Market = "bist"
	MarketUS   Market = "us"
)

// ValidMarkets contains the allowed market values.
var ValidMarkets = map[Market]bool{
	MarketBist: true,
	MarketUS:   true,
}

// ReferenceSymbol is one symbol -> display name entry in a market's
// lookup table. Bulk-replaced by import jobs, read-only at request
// time.
type ReferenceSymbol struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
