package request

import "github.com/shopspring/decimal"

type CreateAssetRequest struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Symbol        string          `json:"symbol,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	Currency      string          `json:"currency,omitempty"`
	PurchaseDate  string          `json:"purchaseDate,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type UpdateAssetRequest struct {
	Name          *string          `json:"name,omitempty"`
	Type          *string          `json:"type,omitempty"`
	Symbol        *string          `json:"symbol,omitempty"`
	Quantity      *decimal.Decimal `json:"quantity,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
	CurrentPrice  *decimal.Decimal `json:"currentPrice,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
	PurchaseDate  *string          `json:"purchaseDate,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// UpdateAssetPriceRequest is the write payload of the external
// price-refresh collaborator.
type UpdateAssetPriceRequest struct {
	CurrentPrice decimal.Decimal `json:"currentPrice"`
}
