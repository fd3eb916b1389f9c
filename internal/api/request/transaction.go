package request

import "github.com/shopspring/decimal"

type RecordTransactionRequest struct {
	AssetID   string          `json:"assetId"`
	Kind      string          `json:"kind"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Notes     string          `json:"notes,omitempty"`
}
