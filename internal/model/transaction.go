package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies the direction of a transaction.
type TransactionKind string

const (
	TransactionBuy  TransactionKind = "buy"
	TransactionSell TransactionKind = "sell"
)

// ValidTransactionKinds contains the allowed transaction kind values.
var ValidTransactionKinds = map[TransactionKind]bool{
	TransactionBuy:  true,
	TransactionSell: true,
}

// Transaction is an immutable record of a buy or sell event.
// AssetID is nullable so the record survives deletion of its asset;
// AssetName and AssetType are denormalized at recording time so the
// history stays readable afterwards. RealizedPnL is populated only for
// sell transactions.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	AssetID     *string         `json:"assetId,omitempty"`
	Kind        TransactionKind `json:"kind"`
	AssetName   string          `json:"assetName"`
	AssetType   AssetType       `json:"assetType"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	RealizedPnL decimal.Decimal `json:"realizedPnl"`
	Currency    string          `json:"currency"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	AssetID string
	Kind    TransactionKind
}
