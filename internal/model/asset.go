package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetType identifies the category of a held asset.
type AssetType string

const (
	AssetTypeBistStock   AssetType = "bist_stock"
	AssetTypeUSStock     AssetType = "us_stock"
	AssetTypeETF         AssetType = "etf"
	AssetTypeCrypto      AssetType = "crypto"
	AssetTypeRealEstate  AssetType = "real_estate"
	AssetTypeFund        AssetType = "fund"
	AssetTypePensionFund AssetType = "pension_fund"
)

// ValidAssetTypes contains the allowed asset type values.
var ValidAssetTypes = map[AssetType]bool{
	AssetTypeBistStock:   true,
	AssetTypeUSStock:     true,
	AssetTypeETF:         true,
	AssetTypeCrypto:      true,
	AssetTypeRealEstate:  true,
	AssetTypeFund:        true,
	AssetTypePensionFund: true,
}

// DefaultCurrency is used when an asset or liability is created
// without an explicit currency.
const DefaultCurrency = "TRY"

// Asset represents a single held position in a user's portfolio.
// Quantity and price fields are decimals so valuations stay exact;
// they are persisted as TEXT and never pass through floats.
type Asset struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Name          string          `json:"name"`
	Type          AssetType       `json:"type"`
	Symbol        string          `json:"symbol,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	Currency      string          `json:"currency"`
	PurchaseDate  *time.Time      `json:"purchaseDate,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
