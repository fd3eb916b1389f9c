package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/odemir/networth-tracker-backend/internal/model"
)

// AssetBuilder provides a fluent interface for creating test assets.
//
// Example usage:
//
//	// Simple creation with defaults
//	asset := testutil.NewAsset(userID).Build(t, db)
//
//	// Customized asset
//	asset := testutil.NewAsset(userID).
//	    WithName("Garanti").
//	    WithType(model.AssetTypeBistStock).
//	    WithQuantity("100").
//	    WithPrices("50", "55").
//	    Build(t, db)
type AssetBuilder struct {
	ID            string
	UserID        string
	Name          string
	Type          model.AssetType
	Symbol        string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	Currency      string
	PurchaseDate  *time.Time
	Notes         string
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset(userID string) *AssetBuilder {
	return &AssetBuilder{
		ID:            MakeID(),
		UserID:        userID,
		Name:          MakeName("Test Asset"),
		Type:          model.AssetTypeBistStock,
		Quantity:      decimal.NewFromInt(10),
		PurchasePrice: decimal.NewFromInt(100),
		CurrentPrice:  decimal.NewFromInt(100),
		Currency:      model.DefaultCurrency,
	}
}

// WithID sets a custom ID.
func (b *AssetBuilder) WithID(id string) *AssetBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.Name = name
	return b
}

// WithType sets a custom asset type.
func (b *AssetBuilder) WithType(assetType model.AssetType) *AssetBuilder {
	b.Type = assetType
	return b
}

// WithSymbol sets a custom symbol.
func (b *AssetBuilder) WithSymbol(symbol string) *AssetBuilder {
	b.Symbol = symbol
	return b
}

// WithQuantity sets the held quantity from a decimal string.
func (b *AssetBuilder) WithQuantity(quantity string) *AssetBuilder {
	b.Quantity = decimal.RequireFromString(quantity)
	return b
}

// WithPrices sets the purchase and current price from decimal strings.
func (b *AssetBuilder) WithPrices(purchase, current string) *AssetBuilder {
	b.PurchasePrice = decimal.RequireFromString(purchase)
	b.CurrentPrice = decimal.RequireFromString(current)
	return b
}

// WithCurrency sets a custom currency.
func (b *AssetBuilder) WithCurrency(currency string) *AssetBuilder {
	b.Currency = currency
	return b
}

// WithPurchaseDate sets the purchase date.
func (b *AssetBuilder) WithPurchaseDate(date time.Time) *AssetBuilder {
	b.PurchaseDate = &date
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	query := `
		INSERT INTO asset (id, user_id, name, type, symbol, quantity, purchase_price, current_price, currency, purchase_date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var purchaseDate any
	if b.PurchaseDate != nil {
		purchaseDate = b.PurchaseDate.Format("2006-01-02")
	}

	createdAt := time.Now().UTC()

	_, err := db.Exec(query,
		b.ID, b.UserID, b.Name, string(b.Type), b.Symbol,
		b.Quantity.String(), b.PurchasePrice.String(), b.CurrentPrice.String(),
		b.Currency, purchaseDate, b.Notes, createdAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return model.Asset{
		ID:            b.ID,
		UserID:        b.UserID,
		Name:          b.Name,
		Type:          b.Type,
		Symbol:        b.Symbol,
		Quantity:      b.Quantity,
		PurchasePrice: b.PurchasePrice,
		CurrentPrice:  b.CurrentPrice,
		Currency:      b.Currency,
		PurchaseDate:  b.PurchaseDate,
		Notes:         b.Notes,
		CreatedAt:     createdAt,
	}
}

// LiabilityBuilder provides a fluent interface for creating test liabilities.
type LiabilityBuilder struct {
	ID       string
	UserID   string
	Name     string
	Amount   decimal.Decimal
	Currency string
	Notes    string
}

// NewLiability creates a LiabilityBuilder with sensible defaults.
func NewLiability(userID string) *LiabilityBuilder {
	return &LiabilityBuilder{
		ID:       MakeID(),
		UserID:   userID,
		Name:     MakeName("Test Liability"),
		Amount:   decimal.NewFromInt(1000),
		Currency: model.DefaultCurrency,
	}
}

// WithName sets a custom name.
func (b *LiabilityBuilder) WithName(name string) *LiabilityBuilder {
	b.Name = name
	return b
}

// WithAmount sets the amount from a decimal string.
func (b *LiabilityBuilder) WithAmount(amount string) *LiabilityBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

// WithCurrency sets a custom currency.
func (b *LiabilityBuilder) WithCurrency(currency string) *LiabilityBuilder {
	b.Currency = currency
	return b
}

// Build creates the liability in the database and returns it.
func (b *LiabilityBuilder) Build(t *testing.T, db *sql.DB) model.Liability {
	t.Helper()

	query := `
		INSERT INTO liability (id, user_id, name, amount, currency, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()

	_, err := db.Exec(query,
		b.ID, b.UserID, b.Name, b.Amount.String(), b.Currency, b.Notes,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test liability: %v", err)
	}

	return model.Liability{
		ID:        b.ID,
		UserID:    b.UserID,
		Name:      b.Name,
		Amount:    b.Amount,
		Currency:  b.Currency,
		Notes:     b.Notes,
		CreatedAt: createdAt,
	}
}

// SnapshotBuilder provides a fluent interface for creating test
// performance snapshots.
type SnapshotBuilder struct {
	ID          string
	UserID      string
	Month       string
	TotalAssets decimal.Decimal
	TotalDebt   decimal.Decimal
	NetWorth    decimal.Decimal
}

// NewSnapshot creates a SnapshotBuilder for the given month with
// sensible defaults.
func NewSnapshot(userID, month string) *SnapshotBuilder {
	return &SnapshotBuilder{
		ID:          MakeID(),
		UserID:      userID,
		Month:       month,
		TotalAssets: decimal.NewFromInt(5000),
		TotalDebt:   decimal.NewFromInt(1000),
		NetWorth:    decimal.NewFromInt(4000),
	}
}

// WithTotals sets the snapshot totals from decimal strings.
func (b *SnapshotBuilder) WithTotals(assets, debt, netWorth string) *SnapshotBuilder {
	b.TotalAssets = decimal.RequireFromString(assets)
	b.TotalDebt = decimal.RequireFromString(debt)
	b.NetWorth = decimal.RequireFromString(netWorth)
	return b
}

// Build creates the snapshot in the database and returns it.
func (b *SnapshotBuilder) Build(t *testing.T, db *sql.DB) model.PerformanceSnapshot {
	t.Helper()

	query := `
		INSERT INTO performance_snapshot (id, user_id, month, total_assets, total_debt, net_worth, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()

	_, err := db.Exec(query,
		b.ID, b.UserID, b.Month,
		b.TotalAssets.String(), b.TotalDebt.String(), b.NetWorth.String(),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test snapshot: %v", err)
	}

	return model.PerformanceSnapshot{
		ID:          b.ID,
		UserID:      b.UserID,
		Month:       b.Month,
		TotalAssets: b.TotalAssets,
		TotalDebt:   b.TotalDebt,
		NetWorth:    b.NetWorth,
		CreatedAt:   createdAt,
	}
}

// CreateSymbol inserts a reference symbol into the given market table
// and returns it.
func CreateSymbol(t *testing.T, db *sql.DB, market model.Market, symbol, name string) model.ReferenceSymbol {
	t.Helper()

	table := "bist_symbol"
	if market == model.MarketUS {
		table = "us_symbol"
	}

	entry := model.ReferenceSymbol{
		ID:     MakeID(),
		Symbol: symbol,
		Name:   name,
	}

	_, err := db.Exec(`INSERT INTO `+table+` (id, symbol, name) VALUES (?, ?, ?)`, entry.ID, entry.Symbol, entry.Name)
	if err != nil {
		t.Fatalf("Failed to create test symbol: %v", err)
	}

	return entry
}
