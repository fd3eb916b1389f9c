// Package valuation derives portfolio metrics from held assets and
// liabilities. All arithmetic is exact decimal; nothing here touches
// the database or caches between calls.
package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
)

var hundred = decimal.NewFromInt(100)

// AssetValuation holds the derived metrics for a single asset.
type AssetValuation struct {
	AssetID              string          `json:"assetId"`
	Name                 string          `json:"name"`
	Type                 model.AssetType `json:"type"`
	CostBasis            decimal.Decimal `json:"costBasis"`
	MarketValue          decimal.Decimal `json:"marketValue"`
	UnrealizedPnL        decimal.Decimal `json:"unrealizedPnl"`
	UnrealizedPnLPercent decimal.Decimal `json:"unrealizedPnlPercent"`
}

// TypeValuation aggregates the assets of one type for breakdown views.
type TypeValuation struct {
	Count         int             `json:"count"`
	CostBasis     decimal.Decimal `json:"costBasis"`
	MarketValue   decimal.Decimal `json:"marketValue"`
	UnrealizedPnL decimal.Decimal `json:"unrealizedPnl"`
}

// PortfolioValuation aggregates metrics across a set of assets.
type PortfolioValuation struct {
	TotalCostBasis     decimal.Decimal                   `json:"totalCostBasis"`
	TotalMarketValue   decimal.Decimal                   `json:"totalMarketValue"`
	TotalUnrealizedPnL decimal.Decimal                   `json:"totalUnrealizedPnl"`
	ByType             map[model.AssetType]TypeValuation `json:"byType"`
	Assets             []AssetValuation                  `json:"assets"`
}

// SaleResult is the outcome of pricing a sale against a position.
type SaleResult struct {
	RealizedPnL       decimal.Decimal `json:"realizedPnl"`
	RemainingQuantity decimal.Decimal `json:"remainingQuantity"`
}

// SnapshotTotals summarizes a user's net worth at a point in time.
type SnapshotTotals struct {
	TotalAssets decimal.Decimal `json:"totalAssets"`
	TotalDebt   decimal.Decimal `json:"totalDebt"`
	NetWorth    decimal.Decimal `json:"netWorth"`
}

// ValueAsset computes cost basis, market value and unrealized P&L for
// a single asset. The percent is zero when the cost basis is zero.
func ValueAsset(a model.Asset) AssetValuation {
	costBasis := a.Quantity.Mul(a.PurchasePrice)
	marketValue := a.Quantity.Mul(a.CurrentPrice)
	unrealized := marketValue.Sub(costBasis)

	percent := decimal.Zero
	if !costBasis.IsZero() {
		percent = unrealized.Div(costBasis).Mul(hundred)
	}

	return AssetValuation{
		AssetID:              a.ID,
		Name:                 a.Name,
		Type:                 a.Type,
		CostBasis:            costBasis,
		MarketValue:          marketValue,
		UnrealizedPnL:        unrealized,
		UnrealizedPnLPercent: percent,
	}
}

// ValuePortfolio sums per-asset valuations across the input set and
// groups them by asset type. The sum is order-independent.
func ValuePortfolio(assets []model.Asset) PortfolioValuation {
	p := PortfolioValuation{
		ByType: make(map[model.AssetType]TypeValuation),
		Assets: make([]AssetValuation, 0, len(assets)),
	}

	for _, a := range assets {
		v := ValueAsset(a)
		p.Assets = append(p.Assets, v)

		p.TotalCostBasis = p.TotalCostBasis.Add(v.CostBasis)
		p.TotalMarketValue = p.TotalMarketValue.Add(v.MarketValue)
		p.TotalUnrealizedPnL = p.TotalUnrealizedPnL.Add(v.UnrealizedPnL)

		t := p.ByType[a.Type]
		t.Count++
		t.CostBasis = t.CostBasis.Add(v.CostBasis)
		t.MarketValue = t.MarketValue.Add(v.MarketValue)
		t.UnrealizedPnL = t.UnrealizedPnL.Add(v.UnrealizedPnL)
		p.ByType[a.Type] = t
	}

	return p
}

// RecordSale prices a sale against the asset's blended purchase price:
// realized P&L is quantitySold * (salePrice - purchasePrice). It does
// not mutate the asset; decrementing the position and appending the
// transaction row belong to the caller.
//
// Returns apperrors.ErrInsufficientQuantity when quantitySold exceeds
// the held quantity.
func RecordSale(a model.Asset, quantitySold, salePrice decimal.Decimal) (SaleResult, error) {
	if quantitySold.GreaterThan(a.Quantity) {
		return SaleResult{}, apperrors.ErrInsufficientQuantity
	}

	return SaleResult{
		RealizedPnL:       quantitySold.Mul(salePrice.Sub(a.PurchasePrice)),
		RemainingQuantity: a.Quantity.Sub(quantitySold),
	}, nil
}

// ComputeSnapshot folds the current portfolio value and liabilities
// into net-worth totals for a snapshot row.
func ComputeSnapshot(assets []model.Asset, liabilities []model.Liability) SnapshotTotals {
	totalAssets := ValuePortfolio(assets).TotalMarketValue

	totalDebt := decimal.Zero
	for _, l := range liabilities {
		totalDebt = totalDebt.Add(l.Amount)
	}

	return SnapshotTotals{
		TotalAssets: totalAssets,
		TotalDebt:   totalDebt,
		NetWorth:    totalAssets.Sub(totalDebt),
	}
}
