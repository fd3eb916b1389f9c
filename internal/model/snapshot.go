package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthLayout is the time layout for snapshot month keys.
const MonthLayout = "2006-01"

// PerformanceSnapshot is a point-in-time summary of a user's net
// worth, one row per user per calendar month. NetWorth always equals
// TotalAssets minus TotalDebt.
type PerformanceSnapshot struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Month       string          `json:"month"` // YYYY-MM
	TotalAssets decimal.Decimal `json:"totalAssets"`
	TotalDebt   decimal.Decimal `json:"totalDebt"`
	NetWorth    decimal.Decimal `json:"netWorth"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SeriesRange filters a snapshot series. Months takes precedence when
// both are set; the zero value means the full series.
type SeriesRange struct {
	Months int    // last N months
	Start  string // inclusive start month, YYYY-MM
}
