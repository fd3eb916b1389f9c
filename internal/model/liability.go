package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Liability represents a debt entry (loan, mortgage, credit balance)
// counted against the user's net worth.
type Liability struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
}
