package validation

import (
	"fmt"
	"strings"

	"github.com/odemir/networth-tracker-backend/internal/api/request"
	"github.com/odemir/networth-tracker-backend/internal/model"
)

// ValidateRecordTransaction validates a buy/sell recording request.
//
// Required fields:
//   - assetId: valid UUID
//   - kind: buy or sell
//   - quantity: > 0
//   - unitPrice: >= 0
//
// Returns a validation Error with field-specific messages on failure.
func ValidateRecordTransaction(req request.RecordTransactionRequest) error {
	if err := ValidateUUID(req.AssetID); err != nil {
		return err
	}

	errors := make(map[string]string)

	if strings.TrimSpace(req.Kind) == "" {
		errors["kind"] = "kind is required"
	} else if !model.ValidTransactionKinds[model.TransactionKind(req.Kind)] {
		errors["kind"] = fmt.Sprintf("invalid kind: %s", req.Kind)
	}

	if !req.Quantity.IsPositive() {
		errors["quantity"] = "quantity must be positive"
	}

	if req.UnitPrice.IsNegative() {
		errors["unitPrice"] = "unitPrice cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
