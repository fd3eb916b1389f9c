package validation

import (
	"fmt"
	"strings"

	"github.com/odemir/networth-tracker-backend/internal/api/request"
)

// ValidateCreateLiability validates a liability creation request.
func ValidateCreateLiability(req request.CreateLiabilityRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.Amount.IsNegative() {
		errors["amount"] = "amount cannot be negative"
	}

	if req.Currency != "" && !ValidCurrencies[req.Currency] {
		errors["currency"] = fmt.Sprintf("unrecognized currency: %s", req.Currency)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateLiability validates a liability update request.
// All fields are optional, but if provided, they must meet the same
// constraints as create.
func ValidateUpdateLiability(req request.UpdateLiabilityRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.Amount != nil && req.Amount.IsNegative() {
		errors["amount"] = "amount cannot be negative"
	}

	if req.Currency != nil && !ValidCurrencies[*req.Currency] {
		errors["currency"] = fmt.Sprintf("unrecognized currency: %s", *req.Currency)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
