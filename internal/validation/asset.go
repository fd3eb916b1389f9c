package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/odemir/networth-tracker-backend/internal/api/request"
	"github.com/odemir/networth-tracker-backend/internal/model"
)

// ValidCurrencies contains the currency codes the tracker accepts.
// Assets are valued in their own currency; conversion is the caller's
// concern.
var ValidCurrencies = map[string]bool{
	"TRY": true, "USD": true, "EUR": true, "GBP": true, "CHF": true, "JPY": true,
}

// ValidateCreateAsset validates an asset creation request.
//
// Required fields:
//   - name: non-empty
//   - type: one of the asset type enumeration
//   - quantity: > 0
//   - purchasePrice, currentPrice: >= 0
//
// Optional fields:
//   - currency: recognized code (defaults to TRY when empty)
//   - purchaseDate: YYYY-MM-DD when set
//
// Returns a validation Error with field-specific messages on failure.
func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !model.ValidAssetTypes[model.AssetType(req.Type)] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if !req.Quantity.IsPositive() {
		errors["quantity"] = "quantity must be positive"
	}

	if req.PurchasePrice.IsNegative() {
		errors["purchasePrice"] = "purchasePrice cannot be negative"
	}

	if req.CurrentPrice.IsNegative() {
		errors["currentPrice"] = "currentPrice cannot be negative"
	}

	if req.Currency != "" && !ValidCurrencies[req.Currency] {
		errors["currency"] = fmt.Sprintf("unrecognized currency: %s", req.Currency)
	}

	if req.PurchaseDate != "" {
		if _, err := time.Parse("2006-01-02", req.PurchaseDate); err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateAsset validates an asset update request.
// All fields are optional, but if provided, they must meet the same
// constraints as create.
func ValidateUpdateAsset(req request.UpdateAssetRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.Type != nil {
		if !model.ValidAssetTypes[model.AssetType(*req.Type)] {
			errors["type"] = fmt.Sprintf("invalid type: %s", *req.Type)
		}
	}

	if req.Quantity != nil && !req.Quantity.IsPositive() {
		errors["quantity"] = "quantity must be positive"
	}

	if req.PurchasePrice != nil && req.PurchasePrice.IsNegative() {
		errors["purchasePrice"] = "purchasePrice cannot be negative"
	}

	if req.CurrentPrice != nil && req.CurrentPrice.IsNegative() {
		errors["currentPrice"] = "currentPrice cannot be negative"
	}

	if req.Currency != nil && !ValidCurrencies[*req.Currency] {
		errors["currency"] = fmt.Sprintf("unrecognized currency: %s", *req.Currency)
	}

	if req.PurchaseDate != nil && *req.PurchaseDate != "" {
		if _, err := time.Parse("2006-01-02", *req.PurchaseDate); err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateAssetPrice validates a current-price refresh.
func ValidateUpdateAssetPrice(req request.UpdateAssetPriceRequest) error {
	if req.CurrentPrice.IsNegative() {
		return &Error{Fields: map[string]string{"currentPrice": "currentPrice cannot be negative"}}
	}
	return nil
}
