package validation_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/odemir/networth-tracker-backend/internal/api/request"
	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/validation"
)

func fieldError(t *testing.T, err error, field string) {
	t.Helper()

	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected validation.Error, got %v", err)
	}
	if _, ok := vErr.Fields[field]; !ok {
		t.Errorf("Expected error on field %q, got %v", field, vErr.Fields)
	}
}

func TestValidateUUID(t *testing.T) {
	t.Run("accepts a valid UUID", func(t *testing.T) {
		if err := validation.ValidateUUID("550e8400-e29b-41d4-a716-446655440000"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects a malformed UUID", func(t *testing.T) {
		err := validation.ValidateUUID("not-a-uuid")
		if !errors.Is(err, apperrors.ErrInvalidUUID) {
			t.Errorf("Expected ErrInvalidUUID, got %v", err)
		}
	})
}

func TestValidateCreateAsset(t *testing.T) {
	valid := request.CreateAssetRequest{
		Name:          "Garanti Bankası",
		Type:          "bist_stock",
		Quantity:      decimal.NewFromInt(100),
		PurchasePrice: decimal.NewFromInt(50),
		CurrentPrice:  decimal.NewFromInt(55),
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := validation.ValidateCreateAsset(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("requires a name", func(t *testing.T) {
		req := valid
		req.Name = "  "
		fieldError(t, validation.ValidateCreateAsset(req), "name")
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		req := valid
		req.Type = "baseball_cards"
		fieldError(t, validation.ValidateCreateAsset(req), "type")
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		req := valid
		req.Quantity = decimal.Zero
		fieldError(t, validation.ValidateCreateAsset(req), "quantity")
	})

	t.Run("rejects negative prices", func(t *testing.T) {
		req := valid
		req.PurchasePrice = decimal.NewFromInt(-1)
		fieldError(t, validation.ValidateCreateAsset(req), "purchasePrice")

		req = valid
		req.CurrentPrice = decimal.NewFromInt(-1)
		fieldError(t, validation.ValidateCreateAsset(req), "currentPrice")
	})

	t.Run("rejects an unrecognized currency", func(t *testing.T) {
		req := valid
		req.Currency = "DOGE"
		fieldError(t, validation.ValidateCreateAsset(req), "currency")
	})

	t.Run("rejects a malformed purchase date", func(t *testing.T) {
		req := valid
		req.PurchaseDate = "15/06/2024"
		fieldError(t, validation.ValidateCreateAsset(req), "purchaseDate")
	})

	t.Run("collects multiple field errors at once", func(t *testing.T) {
		err := validation.ValidateCreateAsset(request.CreateAssetRequest{})

		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected validation.Error, got %v", err)
		}
		for _, field := range []string{"name", "type", "quantity"} {
			if _, ok := vErr.Fields[field]; !ok {
				t.Errorf("Expected error on field %q", field)
			}
		}
	})
}

func TestValidateUpdateAsset(t *testing.T) {
	t.Run("accepts an empty update", func(t *testing.T) {
		if err := validation.ValidateUpdateAsset(request.UpdateAssetRequest{}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects clearing the name", func(t *testing.T) {
		name := ""
		fieldError(t, validation.ValidateUpdateAsset(request.UpdateAssetRequest{Name: &name}), "name")
	})

	t.Run("rejects a zero quantity", func(t *testing.T) {
		quantity := decimal.Zero
		fieldError(t, validation.ValidateUpdateAsset(request.UpdateAssetRequest{Quantity: &quantity}), "quantity")
	})

	t.Run("allows clearing the purchase date", func(t *testing.T) {
		date := ""
		if err := validation.ValidateUpdateAsset(request.UpdateAssetRequest{PurchaseDate: &date}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})
}

func TestValidateRecordTransaction(t *testing.T) {
	valid := request.RecordTransactionRequest{
		AssetID:   "550e8400-e29b-41d4-a716-446655440000",
		Kind:      "buy",
		Quantity:  decimal.NewFromInt(10),
		UnitPrice: decimal.NewFromInt(50),
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := validation.ValidateRecordTransaction(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects a malformed asset ID", func(t *testing.T) {
		req := valid
		req.AssetID = "nope"
		err := validation.ValidateRecordTransaction(req)
		if !errors.Is(err, apperrors.ErrInvalidUUID) {
			t.Errorf("Expected ErrInvalidUUID, got %v", err)
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		req := valid
		req.Kind = "short"
		fieldError(t, validation.ValidateRecordTransaction(req), "kind")
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		req := valid
		req.Quantity = decimal.Zero
		fieldError(t, validation.ValidateRecordTransaction(req), "quantity")
	})

	t.Run("rejects a negative unit price", func(t *testing.T) {
		req := valid
		req.UnitPrice = decimal.NewFromInt(-5)
		fieldError(t, validation.ValidateRecordTransaction(req), "unitPrice")
	})
}

func TestValidateCreateLiability(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		err := validation.ValidateCreateLiability(request.CreateLiabilityRequest{
			Name:   "Mortgage",
			Amount: decimal.NewFromInt(250000),
		})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("requires a name", func(t *testing.T) {
		err := validation.ValidateCreateLiability(request.CreateLiabilityRequest{
			Amount: decimal.NewFromInt(1),
		})
		fieldError(t, err, "name")
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		err := validation.ValidateCreateLiability(request.CreateLiabilityRequest{
			Name:   "Mortgage",
			Amount: decimal.NewFromInt(-1),
		})
		fieldError(t, err, "amount")
	})
}

func TestErrorMessage(t *testing.T) {
	t.Run("joins messages sorted by field name", func(t *testing.T) {
		err := &validation.Error{Fields: map[string]string{
			"quantity": "quantity must be greater than zero",
			"name":     "name is required",
		}}

		want := "name: name is required; quantity: quantity must be greater than zero"
		if got := err.Error(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})
}
