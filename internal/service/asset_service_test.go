package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/odemir/networth-tracker-backend/internal/api/request"
	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/testutil"
)

// TestAssetService_GetAssets tests asset listing.
//
// WHY: Listing backs the main portfolio view and must be strictly
// scoped to the requesting user.
func TestAssetService_GetAssets(t *testing.T) {
	t.Run("returns empty slice when no assets exist", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		// Execute
		assets, err := svc.GetAssets(testutil.MakeID())

		// Assert
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}
		if len(assets) != 0 {
			t.Errorf("Expected empty slice, got %d assets", len(assets))
		}
	})

	t.Run("returns only the user's assets", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		userID := testutil.MakeID()

		mine := testutil.NewAsset(userID).Build(t, db)
		testutil.NewAsset(testutil.MakeID()).Build(t, db)

		// Execute
		assets, err := svc.GetAssets(userID)

		// Assert
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}
		if len(assets) != 1 {
			t.Fatalf("Expected 1 asset, got %d", len(assets))
		}
		if assets[0].ID != mine.ID {
			t.Errorf("Expected asset %s, got %s", mine.ID, assets[0].ID)
		}
	})
}

// TestAssetService_CreateAsset tests asset creation.
//
// WHY: Creation applies the defaults (currency, generated ID) and
// parses the optional purchase date; a bad date must fail before
// anything is stored.
func TestAssetService_CreateAsset(t *testing.T) {
	t.Run("creates asset with defaults", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		userID := testutil.MakeID()

		// Execute
		asset, err := svc.CreateAsset(context.Background(), userID, request.CreateAssetRequest{
			Name:          "Garanti Bankası",
			Type:          "bist_stock",
			Symbol:        "GARAN",
			Quantity:      decimal.NewFromInt(100),
			PurchasePrice: decimal.NewFromInt(50),
			CurrentPrice:  decimal.NewFromInt(55),
		})

		// Assert
		if err != nil {
			t.Fatalf("CreateAsset() returned unexpected error: %v", err)
		}
		if asset.ID == "" {
			t.Error("Expected generated ID")
		}
		if asset.Currency != model.DefaultCurrency {
			t.Errorf("Expected default currency %s, got %s", model.DefaultCurrency, asset.Currency)
		}

		stored, err := svc.GetAsset(userID, asset.ID)
		if err != nil {
			t.Fatalf("GetAsset() returned unexpected error: %v", err)
		}
		if !stored.Quantity.Equal(decimal.NewFromInt(100)) {
			t.Errorf("Expected quantity 100, got %s", stored.Quantity)
		}
	})

	t.Run("keeps an explicit currency", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		// Execute
		asset, err := svc.CreateAsset(context.Background(), testutil.MakeID(), request.CreateAssetRequest{
			Name:          "Apple",
			Type:          "us_stock",
			Quantity:      decimal.NewFromInt(5),
			PurchasePrice: decimal.NewFromInt(180),
			CurrentPrice:  decimal.NewFromInt(190),
			Currency:      "USD",
		})

		// Assert
		if err != nil {
			t.Fatalf("CreateAsset() returned unexpected error: %v", err)
		}
		if asset.Currency != "USD" {
			t.Errorf("Expected currency USD, got %s", asset.Currency)
		}
	})

	t.Run("parses the purchase date", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		// Execute
		asset, err := svc.CreateAsset(context.Background(), testutil.MakeID(), request.CreateAssetRequest{
			Name:          "Dated Asset",
			Type:          "fund",
			Quantity:      decimal.NewFromInt(1),
			PurchasePrice: decimal.NewFromInt(1),
			CurrentPrice:  decimal.NewFromInt(1),
			PurchaseDate:  "2024-06-15",
		})

		// Assert
		if err != nil {
			t.Fatalf("CreateAsset() returned unexpected error: %v", err)
		}
		if asset.PurchaseDate == nil {
			t.Fatal("Expected purchase date, got nil")
		}
		if got := asset.PurchaseDate.Format("2006-01-02"); got != "2024-06-15" {
			t.Errorf("Expected purchase date 2024-06-15, got %s", got)
		}
	})

	t.Run("rejects a malformed purchase date", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		userID := testutil.MakeID()

		// Execute
		_, err := svc.CreateAsset(context.Background(), userID, request.CreateAssetRequest{
			Name:          "Bad Date",
			Type:          "fund",
			Quantity:      decimal.NewFromInt(1),
			PurchasePrice: decimal.NewFromInt(1),
			CurrentPrice:  decimal.NewFromInt(1),
			PurchaseDate:  "15/06/2024",
		})

		// Assert
		if err == nil {
			t.Fatal("Expected error for malformed date, got nil")
		}

		assets, listErr := svc.GetAssets(userID)
		if listErr != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", listErr)
		}
		if len(assets) != 0 {
			t.Errorf("Expected no assets stored after failed create, got %d", len(assets))
		}
	})
}

// TestAssetService_UpdateAsset tests partial updates.
//
// WHY: Updates are partial; absent fields must stay untouched so a
// client can patch a single field without resending the rest.
func TestAssetService_UpdateAsset(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		userID := testutil.MakeID()

		asset := testutil.NewAsset(userID).
			WithName("Original").
			WithQuantity("10").
			WithPrices("100", "110").
			Build(t, db)

		newName := "Renamed"

		// Execute
		updated, err := svc.UpdateAsset(context.Background(), userID, asset.ID, request.UpdateAssetRequest{
			Name: &newName,
		})

		// Assert
		if err != nil {
			t.Fatalf("UpdateAsset() returned unexpected error: %v", err)
		}
		if updated.Name != "Renamed" {
			t.Errorf("Expected name Renamed, got %s", updated.Name)
		}
		if !updated.Quantity.Equal(decimal.NewFromInt(10)) {
			t.Errorf("Expected quantity untouched at 10, got %s", updated.Quantity)
		}
		if !updated.CurrentPrice.Equal(decimal.NewFromInt(110)) {
			t.Errorf("Expected current price untouched at 110, got %s", updated.CurrentPrice)
		}
	})

	t.Run("returns not found for unknown asset", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		name := "anything"

		// Execute
		_, err := svc.UpdateAsset(context.Background(), testutil.MakeID(), testutil.MakeID(), request.UpdateAssetRequest{
			Name: &name,
		})

		// Assert
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}

// TestAssetService_UpdatePrice tests the price refresh write.
func TestAssetService_UpdatePrice(t *testing.T) {
	t.Run("updates only the current price", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		userID := testutil.MakeID()

		asset := testutil.NewAsset(userID).
			WithQuantity("10").
			WithPrices("100", "100").
			Build(t, db)

		// Execute
		updated, err := svc.UpdatePrice(context.Background(), userID, asset.ID, request.UpdateAssetPriceRequest{
			CurrentPrice: decimal.RequireFromString("123.45"),
		})

		// Assert
		if err != nil {
			t.Fatalf("UpdatePrice() returned unexpected error: %v", err)
		}
		if !updated.CurrentPrice.Equal(decimal.RequireFromString("123.45")) {
			t.Errorf("Expected current price 123.45, got %s", updated.CurrentPrice)
		}
		if !updated.PurchasePrice.Equal(decimal.NewFromInt(100)) {
			t.Errorf("Expected purchase price untouched at 100, got %s", updated.PurchasePrice)
		}
	})

	t.Run("returns not found for unknown asset", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		// Execute
		_, err := svc.UpdatePrice(context.Background(), testutil.MakeID(), testutil.MakeID(), request.UpdateAssetPriceRequest{
			CurrentPrice: decimal.NewFromInt(1),
		})

		// Assert
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}

// TestAssetService_DeleteAsset tests asset removal.
func TestAssetService_DeleteAsset(t *testing.T) {
	t.Run("deletes the asset", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		userID := testutil.MakeID()

		asset := testutil.NewAsset(userID).Build(t, db)

		// Execute
		if err := svc.DeleteAsset(context.Background(), userID, asset.ID); err != nil {
			t.Fatalf("DeleteAsset() returned unexpected error: %v", err)
		}

		// Assert
		if _, err := svc.GetAsset(userID, asset.ID); !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound after delete, got %v", err)
		}
	})

	t.Run("returns not found for unknown asset", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		// Execute
		err := svc.DeleteAsset(context.Background(), testutil.MakeID(), testutil.MakeID())

		// Assert
		if !errors.Is(err, apperrors.ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}

// TestAssetService_GetSummary tests the on-demand portfolio valuation.
//
// WHY: The summary is computed at read time from current prices; the
// totals and the per-type breakdown must agree with the individual
// positions.
func TestAssetService_GetSummary(t *testing.T) {
	t.Run("empty portfolio sums to zero", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)

		// Execute
		summary, err := svc.GetSummary(testutil.MakeID())

		// Assert
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if !summary.TotalMarketValue.IsZero() {
			t.Errorf("Expected zero market value, got %s", summary.TotalMarketValue)
		}
	})

	t.Run("aggregates totals and per-type breakdown", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAssetService(t, db)
		userID := testutil.MakeID()

		// bist: 100*55 = 5500 market, 5000 cost
		testutil.NewAsset(userID).
			WithType(model.AssetTypeBistStock).
			WithQuantity("100").
			WithPrices("50", "55").
			Build(t, db)
		// crypto: 2*1100 = 2200 market, 2000 cost
		testutil.NewAsset(userID).
			WithType(model.AssetTypeCrypto).
			WithQuantity("2").
			WithPrices("1000", "1100").
			Build(t, db)

		// Execute
		summary, err := svc.GetSummary(userID)

		// Assert
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		if !summary.TotalMarketValue.Equal(decimal.RequireFromString("7700")) {
			t.Errorf("Expected total market value 7700, got %s", summary.TotalMarketValue)
		}
		if !summary.TotalCostBasis.Equal(decimal.RequireFromString("7000")) {
			t.Errorf("Expected total cost basis 7000, got %s", summary.TotalCostBasis)
		}
		if !summary.TotalUnrealizedPnL.Equal(decimal.RequireFromString("700")) {
			t.Errorf("Expected total unrealized P&L 700, got %s", summary.TotalUnrealizedPnL)
		}

		bist, ok := summary.ByType[model.AssetTypeBistStock]
		if !ok {
			t.Fatal("Expected bist_stock entry in breakdown")
		}
		if !bist.MarketValue.Equal(decimal.RequireFromString("5500")) {
			t.Errorf("Expected bist_stock market value 5500, got %s", bist.MarketValue)
		}
	})
}
