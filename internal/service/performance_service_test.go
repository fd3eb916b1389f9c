package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/testutil"
)

func currentMonth() string {
	return time.Now().UTC().Format(model.MonthLayout)
}

// TestPerformanceService_ComputeSnapshot tests snapshot materialization.
//
// WHY: The snapshot is the only historical record of net worth; it must
// value the portfolio at current prices, net liabilities against it,
// and stay idempotent so the daily job can re-run without multiplying
// rows.
func TestPerformanceService_ComputeSnapshot(t *testing.T) {
	t.Run("values assets minus liabilities", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)
		userID := testutil.MakeID()

		// Market value: 100*55 + 10*200 = 7500
		testutil.NewAsset(userID).WithQuantity("100").WithPrices("50", "55").Build(t, db)
		testutil.NewAsset(userID).WithQuantity("10").WithPrices("180", "200").Build(t, db)
		testutil.NewLiability(userID).WithAmount("2500").Build(t, db)

		// Execute
		snapshot, err := svc.ComputeSnapshot(context.Background(), userID, "")

		// Assert
		if err != nil {
			t.Fatalf("ComputeSnapshot() returned unexpected error: %v", err)
		}

		if snapshot.Month != currentMonth() {
			t.Errorf("Expected month %s, got %s", currentMonth(), snapshot.Month)
		}
		if !snapshot.TotalAssets.Equal(decimal.RequireFromString("7500")) {
			t.Errorf("Expected total assets 7500, got %s", snapshot.TotalAssets)
		}
		if !snapshot.TotalDebt.Equal(decimal.RequireFromString("2500")) {
			t.Errorf("Expected total debt 2500, got %s", snapshot.TotalDebt)
		}
		if !snapshot.NetWorth.Equal(decimal.RequireFromString("5000")) {
			t.Errorf("Expected net worth 5000, got %s", snapshot.NetWorth)
		}
	})

	t.Run("re-running the current month updates in place", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)
		userID := testutil.MakeID()

		asset := testutil.NewAsset(userID).WithQuantity("10").WithPrices("100", "100").Build(t, db)

		first, err := svc.ComputeSnapshot(context.Background(), userID, "")
		if err != nil {
			t.Fatalf("ComputeSnapshot() returned unexpected error: %v", err)
		}

		// Price moves, job runs again
		if _, err := db.Exec(`UPDATE asset SET current_price = ? WHERE id = ?`, "120", asset.ID); err != nil {
			t.Fatalf("Failed to update price: %v", err)
		}

		// Execute
		second, err := svc.ComputeSnapshot(context.Background(), userID, "")

		// Assert
		if err != nil {
			t.Fatalf("ComputeSnapshot() returned unexpected error: %v", err)
		}

		if second.ID != first.ID {
			t.Errorf("Expected upsert to keep the original row ID %s, got %s", first.ID, second.ID)
		}
		if !second.TotalAssets.Equal(decimal.RequireFromString("1200")) {
			t.Errorf("Expected total assets 1200 after re-run, got %s", second.TotalAssets)
		}

		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM performance_snapshot WHERE user_id = ?`, userID).Scan(&count); err != nil {
			t.Fatalf("Failed to count snapshots: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected a single snapshot row, got %d", count)
		}
	})

	t.Run("empty portfolio snapshots to zero", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)

		// Execute
		snapshot, err := svc.ComputeSnapshot(context.Background(), testutil.MakeID(), "")

		// Assert
		if err != nil {
			t.Fatalf("ComputeSnapshot() returned unexpected error: %v", err)
		}
		if !snapshot.NetWorth.IsZero() {
			t.Errorf("Expected zero net worth, got %s", snapshot.NetWorth)
		}
	})

	t.Run("rejects a past month", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)

		past := time.Now().UTC().AddDate(0, -1, 0).Format(model.MonthLayout)

		// Execute
		_, err := svc.ComputeSnapshot(context.Background(), testutil.MakeID(), past)

		// Assert
		if !errors.Is(err, apperrors.ErrSnapshotMonthClosed) {
			t.Errorf("Expected ErrSnapshotMonthClosed, got %v", err)
		}
	})

	t.Run("rejects a future month", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)

		future := time.Now().UTC().AddDate(0, 1, 0).Format(model.MonthLayout)

		// Execute
		_, err := svc.ComputeSnapshot(context.Background(), testutil.MakeID(), future)

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidMonth) {
			t.Errorf("Expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)

		// Execute
		_, err := svc.ComputeSnapshot(context.Background(), testutil.MakeID(), "2025-13")

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidMonth) {
			t.Errorf("Expected ErrInvalidMonth, got %v", err)
		}
	})
}

// TestPerformanceService_GetSeries tests the historical series.
//
// WHY: The net-worth chart reads this series; rows must come back
// sorted ascending by month and the start filter must be inclusive.
func TestPerformanceService_GetSeries(t *testing.T) {
	t.Run("returns empty slice when no snapshots exist", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)

		// Execute
		series, err := svc.GetSeries(testutil.MakeID(), model.SeriesRange{})

		// Assert
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		if len(series) != 0 {
			t.Errorf("Expected empty slice, got %d snapshots", len(series))
		}
	})

	t.Run("returns snapshots sorted ascending by month", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)
		userID := testutil.MakeID()

		// Inserted out of order on purpose
		testutil.NewSnapshot(userID, "2025-03").Build(t, db)
		testutil.NewSnapshot(userID, "2025-01").Build(t, db)
		testutil.NewSnapshot(userID, "2025-02").Build(t, db)

		// Execute
		series, err := svc.GetSeries(userID, model.SeriesRange{})

		// Assert
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		if len(series) != 3 {
			t.Fatalf("Expected 3 snapshots, got %d", len(series))
		}
		for i, want := range []string{"2025-01", "2025-02", "2025-03"} {
			if series[i].Month != want {
				t.Errorf("Expected month %s at index %d, got %s", want, i, series[i].Month)
			}
		}
	})

	t.Run("start filter is inclusive", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)
		userID := testutil.MakeID()

		testutil.NewSnapshot(userID, "2024-12").Build(t, db)
		testutil.NewSnapshot(userID, "2025-01").Build(t, db)
		testutil.NewSnapshot(userID, "2025-02").Build(t, db)

		// Execute
		series, err := svc.GetSeries(userID, model.SeriesRange{Start: "2025-01"})

		// Assert
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		if len(series) != 2 {
			t.Fatalf("Expected 2 snapshots, got %d", len(series))
		}
		if series[0].Month != "2025-01" {
			t.Errorf("Expected series to start at 2025-01, got %s", series[0].Month)
		}
	})

	t.Run("rejects a malformed start month", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)

		// Execute
		_, err := svc.GetSeries(testutil.MakeID(), model.SeriesRange{Start: "January 2025"})

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidMonth) {
			t.Errorf("Expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("does not leak another user's series", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)

		other := testutil.MakeID()
		testutil.NewSnapshot(other, "2025-01").Build(t, db)

		// Execute
		series, err := svc.GetSeries(testutil.MakeID(), model.SeriesRange{})

		// Assert
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		if len(series) != 0 {
			t.Errorf("Expected empty series for other user, got %d", len(series))
		}
	})
}

// TestPerformanceService_RunMonthlySnapshots tests the scheduled job entry point.
//
// WHY: The job fans out over every user with holdings; a user with only
// liabilities still has a net worth and must not be skipped.
func TestPerformanceService_RunMonthlySnapshots(t *testing.T) {
	t.Run("snapshots every user with holdings", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)

		assetsOnly := testutil.MakeID()
		liabilitiesOnly := testutil.MakeID()
		testutil.NewAsset(assetsOnly).WithQuantity("10").WithPrices("100", "110").Build(t, db)
		testutil.NewLiability(liabilitiesOnly).WithAmount("500").Build(t, db)

		// Execute
		users, err := svc.RunMonthlySnapshots(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunMonthlySnapshots() returned unexpected error: %v", err)
		}
		if users != 2 {
			t.Errorf("Expected 2 users snapshotted, got %d", users)
		}

		for _, userID := range []string{assetsOnly, liabilitiesOnly} {
			series, err := svc.GetSeries(userID, model.SeriesRange{})
			if err != nil {
				t.Fatalf("GetSeries() returned unexpected error: %v", err)
			}
			if len(series) != 1 {
				t.Errorf("Expected 1 snapshot for user %s, got %d", userID, len(series))
			}
		}
	})

	t.Run("no users is a no-op", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPerformanceService(t, db)

		// Execute
		users, err := svc.RunMonthlySnapshots(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("RunMonthlySnapshots() returned unexpected error: %v", err)
		}
		if users != 0 {
			t.Errorf("Expected 0 users, got %d", users)
		}
	})
}
