package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/repository"
	"github.com/odemir/networth-tracker-backend/internal/valuation"
)

// snapshotConcurrency bounds the per-user fan-out of the snapshot job.
const snapshotConcurrency = 4

// PerformanceService materializes monthly net-worth snapshots and
// serves the historical series behind the performance charts.
//
// Snapshot policy: the current month is freely overwritable (the job
// re-runs daily), months before it are frozen.
type PerformanceService struct {
	snapshotRepo  *repository.SnapshotRepository
	assetRepo     *repository.AssetRepository
	liabilityRepo *repository.LiabilityRepository
}

// NewPerformanceService creates a new PerformanceService with the provided repository dependencies.
func NewPerformanceService(
	snapshotRepo *repository.SnapshotRepository,
	assetRepo *repository.AssetRepository,
	liabilityRepo *repository.LiabilityRepository,
) *PerformanceService {
	return &PerformanceService{
		snapshotRepo:  snapshotRepo,
		assetRepo:     assetRepo,
		liabilityRepo: liabilityRepo,
	}
}

// ComputeSnapshot values the user's portfolio and liabilities now and
// upserts the result as the snapshot for the given month. An empty
// month means the current month; past months return
// apperrors.ErrSnapshotMonthClosed, future months
// apperrors.ErrInvalidMonth.
func (s *PerformanceService) ComputeSnapshot(ctx context.Context, userID, month string) (model.PerformanceSnapshot, error) {
	current := time.Now().UTC().Format(model.MonthLayout)

	if month == "" {
		month = current
	}
	if _, err := time.Parse(model.MonthLayout, month); err != nil {
		return model.PerformanceSnapshot{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidMonth, month)
	}
	if month > current {
		return model.PerformanceSnapshot{}, fmt.Errorf("%w: %s is in the future", apperrors.ErrInvalidMonth, month)
	}
	if month < current {
		return model.PerformanceSnapshot{}, fmt.Errorf("%w: %s", apperrors.ErrSnapshotMonthClosed, month)
	}

	assets, err := s.assetRepo.ListByUser(userID)
	if err != nil {
		return model.PerformanceSnapshot{}, err
	}
	liabilities, err := s.liabilityRepo.ListByUser(userID)
	if err != nil {
		return model.PerformanceSnapshot{}, err
	}

	totals := valuation.ComputeSnapshot(assets, liabilities)

	snapshot := &model.PerformanceSnapshot{
		ID:          uuid.New().String(),
		UserID:      userID,
		Month:       month,
		TotalAssets: totals.TotalAssets,
		TotalDebt:   totals.TotalDebt,
		NetWorth:    totals.NetWorth,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.snapshotRepo.Upsert(ctx, snapshot); err != nil {
		return model.PerformanceSnapshot{}, err
	}

	// Re-read so the caller sees the canonical row (the original ID is
	// kept when the upsert hit an existing month).
	return s.snapshotRepo.GetByMonth(userID, month)
}

// GetSeries returns the user's snapshots sorted ascending by month,
// filtered to the last N months or an explicit start month. An empty
// range means the full series.
func (s *PerformanceService) GetSeries(userID string, r model.SeriesRange) ([]model.PerformanceSnapshot, error) {
	start := r.Start

	if r.Months > 0 {
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -(r.Months - 1), 0).
			Format(model.MonthLayout)
	} else if start != "" {
		if _, err := time.Parse(model.MonthLayout, start); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidMonth, start)
		}
	}

	return s.snapshotRepo.Series(userID, start)
}

// RunMonthlySnapshots materializes the current month for every user
// that holds assets or liabilities. Used by the scheduler; per-user
// work runs concurrently with a bounded group and the first error
// wins.
func (s *PerformanceService) RunMonthlySnapshots(ctx context.Context) (int, error) {
	userIDs, err := s.assetRepo.DistinctUserIDs()
	if err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(snapshotConcurrency)

	for _, userID := range userIDs {
		g.Go(func() error {
			if _, err := s.ComputeSnapshot(ctx, userID, ""); err != nil {
				return fmt.Errorf("snapshot for user %s: %w", userID, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return len(userIDs), nil
}
