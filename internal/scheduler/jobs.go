package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/odemir/networth-tracker-backend/internal/seed"
	"github.com/odemir/networth-tracker-backend/internal/service"
)

// jobTimeout bounds a single background job run.
const jobTimeout = 10 * time.Minute

// SnapshotJob materializes the current month's performance snapshot
// for every user with holdings.
type SnapshotJob struct {
	performanceService *service.PerformanceService
	log                zerolog.Logger
}

// NewSnapshotJob creates a SnapshotJob.
func NewSnapshotJob(performanceService *service.PerformanceService, log zerolog.Logger) *SnapshotJob {
	return &SnapshotJob{
		performanceService: performanceService,
		log:                log.With().Str("component", "snapshot-job").Logger(),
	}
}

func (j *SnapshotJob) Name() string { return "monthly-snapshot" }

func (j *SnapshotJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	users, err := j.performanceService.RunMonthlySnapshots(ctx)
	if err != nil {
		return err
	}

	j.log.Info().Int("users", users).Msg("Monthly snapshots materialized")
	return nil
}

// SeedRefreshJob re-imports the reference symbol tables from the seed
// directory.
type SeedRefreshJob struct {
	importer *seed.Importer
}

// NewSeedRefreshJob creates a SeedRefreshJob.
func NewSeedRefreshJob(importer *seed.Importer) *SeedRefreshJob {
	return &SeedRefreshJob{importer: importer}
}

func (j *SeedRefreshJob) Name() string { return "seed-refresh" }

func (j *SeedRefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	return j.importer.ImportAll(ctx)
}
