package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/odemir/networth-tracker-backend/internal/repository"
	"github.com/odemir/networth-tracker-backend/internal/service"
)

func NewTestAssetService(t *testing.T, db *sql.DB) *service.AssetService {
	t.Helper()

	return service.NewAssetService(repository.NewAssetRepository(db))
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	assetRepo := repository.NewAssetRepository(db)

	return service.NewTransactionService(
		db,
		transactionRepo,
		assetRepo,
	)
}

func NewTestLiabilityService(t *testing.T, db *sql.DB) *service.LiabilityService {
	t.Helper()

	return service.NewLiabilityService(repository.NewLiabilityRepository(db))
}

func NewTestPerformanceService(t *testing.T, db *sql.DB) *service.PerformanceService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	liabilityRepo := repository.NewLiabilityRepository(db)

	return service.NewPerformanceService(
		snapshotRepo,
		assetRepo,
		liabilityRepo,
	)
}

func NewTestSymbolService(t *testing.T, db *sql.DB) *service.SymbolService {
	t.Helper()

	return service.NewSymbolService(repository.NewSymbolRepository(db))
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeName generates a unique display name for testing.
//
// Example usage:
//
//	name := testutil.MakeName("Savings Account")
//	// Returns: "Savings Account ABC123"
func MakeName(base string) string {
	if base == "" {
		base = "Entry"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
