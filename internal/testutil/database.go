package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Asset table: one row per held position. Decimals stored as TEXT.
		CREATE TABLE asset (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			type VARCHAR(20) NOT NULL,
			symbol VARCHAR(20),
			quantity TEXT NOT NULL,
			purchase_price TEXT NOT NULL,
			current_price TEXT NOT NULL,
			currency VARCHAR(3) NOT NULL DEFAULT 'TRY',
			purchase_date DATE,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX idx_asset_user ON asset(user_id);

		-- Transaction table (quoted because transaction is a reserved keyword)
		CREATE TABLE "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			asset_id VARCHAR(36),
			kind VARCHAR(4) NOT NULL,
			asset_name VARCHAR(100) NOT NULL,
			asset_type VARCHAR(20) NOT NULL,
			quantity TEXT NOT NULL,
			unit_price TEXT NOT NULL,
			total_amount TEXT NOT NULL,
			realized_pnl TEXT NOT NULL DEFAULT '0',
			currency VARCHAR(3) NOT NULL,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(asset_id) REFERENCES asset(id) ON DELETE SET NULL
		);

		CREATE INDEX idx_transaction_user ON "transaction"(user_id);
		CREATE INDEX idx_transaction_asset ON "transaction"(asset_id);

		-- Liability table
		CREATE TABLE liability (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			amount TEXT NOT NULL,
			currency VARCHAR(3) NOT NULL DEFAULT 'TRY',
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX idx_liability_user ON liability(user_id);

		-- Performance snapshot table: at most one row per user per month
		CREATE TABLE performance_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			month VARCHAR(7) NOT NULL,
			total_assets TEXT NOT NULL,
			total_debt TEXT NOT NULL,
			net_worth TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT unique_user_month UNIQUE (user_id, month)
		);

		-- Reference symbol tables
		CREATE TABLE bist_symbol (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL UNIQUE,
			name VARCHAR(255) NOT NULL
		);

		CREATE TABLE us_symbol (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL UNIQUE,
			name VARCHAR(255) NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
