package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
)

// SnapshotRepository provides data access methods for the
// performance_snapshot table. The unique (user_id, month) constraint
// backs the one-snapshot-per-month invariant.
type SnapshotRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// WithTx returns a copy of the repository scoped to the given transaction.
func (r *SnapshotRepository) WithTx(tx *sql.Tx) *SnapshotRepository {
	return &SnapshotRepository{db: r.db, tx: tx}
}

func (r *SnapshotRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// Upsert writes a snapshot for (user, month), overwriting the totals
// when a row for the month already exists. The conflict target makes
// re-running a snapshot job for the open month idempotent.
func (r *SnapshotRepository) Upsert(ctx context.Context, s *model.PerformanceSnapshot) error {
	query := `
		INSERT INTO performance_snapshot (id, user_id, month, total_assets, total_debt, net_worth, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, month) DO UPDATE SET
			total_assets = excluded.total_assets,
			total_debt = excluded.total_debt,
			net_worth = excluded.net_worth,
			created_at = excluded.created_at
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.Month,
		s.TotalAssets.String(),
		s.TotalDebt.String(),
		s.NetWorth.String(),
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	return nil
}

// GetByMonth retrieves the snapshot for (user, month).
// Returns apperrors.ErrSnapshotNotFound when none exists.
func (r *SnapshotRepository) GetByMonth(userID, month string) (model.PerformanceSnapshot, error) {
	query := `
		SELECT id, user_id, month, total_assets, total_debt, net_worth, created_at
		FROM performance_snapshot
		WHERE user_id = ? AND month = ?
	`

	row := r.getQuerier().QueryRow(query, userID, month)
	s, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PerformanceSnapshot{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.PerformanceSnapshot{}, err
	}

	return s, nil
}

// Series retrieves the user's snapshots sorted ascending by month,
// optionally restricted to months >= start (YYYY-MM). Returns an empty
// slice when no snapshots exist.
func (r *SnapshotRepository) Series(userID, start string) ([]model.PerformanceSnapshot, error) {
	query := `
		SELECT id, user_id, month, total_assets, total_debt, net_worth, created_at
		FROM performance_snapshot
		WHERE user_id = ?
	`
	args := []any{userID}

	if start != "" {
		query += ` AND month >= ?`
		args = append(args, start)
	}

	query += ` ORDER BY month ASC`

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.PerformanceSnapshot{}
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot table: %w", err)
	}

	return snapshots, nil
}

// scanSnapshot reads one snapshot row from either *sql.Row or *sql.Rows.
func scanSnapshot(row interface{ Scan(dest ...any) error }) (model.PerformanceSnapshot, error) {
	var s model.PerformanceSnapshot
	var totalAssetsStr, totalDebtStr, netWorthStr string
	var createdAtStr sql.NullString

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Month,
		&totalAssetsStr,
		&totalDebtStr,
		&netWorthStr,
		&createdAtStr,
	)
	if err != nil {
		return model.PerformanceSnapshot{}, err
	}

	if s.TotalAssets, err = ParseDecimal(totalAssetsStr); err != nil {
		return model.PerformanceSnapshot{}, err
	}
	if s.TotalDebt, err = ParseDecimal(totalDebtStr); err != nil {
		return model.PerformanceSnapshot{}, err
	}
	if s.NetWorth, err = ParseDecimal(netWorthStr); err != nil {
		return model.PerformanceSnapshot{}, err
	}

	if createdAtStr.Valid {
		if s.CreatedAt, err = ParseTime(createdAtStr.String); err != nil {
			return model.PerformanceSnapshot{}, err
		}
	}

	return s, nil
}
