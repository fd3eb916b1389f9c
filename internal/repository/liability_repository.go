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

// LiabilityRepository provides data access methods for the liability table.
type LiabilityRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewLiabilityRepository creates a new LiabilityRepository with the provided database connection.
func NewLiabilityRepository(db *sql.DB) *LiabilityRepository {
	return &LiabilityRepository{db: db}
}

// WithTx returns a copy of the repository scoped to the given transaction.
func (r *LiabilityRepository) WithTx(tx *sql.Tx) *LiabilityRepository {
	return &LiabilityRepository{db: r.db, tx: tx}
}

func (r *LiabilityRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// ListByUser retrieves all liabilities owned by the given user, oldest first.
func (r *LiabilityRepository) ListByUser(userID string) ([]model.Liability, error) {
	query := `
		SELECT id, user_id, name, amount, currency, notes, created_at
		FROM liability
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.getQuerier().Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liability table: %w", err)
	}
	defer rows.Close()

	liabilities := []model.Liability{}
	for rows.Next() {
		l, err := scanLiability(rows)
		if err != nil {
			return nil, err
		}
		liabilities = append(liabilities, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating liability table: %w", err)
	}

	return liabilities, nil
}

// GetByID retrieves a single liability owned by the given user.
// Returns apperrors.ErrLiabilityNotFound when no such row exists.
func (r *LiabilityRepository) GetByID(userID, liabilityID string) (model.Liability, error) {
	query := `
		SELECT id, user_id, name, amount, currency, notes, created_at
		FROM liability
		WHERE id = ? AND user_id = ?
	`

	row := r.getQuerier().QueryRow(query, liabilityID, userID)
	l, err := scanLiability(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Liability{}, apperrors.ErrLiabilityNotFound
	}
	if err != nil {
		return model.Liability{}, err
	}

	return l, nil
}

// Insert stores a new liability row.
func (r *LiabilityRepository) Insert(ctx context.Context, l *model.Liability) error {
	query := `
		INSERT INTO liability (id, user_id, name, amount, currency, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		l.ID,
		l.UserID,
		l.Name,
		l.Amount.String(),
		l.Currency,
		l.Notes,
		l.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert liability: %w", err)
	}

	return nil
}

// Update overwrites the mutable fields of a liability owned by the user.
func (r *LiabilityRepository) Update(ctx context.Context, l *model.Liability) error {
	query := `
		UPDATE liability
		SET name = ?, amount = ?, currency = ?, notes = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		l.Name,
		l.Amount.String(),
		l.Currency,
		l.Notes,
		l.ID,
		l.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update liability: %w", err)
	}

	return requireRow(result, apperrors.ErrLiabilityNotFound)
}

// Delete removes a liability owned by the user.
func (r *LiabilityRepository) Delete(ctx context.Context, userID, liabilityID string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM liability WHERE id = ? AND user_id = ?`, liabilityID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete liability: %w", err)
	}

	return requireRow(result, apperrors.ErrLiabilityNotFound)
}

// scanLiability reads one liability row from either *sql.Row or *sql.Rows.
func scanLiability(row interface{ Scan(dest ...any) error }) (model.Liability, error) {
	var l model.Liability
	var amountStr string
	var notes, createdAtStr sql.NullString

	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.Name,
		&amountStr,
		&l.Currency,
		&notes,
		&createdAtStr,
	)
	if err != nil {
		return model.Liability{}, err
	}

	l.Notes = notes.String

	if l.Amount, err = ParseDecimal(amountStr); err != nil {
		return model.Liability{}, err
	}

	if createdAtStr.Valid {
		if l.CreatedAt, err = ParseTime(createdAtStr.String); err != nil {
			return model.Liability{}, err
		}
	}

	return l, nil
}
