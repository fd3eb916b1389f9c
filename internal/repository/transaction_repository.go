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

// TransactionRepository provides data access methods for the
// transaction table. Transactions are append-mostly: there is no
// update path and no delete path in normal flow.
type TransactionRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// WithTx returns a copy of the repository scoped to the given transaction.
func (r *TransactionRepository) WithTx(tx *sql.Tx) *TransactionRepository {
	return &TransactionRepository{db: r.db, tx: tx}
}

func (r *TransactionRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const transactionColumns = `id, user_id, asset_id, kind, asset_name, asset_type, quantity, unit_price, total_amount, realized_pnl, currency, notes, created_at`

// Insert appends a transaction row.
func (r *TransactionRepository) Insert(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO "transaction" (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var assetID any
	if t.AssetID != nil {
		assetID = *t.AssetID
	}

	_, err := r.getQuerier().ExecContext(ctx, query,
		t.ID,
		t.UserID,
		assetID,
		string(t.Kind),
		t.AssetName,
		string(t.AssetType),
		t.Quantity.String(),
		t.UnitPrice.String(),
		t.TotalAmount.String(),
		t.RealizedPnL.String(),
		t.Currency,
		t.Notes,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ListByUser retrieves the user's transactions, newest first,
// optionally filtered by asset or kind. Returns an empty slice when
// nothing matches.
func (r *TransactionRepository) ListByUser(userID string, filter model.TransactionFilter) ([]model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM "transaction"
		WHERE user_id = ?
	`
	args := []any{userID}

	if filter.AssetID != "" {
		query += ` AND asset_id = ?`
		args = append(args, filter.AssetID)
	}
	if filter.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(filter.Kind))
	}

	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetByID retrieves a single transaction owned by the given user.
// Returns apperrors.ErrTransactionNotFound when no such row exists.
func (r *TransactionRepository) GetByID(userID, transactionID string) (model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM "transaction"
		WHERE id = ? AND user_id = ?
	`

	row := r.getQuerier().QueryRow(query, transactionID, userID)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}

	return t, nil
}

// scanTransaction reads one transaction row from either *sql.Row or *sql.Rows.
func scanTransaction(row interface{ Scan(dest ...any) error }) (model.Transaction, error) {
	var t model.Transaction
	var kind, assetType, quantityStr, unitPriceStr, totalAmountStr, realizedStr string
	var assetID, notes, createdAtStr sql.NullString

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&assetID,
		&kind,
		&t.AssetName,
		&assetType,
		&quantityStr,
		&unitPriceStr,
		&totalAmountStr,
		&realizedStr,
		&t.Currency,
		&notes,
		&createdAtStr,
	)
	if err != nil {
		return model.Transaction{}, err
	}

	t.Kind = model.TransactionKind(kind)
	t.AssetType = model.AssetType(assetType)
	t.Notes = notes.String

	// asset_id is nullable: it survives deletion of the asset.
	if assetID.Valid {
		id := assetID.String
		t.AssetID = &id
	}

	if t.Quantity, err = ParseDecimal(quantityStr); err != nil {
		return model.Transaction{}, err
	}
	if t.UnitPrice, err = ParseDecimal(unitPriceStr); err != nil {
		return model.Transaction{}, err
	}
	if t.TotalAmount, err = ParseDecimal(totalAmountStr); err != nil {
		return model.Transaction{}, err
	}
	if t.RealizedPnL, err = ParseDecimal(realizedStr); err != nil {
		return model.Transaction{}, err
	}

	if createdAtStr.Valid {
		if t.CreatedAt, err = ParseTime(createdAtStr.String); err != nil {
			return model.Transaction{}, err
		}
	}

	return t, nil
}
