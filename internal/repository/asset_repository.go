package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
)

// AssetRepository provides data access methods for the asset table.
type AssetRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// WithTx returns a copy of the repository scoped to the given transaction.
func (r *AssetRepository) WithTx(tx *sql.Tx) *AssetRepository {
	return &AssetRepository{db: r.db, tx: tx}
}

func (r *AssetRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const assetColumns = `id, user_id, name, type, symbol, quantity, purchase_price, current_price, currency, purchase_date, notes, created_at`

// ListByUser retrieves all assets owned by the given user, oldest first.
// Returns an empty slice if the user holds nothing.
func (r *AssetRepository) ListByUser(userID string) ([]model.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM asset
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.getQuerier().Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

// GetByID retrieves a single asset owned by the given user.
// Returns apperrors.ErrAssetNotFound when no such row exists.
func (r *AssetRepository) GetByID(userID, assetID string) (model.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM asset
		WHERE id = ? AND user_id = ?
	`

	row := r.getQuerier().QueryRow(query, assetID, userID)
	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	if err != nil {
		return model.Asset{}, err
	}

	return a, nil
}

// Insert stores a new asset row.
func (r *AssetRepository) Insert(ctx context.Context, a *model.Asset) error {
	query := `
		INSERT INTO asset (` + assetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var purchaseDate any
	if a.PurchaseDate != nil {
		purchaseDate = a.PurchaseDate.Format("2006-01-02")
	}

	_, err := r.getQuerier().ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.Name,
		string(a.Type),
		a.Symbol,
		a.Quantity.String(),
		a.PurchasePrice.String(),
		a.CurrentPrice.String(),
		a.Currency,
		purchaseDate,
		a.Notes,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	return nil
}

// Update overwrites the mutable fields of an asset owned by the user.
// Returns apperrors.ErrAssetNotFound when no row matches.
func (r *AssetRepository) Update(ctx context.Context, a *model.Asset) error {
	query := `
		UPDATE asset
		SET name = ?, type = ?, symbol = ?, quantity = ?, purchase_price = ?,
		    current_price = ?, currency = ?, purchase_date = ?, notes = ?
		WHERE id = ? AND user_id = ?
	`

	var purchaseDate any
	if a.PurchaseDate != nil {
		purchaseDate = a.PurchaseDate.Format("2006-01-02")
	}

	result, err := r.getQuerier().ExecContext(ctx, query,
		a.Name,
		string(a.Type),
		a.Symbol,
		a.Quantity.String(),
		a.PurchasePrice.String(),
		a.CurrentPrice.String(),
		a.Currency,
		purchaseDate,
		a.Notes,
		a.ID,
		a.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	return requireRow(result, apperrors.ErrAssetNotFound)
}

// UpdatePrice sets a new current price on an asset owned by the user.
// This is the write path for the external price-refresh collaborator.
func (r *AssetRepository) UpdatePrice(ctx context.Context, userID, assetID string, price decimal.Decimal) error {
	query := `UPDATE asset SET current_price = ? WHERE id = ? AND user_id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, price.String(), assetID, userID)
	if err != nil {
		return fmt.Errorf("failed to update asset price: %w", err)
	}

	return requireRow(result, apperrors.ErrAssetNotFound)
}

// UpdatePosition rewrites quantity and blended purchase price, used by
// the buy/sell recording path inside its transaction.
func (r *AssetRepository) UpdatePosition(ctx context.Context, userID, assetID string, quantity, purchasePrice decimal.Decimal) error {
	query := `UPDATE asset SET quantity = ?, purchase_price = ? WHERE id = ? AND user_id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, quantity.String(), purchasePrice.String(), assetID, userID)
	if err != nil {
		return fmt.Errorf("failed to update asset position: %w", err)
	}

	return requireRow(result, apperrors.ErrAssetNotFound)
}

// Delete removes an asset owned by the user. Transactions referencing
// it keep their rows with the asset reference cleared by the schema.
func (r *AssetRepository) Delete(ctx context.Context, userID, assetID string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM asset WHERE id = ? AND user_id = ?`, assetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return requireRow(result, apperrors.ErrAssetNotFound)
}

// DistinctUserIDs returns every user that currently holds assets or
// liabilities. The snapshot job iterates this set.
func (r *AssetRepository) DistinctUserIDs() ([]string, error) {
	query := `
		SELECT user_id FROM asset
		UNION
		SELECT user_id FROM liability
		ORDER BY user_id
	`

	rows, err := r.getQuerier().Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user IDs: %w", err)
	}
	defer rows.Close()

	userIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user ID: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user IDs: %w", err)
	}

	return userIDs, nil
}

// scanAsset reads one asset row from either *sql.Row or *sql.Rows.
func scanAsset(row interface{ Scan(dest ...any) error }) (model.Asset, error) {
	var a model.Asset
	var assetType, quantityStr, purchasePriceStr, currentPriceStr string
	var symbol, purchaseDateStr, notes, createdAtStr sql.NullString

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&assetType,
		&symbol,
		&quantityStr,
		&purchasePriceStr,
		&currentPriceStr,
		&a.Currency,
		&purchaseDateStr,
		&notes,
		&createdAtStr,
	)
	if err != nil {
		return model.Asset{}, err
	}

	a.Type = model.AssetType(assetType)
	a.Symbol = symbol.String
	a.Notes = notes.String

	if a.Quantity, err = ParseDecimal(quantityStr); err != nil {
		return model.Asset{}, err
	}
	if a.PurchasePrice, err = ParseDecimal(purchasePriceStr); err != nil {
		return model.Asset{}, err
	}
	if a.CurrentPrice, err = ParseDecimal(currentPriceStr); err != nil {
		return model.Asset{}, err
	}

	if purchaseDateStr.Valid {
		d, err := ParseTime(purchaseDateStr.String)
		if err != nil {
			return model.Asset{}, err
		}
		a.PurchaseDate = &d
	}

	if createdAtStr.Valid {
		if a.CreatedAt, err = ParseTime(createdAtStr.String); err != nil {
			return model.Asset{}, err
		}
	}

	return a, nil
}

// requireRow converts a zero-row update/delete into the given sentinel error.
func requireRow(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
