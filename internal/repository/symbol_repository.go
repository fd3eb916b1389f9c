package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
)

// SymbolRepository provides data access methods for the reference
// symbol tables. One table per market; contents are bulk-replaced by
// import jobs and read-only at request time.
type SymbolRepository struct {
	db *sql.DB
}

// NewSymbolRepository creates a new SymbolRepository with the provided database connection.
func NewSymbolRepository(db *sql.DB) *SymbolRepository {
	return &SymbolRepository{db: db}
}

// tableFor maps a market to its symbol table. The table name is taken
// from this fixed map, never from request input.
func tableFor(market model.Market) (string, error) {
	switch market {
	case model.MarketBist:
		return "bist_symbol", nil
	case model.MarketUS:
		return "us_symbol", nil
	default:
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidMarket, market)
	}
}

// Lookup retrieves the display name entry for a symbol in the given market.
// Returns apperrors.ErrSymbolNotFound when the symbol is unknown.
func (r *SymbolRepository) Lookup(market model.Market, symbol string) (model.ReferenceSymbol, error) {
	table, err := tableFor(market)
	if err != nil {
		return model.ReferenceSymbol{}, err
	}

	var s model.ReferenceSymbol
	err = r.db.QueryRow(`SELECT id, symbol, name FROM `+table+` WHERE symbol = ?`, symbol).
		Scan(&s.ID, &s.Symbol, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ReferenceSymbol{}, apperrors.ErrSymbolNotFound
	}
	if err != nil {
		return model.ReferenceSymbol{}, fmt.Errorf("failed to query %s table: %w", table, err)
	}

	return s, nil
}

// Search retrieves up to limit entries whose symbol starts with the
// given prefix, sorted by symbol.
func (r *SymbolRepository) Search(market model.Market, prefix string, limit int) ([]model.ReferenceSymbol, error) {
	table, err := tableFor(market)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, symbol, name FROM ` + table + `
		WHERE symbol LIKE ? ESCAPE '\'
		ORDER BY symbol ASC
		LIMIT ?
	`

	rows, err := r.db.Query(query, escapeLike(prefix)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s table: %w", table, err)
	}
	defer rows.Close()

	symbols := []model.ReferenceSymbol{}
	for rows.Next() {
		var s model.ReferenceSymbol
		if err := rows.Scan(&s.ID, &s.Symbol, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		symbols = append(symbols, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s table: %w", table, err)
	}

	return symbols, nil
}

// Count returns the number of entries in a market's symbol table.
func (r *SymbolRepository) Count(market model.Market) (int, error) {
	table, err := tableFor(market)
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s table: %w", table, err)
	}

	return count, nil
}

// ReplaceAll swaps the full contents of a market's symbol table for
// the given entries inside one transaction, so readers never observe a
// partially loaded table.
func (r *SymbolRepository) ReplaceAll(ctx context.Context, market model.Market, entries []model.ReferenceSymbol) error {
	table, err := tableFor(market)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("failed to clear %s table: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+table+` (id, symbol, name) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Symbol, e.Name); err != nil {
			return fmt.Errorf("failed to insert symbol %s: %w", e.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit symbol import: %w", err)
	}

	return nil
}

// escapeLike escapes LIKE wildcards in user-supplied prefixes.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
