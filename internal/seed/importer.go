// Package seed loads the reference symbol tables from exported symbol
// list files. It is a batch maintenance job, not part of the live
// request path: each run locates the newest matching file for a
// market, parses it into (symbol, name) pairs and replaces the table
// contents wholesale.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/repository"
)

// Column detection is case-insensitive: the symbol column is the first
// header containing one of symbolColumns, likewise for the name. The
// fallbacks cover the headings seen in exchange exports ("Code" on
// BIST lists, "Ticker"/"Title" on US lists).
var (
	symbolColumns = []string{"symbol", "code", "ticker"}
	nameColumns   = []string{"name", "title", "description"}
)

// filePatterns maps each market to the file glob its import scans for.
var filePatterns = map[model.Market]string{
	model.MarketBist: "bist_*.csv",
	model.MarketUS:   "us_*.csv",
}

// Importer populates the reference symbol tables from files in Dir.
type Importer struct {
	symbolRepo *repository.SymbolRepository
	dir        string
	log        zerolog.Logger
}

// NewImporter creates an Importer scanning the given directory.
func NewImporter(symbolRepo *repository.SymbolRepository, dir string, log zerolog.Logger) *Importer {
	return &Importer{
		symbolRepo: symbolRepo,
		dir:        dir,
		log:        log.With().Str("component", "seed").Logger(),
	}
}

// ImportMarket loads the newest matching file for the market and
// replaces the market's symbol table. Returns the number of entries
// loaded.
func (i *Importer) ImportMarket(ctx context.Context, market model.Market) (int, error) {
	pattern, ok := filePatterns[market]
	if !ok {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidMarket, market)
	}

	path, err := latestFile(i.dir, pattern)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ParseSymbolFile(f)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := i.symbolRepo.ReplaceAll(ctx, market, entries); err != nil {
		return 0, err
	}

	i.log.Info().
		Str("market", string(market)).
		Str("file", filepath.Base(path)).
		Int("symbols", len(entries)).
		Msg("Reference symbols imported")

	return len(entries), nil
}

// ImportAll runs ImportMarket for every market that has a matching
// file. Markets without files are skipped, not failed: seed files
// arrive independently per market.
func (i *Importer) ImportAll(ctx context.Context) error {
	for _, market := range []model.Market{model.MarketBist, model.MarketUS} {
		if _, err := i.ImportMarket(ctx, market); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				i.log.Warn().Str("market", string(market)).Msg("No seed file found, skipping")
				continue
			}
			return err
		}
	}
	return nil
}

// latestFile returns the most recently modified file in dir matching
// the glob pattern. Returns os.ErrNotExist when nothing matches.
func latestFile(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("bad file pattern %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no file matching %s in %s: %w", pattern, dir, os.ErrNotExist)
	}

	var newest string
	var newestMod int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", m, err)
		}
		if newest == "" || info.ModTime().UnixNano() > newestMod {
			newest = m
			newestMod = info.ModTime().UnixNano()
		}
	}

	return newest, nil
}

// ParseSymbolFile reads a symbol list into (symbol, name) entries.
// Rows with an empty symbol or name are dropped, symbols are
// uppercased, and duplicate symbols keep the first occurrence.
func ParseSymbolFile(r io.Reader) ([]model.ReferenceSymbol, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	symbolCol := findColumn(header, symbolColumns)
	nameCol := findColumn(header, nameColumns)
	if symbolCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("could not detect symbol/name columns in header %v", header)
	}

	entries := []model.ReferenceSymbol{}
	seen := map[string]bool{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if symbolCol >= len(record) || nameCol >= len(record) {
			continue
		}

		symbol := strings.ToUpper(strings.TrimSpace(record[symbolCol]))
		name := strings.TrimSpace(record[nameCol])
		if symbol == "" || name == "" || seen[symbol] {
			continue
		}

		seen[symbol] = true
		entries = append(entries, model.ReferenceSymbol{
			ID:     uuid.New().String(),
			Symbol: symbol,
			Name:   name,
		})
	}

	return entries, nil
}

// findColumn returns the index of the first header containing one of
// the candidate substrings, case-insensitively. Candidates are tried
// in order so "symbol" wins over a "code" column when both exist.
func findColumn(header []string, candidates []string) int {
	for _, candidate := range candidates {
		for idx, h := range header {
			if strings.Contains(strings.ToLower(strings.TrimSpace(h)), candidate) {
				return idx
			}
		}
	}
	return -1
}
