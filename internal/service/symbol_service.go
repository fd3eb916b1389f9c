package service

import (
	"strings"

	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/repository"
)

// searchLimit caps prefix-search results served to form autocomplete.
const searchLimit = 25

// SymbolService serves the read-only reference symbol lookups.
type SymbolService struct {
	symbolRepo *repository.SymbolRepository
}

// NewSymbolService creates a new SymbolService with the provided repository dependency.
func NewSymbolService(symbolRepo *repository.SymbolRepository) *SymbolService {
	return &SymbolService{symbolRepo: symbolRepo}
}

// Lookup resolves a symbol to its display name entry. Symbols are
// matched case-insensitively by uppercasing the input, mirroring how
// the import stores them.
func (s *SymbolService) Lookup(market model.Market, symbol string) (model.ReferenceSymbol, error) {
	return s.symbolRepo.Lookup(market, strings.ToUpper(strings.TrimSpace(symbol)))
}

// Search returns entries whose symbol starts with the given prefix.
func (s *SymbolService) Search(market model.Market, prefix string) ([]model.ReferenceSymbol, error) {
	return s.symbolRepo.Search(market, strings.ToUpper(strings.TrimSpace(prefix)), searchLimit)
}
