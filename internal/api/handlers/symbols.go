package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odemir/networth-tracker-backend/internal/api/response"
	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/service"
)

// SymbolHandler handles HTTP requests for the reference symbol tables.
// Symbol data is shared lookup data, not user-owned, so these routes
// carry no user scope.
type SymbolHandler struct {
	symbolService *service.SymbolService
}

// NewSymbolHandler creates a new SymbolHandler with the provided service dependency.
func NewSymbolHandler(symbolService *service.SymbolService) *SymbolHandler {
	return &SymbolHandler{
		symbolService: symbolService,
	}
}

// Search handles GET requests for a prefix search over a market's
// symbol table.
//
// Endpoint: GET /api/symbol/{market}?q=TH
// Response: 200 OK with array of ReferenceSymbol (capped)
// Error: 400 Bad Request on an unknown market
// Error: 500 Internal Server Error if the search fails
func (h *SymbolHandler) Search(w http.ResponseWriter, r *http.Request) {
	market := model.Market(chi.URLParam(r, "market"))
	if !model.ValidMarkets[market] {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMarket.Error(), string(market))
		return
	}

	symbols, err := h.symbolService.Search(market, r.URL.Query().Get("q"))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSymbol.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, symbols)
}

// Lookup handles GET requests resolving an exact symbol in a market.
//
// Endpoint: GET /api/symbol/{market}/{symbol}
// Response: 200 OK with ReferenceSymbol
// Error: 400 Bad Request on an unknown market
// Error: 404 Not Found if the symbol is not in the table
// Error: 500 Internal Server Error if the lookup fails
func (h *SymbolHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	market := model.Market(chi.URLParam(r, "market"))
	if !model.ValidMarkets[market] {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMarket.Error(), string(market))
		return
	}

	symbol, err := h.symbolService.Lookup(market, chi.URLParam(r, "symbol"))
	if err != nil {
		if errors.Is(err, apperrors.ErrSymbolNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSymbolNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSymbol.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, symbol)
}
