package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odemir/networth-tracker-backend/internal/api/middleware"
	"github.com/odemir/networth-tracker-backend/internal/api/request"
	"github.com/odemir/networth-tracker-backend/internal/api/response"
	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/service"
	"github.com/odemir/networth-tracker-backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions handles GET requests to retrieve the user's
// transactions, newest first.
//
// Endpoint: GET /api/transaction?assetId=...&kind=buy|sell
// Response: 200 OK with array of Transaction
// Error: 400 Bad Request on a malformed filter
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	filter := model.TransactionFilter{
		AssetID: r.URL.Query().Get("assetId"),
		Kind:    model.TransactionKind(r.URL.Query().Get("kind")),
	}

	if filter.AssetID != "" {
		if err := validation.ValidateUUID(filter.AssetID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid assetId filter", err.Error())
			return
		}
	}
	if filter.Kind != "" && !model.ValidTransactionKinds[filter.Kind] {
		response.RespondError(w, http.StatusBadRequest, "invalid kind filter", string(filter.Kind))
		return
	}

	transactions, err := h.transactionService.GetTransactions(middleware.UserID(r), filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /api/transaction/{uuid}
// Response: 200 OK with Transaction
// Error: 404 Not Found if the transaction does not exist for this user
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transaction, err := h.transactionService.GetTransaction(middleware.UserID(r), chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransaction.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// RecordTransaction handles POST requests appending a buy or sell
// event. The response carries the immutable transaction row plus the
// asset as it stands afterwards (absent when a sale closed the
// position).
//
// Endpoint: POST /api/transaction
// Request Body: RecordTransactionRequest (assetId, kind, quantity, unitPrice)
// Response: 201 Created with RecordResult
// Error: 400 Bad Request if validation fails or the sale exceeds the held quantity
// Error: 404 Not Found if the asset does not exist for this user
// Error: 500 Internal Server Error if recording fails
func (h *TransactionHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RecordTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRecordTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.transactionService.RecordTransaction(r.Context(), middleware.UserID(r), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAssetNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrInsufficientQuantity):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInsufficientQuantity.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to record transaction", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, result)
}
