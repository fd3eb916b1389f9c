package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odemir/networth-tracker-backend/internal/api/middleware"
	"github.com/odemir/networth-tracker-backend/internal/api/request"
	"github.com/odemir/networth-tracker-backend/internal/api/response"
	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/service"
	"github.com/odemir/networth-tracker-backend/internal/validation"
)

// LiabilityHandler handles HTTP requests for liability endpoints.
type LiabilityHandler struct {
	liabilityService *service.LiabilityService
}

// NewLiabilityHandler creates a new LiabilityHandler with the provided service dependency.
func NewLiabilityHandler(liabilityService *service.LiabilityService) *LiabilityHandler {
	return &LiabilityHandler{
		liabilityService: liabilityService,
	}
}

// ListLiabilities handles GET requests to retrieve all liabilities for the user.
//
// Endpoint: GET /api/liability
// Response: 200 OK with array of Liability
// Error: 500 Internal Server Error if retrieval fails
func (h *LiabilityHandler) ListLiabilities(w http.ResponseWriter, r *http.Request) {
	liabilities, err := h.liabilityService.GetLiabilities(middleware.UserID(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveLiabilities.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, liabilities)
}

// CreateLiability handles POST requests to record a new liability.
//
// Endpoint: POST /api/liability
// Request Body: CreateLiabilityRequest (name, amount, currency, notes)
// Response: 201 Created with the new Liability
// Error: 400 Bad Request if validation fails
// Error: 500 Internal Server Error if creation fails
func (h *LiabilityHandler) CreateLiability(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateLiabilityRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateLiability(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	liability, err := h.liabilityService.CreateLiability(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create liability", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, liability)
}

// UpdateLiability handles PUT requests to modify an existing liability.
//
// Endpoint: PUT /api/liability/{uuid}
// Request Body: UpdateLiabilityRequest (partial update, absent fields untouched)
// Response: 200 OK with the updated Liability
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the liability does not exist for this user
// Error: 500 Internal Server Error if the update fails
func (h *LiabilityHandler) UpdateLiability(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateLiabilityRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateLiability(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	liability, err := h.liabilityService.UpdateLiability(r.Context(), middleware.UserID(r), chi.URLParam(r, "uuid"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrLiabilityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrLiabilityNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update liability", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, liability)
}

// DeleteLiability handles DELETE requests to remove a liability.
//
// Endpoint: DELETE /api/liability/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the liability does not exist for this user
// Error: 500 Internal Server Error if deletion fails
func (h *LiabilityHandler) DeleteLiability(w http.ResponseWriter, r *http.Request) {
	err := h.liabilityService.DeleteLiability(r.Context(), middleware.UserID(r), chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrLiabilityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrLiabilityNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete liability", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
