package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/odemir/networth-tracker-backend/internal/api/middleware"
	"github.com/odemir/networth-tracker-backend/internal/api/request"
	"github.com/odemir/networth-tracker-backend/internal/api/response"
	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/model"
	"github.com/odemir/networth-tracker-backend/internal/service"
)

// PerformanceHandler handles HTTP requests for the monthly net-worth
// snapshot series.
type PerformanceHandler struct {
	performanceService *service.PerformanceService
}

// NewPerformanceHandler creates a new PerformanceHandler with the provided service dependency.
func NewPerformanceHandler(performanceService *service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{
		performanceService: performanceService,
	}
}

// GetSeries handles GET requests for the user's snapshot history,
// sorted ascending by month.
//
// Endpoint: GET /api/performance?months=12 or ?start=2025-01
// Response: 200 OK with array of PerformanceSnapshot
// Error: 400 Bad Request on a malformed months or start value
// Error: 500 Internal Server Error if retrieval fails
func (h *PerformanceHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	var seriesRange model.SeriesRange

	if raw := r.URL.Query().Get("months"); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil || months <= 0 {
			response.RespondError(w, http.StatusBadRequest, "invalid months filter", raw)
			return
		}
		seriesRange.Months = months
	}
	seriesRange.Start = r.URL.Query().Get("start")

	snapshots, err := h.performanceService.GetSeries(middleware.UserID(r), seriesRange)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidMonth) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSeries.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}

// TriggerSnapshot handles POST requests that value the portfolio now
// and upsert the result for the current month. Past months are frozen
// and future months rejected.
//
// Endpoint: POST /api/performance/snapshot
// Request Body: TriggerSnapshotRequest (month, optional)
// Response: 200 OK with the materialized PerformanceSnapshot
// Error: 400 Bad Request on a malformed or future month
// Error: 409 Conflict when the month is already closed
// Error: 500 Internal Server Error if the snapshot fails
func (h *PerformanceHandler) TriggerSnapshot(w http.ResponseWriter, r *http.Request) {
	// An empty body means "snapshot the current month".
	req, err := parseJSON[request.TriggerSnapshotRequest](r)
	if err != nil && !errors.Is(err, io.EOF) {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	snapshot, err := h.performanceService.ComputeSnapshot(r.Context(), middleware.UserID(r), req.Month)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidMonth):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), err.Error())
		case errors.Is(err, apperrors.ErrSnapshotMonthClosed):
			response.RespondError(w, http.StatusConflict, apperrors.ErrSnapshotMonthClosed.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeSnapshot.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}
