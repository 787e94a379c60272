package handlers

import (
	"net/http"

	"github.com/chargepilot/chargepilot/backend/internal/api/middleware"
	"github.com/chargepilot/chargepilot/backend/internal/application/services"
)

// StationHandler handles station HTTP requests
type StationHandler struct {
	stationService *services.StationService
	reviewService  *services.ReviewService
	reportService  *services.ReportService
}

// NewStationHandler creates a new station handler
func NewStationHandler(
	stationService *services.StationService,
	reviewService *services.ReviewService,
	reportService *services.ReportService,
) *StationHandler {
	return &StationHandler{
		stationService: stationService,
		reviewService:  reviewService,
		reportService:  reportService,
	}
}

// ListStations handles GET /api/stations
func (h *StationHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	stations, err := h.stationService.List(r.Context(), middleware.Role(r.Context()), includeInactive)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stations": stations,
		"count":    len(stations),
	})
}

// GetStation handles GET /api/stations/{id}
func (h *StationHandler) GetStation(w http.ResponseWriter, r *http.Request) {
	stationID := r.PathValue("id")
	if stationID == "" {
		respondWithError(w, http.StatusBadRequest, "station ID is required")
		return
	}

	station, err := h.stationService.Get(r.Context(), stationID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, station)
}

// ListOwnedStations handles GET /api/stations/mine
func (h *StationHandler) ListOwnedStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.stationService.ListOwned(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stations": stations,
		"count":    len(stations),
	})
}

// CreateStation handles POST /api/stations
func (h *StationHandler) CreateStation(w http.ResponseWriter, r *http.Request) {
	var input services.StationInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithAppError(w, err)
		return
	}

	ctx := r.Context()
	station, err := h.stationService.Create(ctx, middleware.UserID(ctx), middleware.Role(ctx), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, station)
}

// DeleteStation handles DELETE /api/stations/{id}
func (h *StationHandler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	stationID := r.PathValue("id")
	if stationID == "" {
		respondWithError(w, http.StatusBadRequest, "station ID is required")
		return
	}

	ctx := r.Context()
	if err := h.stationService.Deactivate(ctx, middleware.UserID(ctx), middleware.Role(ctx), stationID); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateStation handles PUT /api/stations/{id}
func (h *StationHandler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	stationID := r.PathValue("id")
	if stationID == "" {
		respondWithError(w, http.StatusBadRequest, "station ID is required")
		return
	}

	var input services.StationInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithAppError(w, err)
		return
	}

	ctx := r.Context()
	station, err := h.stationService.Update(ctx, middleware.UserID(ctx), middleware.Role(ctx), stationID, input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, station)
}

// CreateReview handles POST /api/stations/{id}/reviews
func (h *StationHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	stationID := r.PathValue("id")
	if stationID == "" {
		respondWithError(w, http.StatusBadRequest, "station ID is required")
		return
	}

	var input services.ReviewInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithAppError(w, err)
		return
	}

	review, err := h.reviewService.Create(r.Context(), middleware.UserID(r.Context()), stationID, input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

// ListReviews handles GET /api/stations/{id}/reviews
func (h *StationHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	stationID := r.PathValue("id")
	if stationID == "" {
		respondWithError(w, http.StatusBadRequest, "station ID is required")
		return
	}

	reviews, err := h.reviewService.ListByStation(r.Context(), stationID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// CreateReport handles POST /api/stations/{id}/reports
func (h *StationHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	stationID := r.PathValue("id")
	if stationID == "" {
		respondWithError(w, http.StatusBadRequest, "station ID is required")
		return
	}

	var input services.ReportInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithAppError(w, err)
		return
	}

	report, err := h.reportService.Create(r.Context(), middleware.UserID(r.Context()), stationID, input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, report)
}
