package handlers

import (
	"net/http"

	"github.com/chargepilot/chargepilot/backend/internal/api/middleware"
	"github.com/chargepilot/chargepilot/backend/internal/application/services"
	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// TripHandler handles trip-planning HTTP requests
type TripHandler struct {
	feasibilityService *services.FeasibilityService
	tripService        *services.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(feasibilityService *services.FeasibilityService, tripService *services.TripService) *TripHandler {
	return &TripHandler{
		feasibilityService: feasibilityService,
		tripService:        tripService,
	}
}

// CheckFeasibility handles POST /api/trips/check-feasibility
func (h *TripHandler) CheckFeasibility(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Origin      entities.Coordinates `json:"origin"`
		Destination entities.Coordinates `json:"destination"`
		VehicleID   string               `json:"vehicle_id"`
		CurrentSoC  float64              `json:"current_soc"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.feasibilityService.CheckFeasibility(r.Context(), middleware.UserID(r.Context()), services.FeasibilityRequest{
		Origin:      body.Origin,
		Destination: body.Destination,
		VehicleID:   body.VehicleID,
		CurrentSoC:  body.CurrentSoC,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// ListTrips handles GET /api/trips
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.tripService.ListMine(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"trips": trips,
		"count": len(trips),
	})
}
