package handlers

import (
	"net/http"

	"github.com/chargepilot/chargepilot/backend/internal/api/middleware"
	"github.com/chargepilot/chargepilot/backend/internal/application/services"
)

// VehicleHandler handles vehicle HTTP requests
type VehicleHandler struct {
	vehicleService *services.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// CreateVehicle handles POST /api/vehicles
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var input services.VehicleInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithAppError(w, err)
		return
	}

	vehicle, err := h.vehicleService.Create(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, vehicle)
}

// ListVehicles handles GET /api/vehicles
func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicleService.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// UpdateVehicle handles PUT /api/vehicles/{id}
func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	if vehicleID == "" {
		respondWithError(w, http.StatusBadRequest, "vehicle ID is required")
		return
	}

	var input services.VehicleInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithAppError(w, err)
		return
	}

	vehicle, err := h.vehicleService.Update(r.Context(), middleware.UserID(r.Context()), vehicleID, input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, vehicle)
}

// DeleteVehicle handles DELETE /api/vehicles/{id}
func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.PathValue("id")
	if vehicleID == "" {
		respondWithError(w, http.StatusBadRequest, "vehicle ID is required")
		return
	}

	if err := h.vehicleService.Delete(r.Context(), middleware.UserID(r.Context()), vehicleID); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
