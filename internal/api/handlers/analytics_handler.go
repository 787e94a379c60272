package handlers

import (
	"net/http"

	"github.com/chargepilot/chargepilot/backend/internal/api/middleware"
	"github.com/chargepilot/chargepilot/backend/internal/application/services"
)

// AnalyticsHandler handles admin analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetOverview handles GET /api/analytics/overview
func (h *AnalyticsHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analyticsService.Overview(r.Context(), middleware.Role(r.Context()))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, overview)
}
