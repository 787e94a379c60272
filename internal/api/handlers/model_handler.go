package handlers

import (
	"net/http"

	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
)

// ModelHandler exposes metadata about the deployed range model.
type ModelHandler struct {
	model providers.RangeModelProvider
}

// NewModelHandler creates a new model handler. model may be nil when no
// model service is configured.
func NewModelHandler(model providers.RangeModelProvider) *ModelHandler {
	return &ModelHandler{model: model}
}

// GetModelInfo handles GET /api/model/info
func (h *ModelHandler) GetModelInfo(w http.ResponseWriter, r *http.Request) {
	if h.model == nil {
		respondWithError(w, http.StatusServiceUnavailable, "model service is not configured")
		return
	}

	info, err := h.model.ModelInfo(r.Context())
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "model service is unavailable")
		return
	}

	respondWithJSON(w, http.StatusOK, info)
}
