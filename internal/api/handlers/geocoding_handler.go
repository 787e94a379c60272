package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
)

// GeocodingHandler handles geocoding endpoints.
type GeocodingHandler struct {
	provider providers.GeocodingProvider
}

// NewGeocodingHandler creates a new geocoding handler.
func NewGeocodingHandler(provider providers.GeocodingProvider) *GeocodingHandler {
	return &GeocodingHandler{provider: provider}
}

// Geocode handles GET /api/geocode?q=...
func (h *GeocodingHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "q parameter is required")
		return
	}

	place, err := h.provider.Geocode(r.Context(), query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("geocode failed")
		respondWithError(w, http.StatusBadGateway, "failed to geocode query")
		return
	}

	respondWithJSON(w, http.StatusOK, place)
}

// ReverseGeocode handles GET /api/reverse-geocode?lat=...&lon=...
func (h *GeocodingHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	latStr := strings.TrimSpace(r.URL.Query().Get("lat"))
	lonStr := strings.TrimSpace(r.URL.Query().Get("lon"))
	if latStr == "" || lonStr == "" {
		respondWithError(w, http.StatusBadRequest, "lat and lon parameters are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lat parameter")
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lon parameter")
		return
	}

	place, err := h.provider.ReverseGeocode(r.Context(), lat, lon)
	if err != nil {
		log.Warn().Err(err).Msg("reverse geocode failed")
		respondWithError(w, http.StatusBadGateway, "failed to reverse geocode")
		return
	}

	respondWithJSON(w, http.StatusOK, place)
}
