package handlers

import (
	"net/http"

	"github.com/chargepilot/chargepilot/backend/internal/api/middleware"
	"github.com/chargepilot/chargepilot/backend/internal/application/services"
)

// ClaimHandler handles station ownership claim HTTP requests
type ClaimHandler struct {
	claimService *services.ClaimService
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// CreateClaim handles POST /api/claims
func (h *ClaimHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	var input services.ClaimInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithAppError(w, err)
		return
	}

	claim, err := h.claimService.Create(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, claim)
}

// ListMyClaims handles GET /api/claims/mine
func (h *ClaimHandler) ListMyClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.claimService.ListMine(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"claims": claims,
		"count":  len(claims),
	})
}

// ListClaims handles GET /api/claims
func (h *ClaimHandler) ListClaims(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	claims, err := h.claimService.List(r.Context(), middleware.Role(r.Context()), status)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"claims": claims,
		"count":  len(claims),
	})
}

// ResolveClaim handles PATCH /api/claims/{id}
func (h *ClaimHandler) ResolveClaim(w http.ResponseWriter, r *http.Request) {
	claimID := r.PathValue("id")
	if claimID == "" {
		respondWithError(w, http.StatusBadRequest, "claim ID is required")
		return
	}

	var body struct {
		Status       string `json:"status"`
		AdminComment string `json:"admin_comment"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondWithAppError(w, err)
		return
	}

	claim, err := h.claimService.Resolve(r.Context(), middleware.Role(r.Context()), claimID, body.Status, body.AdminComment)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, claim)
}
