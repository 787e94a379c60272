package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// ClaimInput is the payload for filing an ownership claim.
type ClaimInput struct {
	StationID string `json:"station_id"`
	ProofURL  string `json:"proof_url"`
}

// ClaimService handles station ownership claims. Claims start PENDING; an
// admin resolves them, and approval hands the station to the claimant and
// promotes them to owner in one store write.
type ClaimService struct {
	claims repositories.ClaimRepository
}

// NewClaimService creates a new claim service.
func NewClaimService(claims repositories.ClaimRepository) *ClaimService {
	return &ClaimService{claims: claims}
}

// Create files a claim. The store rejects a second PENDING claim by the same
// user on the same station.
func (s *ClaimService) Create(ctx context.Context, userID string, input ClaimInput) (*entities.Claim, error) {
	if strings.TrimSpace(input.StationID) == "" {
		return nil, apperrors.NewValidationError("station_id is required")
	}
	if strings.TrimSpace(input.ProofURL) == "" {
		return nil, apperrors.NewValidationError("proof_url is required")
	}

	now := time.Now().UTC()
	claim := &entities.Claim{
		ID:        uuid.New().String(),
		UserID:    userID,
		StationID: strings.TrimSpace(input.StationID),
		ProofURL:  strings.TrimSpace(input.ProofURL),
		Status:    entities.ClaimStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.claims.Create(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// ListMine returns the calling user's claims.
func (s *ClaimService) ListMine(ctx context.Context, userID string) ([]*entities.Claim, error) {
	return s.claims.ListByUser(ctx, userID)
}

// List returns claims, optionally filtered by status. Admin only.
func (s *ClaimService) List(ctx context.Context, role, status string) ([]*entities.Claim, error) {
	if !entities.RoleAllowed(role, entities.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins can list claims")
	}
	return s.claims.List(ctx, strings.ToUpper(strings.TrimSpace(status)))
}

// Resolve approves or rejects a PENDING claim. Admin only.
func (s *ClaimService) Resolve(ctx context.Context, role, claimID, status, adminComment string) (*entities.Claim, error) {
	if !entities.RoleAllowed(role, entities.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins can resolve claims")
	}
	status = strings.ToUpper(strings.TrimSpace(status))
	if status != entities.ClaimStatusApproved && status != entities.ClaimStatusRejected {
		return nil, apperrors.NewValidationError("status must be APPROVED or REJECTED")
	}

	if err := s.claims.Resolve(ctx, claimID, status, strings.TrimSpace(adminComment)); err != nil {
		return nil, err
	}
	return s.claims.GetByID(ctx, claimID)
}
