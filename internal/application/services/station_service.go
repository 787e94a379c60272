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

// StationInput is the payload for creating or updating a station.
type StationInput struct {
	Name       string               `json:"name"`
	Location   entities.Coordinates `json:"location"`
	PowerKW    float64              `json:"power_kw"`
	Connectors []string             `json:"connectors"`
	Pricing    string               `json:"pricing"`
	Active     *bool                `json:"active,omitempty"`
}

// StationService manages the public station directory. Reads are open to any
// authenticated caller; writes require admin, or the owner of the station for
// updates.
type StationService struct {
	stations repositories.StationRepository
}

// NewStationService creates a new station service.
func NewStationService(stations repositories.StationRepository) *StationService {
	return &StationService{stations: stations}
}

// Create adds a station. Owners and admins only; new stations start
// unverified, active and at full health. Owner-created stations belong to
// the creator, admin-created ones stay unowned until claimed.
func (s *StationService) Create(ctx context.Context, userID, role string, input StationInput) (*entities.Station, error) {
	if !entities.RoleAllowed(role, entities.RoleOwner, entities.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only owners and admins can create stations")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("station name is required")
	}
	if input.Location.IsZero() {
		return nil, apperrors.NewValidationError("station location is required")
	}

	now := time.Now().UTC()
	station := &entities.Station{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(input.Name),
		Location:    input.Location,
		PowerKW:     input.PowerKW,
		Connectors:  input.Connectors,
		Pricing:     input.Pricing,
		HealthScore: 100,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if role == entities.RoleOwner {
		station.OwnerID = userID
	}
	if err := s.stations.Create(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

// List returns active stations. includeInactive requires admin and lifts the
// filter.
func (s *StationService) List(ctx context.Context, role string, includeInactive bool) ([]*entities.Station, error) {
	filter := repositories.StationFilter{ActiveOnly: true}
	if includeInactive {
		if !entities.RoleAllowed(role, entities.RoleAdmin) {
			return nil, apperrors.NewForbiddenError("only admins can list inactive stations")
		}
		filter.ActiveOnly = false
	}
	return s.stations.List(ctx, filter)
}

// Get returns one station by id, active or not.
func (s *StationService) Get(ctx context.Context, id string) (*entities.Station, error) {
	return s.stations.GetByID(ctx, id)
}

// ListOwned returns stations owned by the calling user.
func (s *StationService) ListOwned(ctx context.Context, userID string) ([]*entities.Station, error) {
	return s.stations.List(ctx, repositories.StationFilter{OwnerID: userID})
}

// Update replaces the mutable fields of a station. Admins can edit any
// station; owners only their own. Ownership, verification, health and review
// aggregates are not editable through this path.
func (s *StationService) Update(ctx context.Context, userID, role, stationID string, input StationInput) (*entities.Station, error) {
	station, err := s.stations.GetByID(ctx, stationID)
	if err != nil {
		return nil, err
	}
	if !entities.RoleAllowed(role, entities.RoleAdmin) && station.OwnerID != userID {
		return nil, apperrors.NewForbiddenError("not allowed to edit this station")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("station name is required")
	}
	if input.Location.IsZero() {
		return nil, apperrors.NewValidationError("station location is required")
	}

	station.Name = strings.TrimSpace(input.Name)
	station.Location = input.Location
	station.PowerKW = input.PowerKW
	station.Connectors = input.Connectors
	station.Pricing = input.Pricing
	if input.Active != nil {
		station.Active = *input.Active
	}
	station.UpdatedAt = time.Now().UTC()

	if err := s.stations.Update(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

// Deactivate soft-disables a station by clearing its active flag. Stations
// are never removed from the store; trips and reviews keep referencing them.
func (s *StationService) Deactivate(ctx context.Context, userID, role, stationID string) error {
	station, err := s.stations.GetByID(ctx, stationID)
	if err != nil {
		return err
	}
	if !entities.RoleAllowed(role, entities.RoleAdmin) && station.OwnerID != userID {
		return apperrors.NewForbiddenError("not allowed to disable this station")
	}

	station.Active = false
	station.UpdatedAt = time.Now().UTC()
	return s.stations.Update(ctx, station)
}
