package services

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
)

// TripService exposes the append-only trip log. Records are written by the
// feasibility pipeline; this service only reads them.
type TripService struct {
	trips repositories.TripRepository
}

// NewTripService creates a new trip service.
func NewTripService(trips repositories.TripRepository) *TripService {
	return &TripService{trips: trips}
}

// ListMine returns the calling user's trips, newest first.
func (s *TripService) ListMine(ctx context.Context, userID string) ([]*entities.Trip, error) {
	return s.trips.ListByUser(ctx, userID)
}
