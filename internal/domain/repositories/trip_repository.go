package repositories

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// TripRepository defines the interface for the append-only trip log.
type TripRepository interface {
	Create(ctx context.Context, trip *entities.Trip) error
	ListByUser(ctx context.Context, userID string) ([]*entities.Trip, error)
	ListAll(ctx context.Context) ([]*entities.Trip, error)
}
