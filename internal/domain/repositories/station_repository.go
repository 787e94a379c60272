package repositories

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// StationFilter narrows station listings.
type StationFilter struct {
	// ActiveOnly excludes soft-disabled stations.
	ActiveOnly bool
	// OwnerID, when set, restricts to stations owned by that user.
	OwnerID string
}

// StationRepository defines the interface for charging station operations.
// Stations are never removed; disabling is an Update with Active=false.
type StationRepository interface {
	Create(ctx context.Context, station *entities.Station) error
	GetByID(ctx context.Context, id string) (*entities.Station, error)
	List(ctx context.Context, filter StationFilter) ([]*entities.Station, error)
	Update(ctx context.Context, station *entities.Station) error
}
