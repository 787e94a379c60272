package repositories

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// VehicleRepository defines the interface for vehicle operations.
//
// Create and Update enforce the single-default invariant: persisting a
// vehicle with IsDefault=true clears the flag on the owner's other vehicles
// inside the same store write.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entities.Vehicle) error
	GetByID(ctx context.Context, id string) (*entities.Vehicle, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Vehicle, error)
	Update(ctx context.Context, vehicle *entities.Vehicle) error
	Delete(ctx context.Context, id string) error
}
