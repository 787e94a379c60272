package store

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// VehicleAdapter implements repositories.VehicleRepository on the flat-file
// store.
type VehicleAdapter struct {
	client *jsonfile.Client
}

// NewVehicleAdapter creates a new vehicle adapter.
func NewVehicleAdapter(client *jsonfile.Client) repositories.VehicleRepository {
	return &VehicleAdapter{client: client}
}

// Create appends a vehicle, clearing other defaults of the same user when
// the new vehicle is marked default.
func (a *VehicleAdapter) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		if vehicle.IsDefault {
			clearDefaults(db, vehicle.UserID, "")
		}
		clone := *vehicle
		db.Vehicles = append(db.Vehicles, &clone)
		return nil
	})
}

// GetByID returns the vehicle with the given id.
func (a *VehicleAdapter) GetByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	var found *entities.Vehicle
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, v := range db.Vehicles {
			if v.ID == id {
				clone := *v
				found = &clone
				return nil
			}
		}
		return apperrors.NewNotFoundError("vehicle not found")
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ListByUser returns all vehicles of a user in insertion order.
func (a *VehicleAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Vehicle, error) {
	var vehicles []*entities.Vehicle
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, v := range db.Vehicles {
			if v.UserID == userID {
				clone := *v
				vehicles = append(vehicles, &clone)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Update replaces the stored vehicle, maintaining the default invariant.
func (a *VehicleAdapter) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		for i, v := range db.Vehicles {
			if v.ID == vehicle.ID {
				if vehicle.IsDefault {
					clearDefaults(db, vehicle.UserID, vehicle.ID)
				}
				clone := *vehicle
				db.Vehicles[i] = &clone
				return nil
			}
		}
		return apperrors.NewNotFoundError("vehicle not found")
	})
}

// Delete removes the vehicle record.
func (a *VehicleAdapter) Delete(ctx context.Context, id string) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		for i, v := range db.Vehicles {
			if v.ID == id {
				db.Vehicles = append(db.Vehicles[:i], db.Vehicles[i+1:]...)
				return nil
			}
		}
		return apperrors.NewNotFoundError("vehicle not found")
	})
}

func clearDefaults(db *jsonfile.Database, userID, exceptID string) {
	for _, v := range db.Vehicles {
		if v.UserID == userID && v.ID != exceptID {
			v.IsDefault = false
		}
	}
}
