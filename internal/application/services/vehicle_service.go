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

// VehicleInput is the payload for creating or updating a vehicle.
type VehicleInput struct {
	Name               string  `json:"name"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	EfficiencyKmPerKWh float64 `json:"efficiency_km_per_kwh"`
	IsDefault          bool    `json:"is_default"`
}

// VehicleService manages a user's garage. All operations are scoped to the
// calling user; accessing another user's vehicle is a not-found, never a
// forbidden, so ids cannot be probed.
type VehicleService struct {
	vehicles repositories.VehicleRepository
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(vehicles repositories.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

func validateVehicleInput(input VehicleInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperrors.NewValidationError("vehicle name is required")
	}
	if input.BatteryCapacityKWh <= 0 {
		return apperrors.NewValidationError("battery_capacity_kwh must be positive")
	}
	if input.EfficiencyKmPerKWh <= 0 {
		return apperrors.NewValidationError("efficiency_km_per_kwh must be positive")
	}
	return nil
}

// Create adds a vehicle to the user's garage.
func (s *VehicleService) Create(ctx context.Context, userID string, input VehicleInput) (*entities.Vehicle, error) {
	if err := validateVehicleInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	vehicle := &entities.Vehicle{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Name:               strings.TrimSpace(input.Name),
		BatteryCapacityKWh: input.BatteryCapacityKWh,
		EfficiencyKmPerKWh: input.EfficiencyKmPerKWh,
		IsDefault:          input.IsDefault,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// List returns the user's vehicles.
func (s *VehicleService) List(ctx context.Context, userID string) ([]*entities.Vehicle, error) {
	return s.vehicles.ListByUser(ctx, userID)
}

// Update replaces the mutable fields of the user's vehicle.
func (s *VehicleService) Update(ctx context.Context, userID, vehicleID string, input VehicleInput) (*entities.Vehicle, error) {
	if err := validateVehicleInput(input); err != nil {
		return nil, err
	}

	vehicle, err := s.ownedVehicle(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	vehicle.Name = strings.TrimSpace(input.Name)
	vehicle.BatteryCapacityKWh = input.BatteryCapacityKWh
	vehicle.EfficiencyKmPerKWh = input.EfficiencyKmPerKWh
	vehicle.IsDefault = input.IsDefault
	vehicle.UpdatedAt = time.Now().UTC()

	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete removes the user's vehicle. Trips referencing it keep their
// vehicle id as a dangling reference; the trip log is immutable.
func (s *VehicleService) Delete(ctx context.Context, userID, vehicleID string) error {
	if _, err := s.ownedVehicle(ctx, userID, vehicleID); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, vehicleID)
}

func (s *VehicleService) ownedVehicle(ctx context.Context, userID, vehicleID string) (*entities.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, apperrors.NewNotFoundError("vehicle not found")
	}
	return vehicle, nil
}
