package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargepilot/chargepilot/backend/internal/adapters/store"
	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

func newVehicle(userID string, isDefault bool) *entities.Vehicle {
	return &entities.Vehicle{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Name:               "EV",
		BatteryCapacityKWh: 40,
		EfficiencyKmPerKWh: 6,
		IsDefault:          isDefault,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
}

func TestVehicleCreate_SingleDefaultInvariant(t *testing.T) {
	client := newStoreClient(t)
	vehicles := store.NewVehicleAdapter(client)
	ctx := context.Background()
	userID := uuid.New().String()

	first := newVehicle(userID, true)
	require.NoError(t, vehicles.Create(ctx, first))

	second := newVehicle(userID, true)
	require.NoError(t, vehicles.Create(ctx, second))

	listed, err := vehicles.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	defaults := 0
	for _, v := range listed {
		if v.IsDefault {
			defaults++
			assert.Equal(t, second.ID, v.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestVehicleUpdate_SetDefaultClearsOthers(t *testing.T) {
	client := newStoreClient(t)
	vehicles := store.NewVehicleAdapter(client)
	ctx := context.Background()
	userID := uuid.New().String()

	first := newVehicle(userID, true)
	second := newVehicle(userID, false)
	require.NoError(t, vehicles.Create(ctx, first))
	require.NoError(t, vehicles.Create(ctx, second))

	second.IsDefault = true
	require.NoError(t, vehicles.Update(ctx, second))

	got, err := vehicles.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
}

func TestVehicleDefault_ScopedPerUser(t *testing.T) {
	client := newStoreClient(t)
	vehicles := store.NewVehicleAdapter(client)
	ctx := context.Background()

	mine := newVehicle(uuid.New().String(), true)
	theirs := newVehicle(uuid.New().String(), true)
	require.NoError(t, vehicles.Create(ctx, mine))
	require.NoError(t, vehicles.Create(ctx, theirs))

	got, err := vehicles.GetByID(ctx, mine.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
}

func TestVehicleDelete(t *testing.T) {
	client := newStoreClient(t)
	vehicles := store.NewVehicleAdapter(client)
	ctx := context.Background()
	userID := uuid.New().String()

	v := newVehicle(userID, false)
	require.NoError(t, vehicles.Create(ctx, v))
	require.NoError(t, vehicles.Delete(ctx, v.ID))

	_, err := vehicles.GetByID(ctx, v.ID)
	assert.Error(t, err)

	assert.Error(t, vehicles.Delete(ctx, v.ID))
}
