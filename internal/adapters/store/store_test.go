package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/chargepilot/chargepilot/backend/internal/adapters/store"
	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
)

// newStoreClient opens a fresh store in a temp dir.
func newStoreClient(t *testing.T) *jsonfile.Client {
	t.Helper()
	client, err := jsonfile.NewClient(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	return client
}

func seedStation(t *testing.T, client *jsonfile.Client) *entities.Station {
	t.Helper()
	station := &entities.Station{
		ID:          uuid.New().String(),
		Name:        "Test Station",
		Location:    entities.Coordinates{Latitude: 18.52, Longitude: 73.85},
		PowerKW:     50,
		HealthScore: 100,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	require.NoError(t, store.NewStationAdapter(client).Create(context.Background(), station))
	return station
}

func seedUser(t *testing.T, client *jsonfile.Client, role string) *entities.User {
	t.Helper()
	user := &entities.User{
		ID:        uuid.New().String(),
		Name:      "Test User",
		Email:     uuid.New().String() + "@example.com",
		Role:      role,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.NewUserAdapter(client).Create(context.Background(), user))
	return user
}
