package jsonfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

func TestClient_StartsEmptyWhenFileMissing(t *testing.T) {
	client, err := jsonfile.NewClient(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	err = client.View(func(db *jsonfile.Database) error {
		assert.Empty(t, db.Users)
		assert.Empty(t, db.Stations)
		return nil
	})
	require.NoError(t, err)
}

func TestClient_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	client, err := jsonfile.NewClient(path)
	require.NoError(t, err)
	err = client.Update(func(db *jsonfile.Database) error {
		db.Users = append(db.Users, &entities.User{ID: "u1", Name: "Asha", Email: "asha@example.com"})
		return nil
	})
	require.NoError(t, err)

	reopened, err := jsonfile.NewClient(path)
	require.NoError(t, err)
	err = reopened.View(func(db *jsonfile.Database) error {
		require.Len(t, db.Users, 1)
		assert.Equal(t, "Asha", db.Users[0].Name)
		return nil
	})
	require.NoError(t, err)
}

func TestClient_UpdateErrorWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	client, err := jsonfile.NewClient(path)
	require.NoError(t, err)

	err = client.Update(func(db *jsonfile.Database) error {
		return apperrors.NewValidationError("nope")
	})
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestClient_PersistFailureRollsBackMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	client, err := jsonfile.NewClient(path)
	require.NoError(t, err)
	err = client.Update(func(db *jsonfile.Database) error {
		db.Trips = append(db.Trips, &entities.Trip{ID: "t1"})
		return nil
	})
	require.NoError(t, err)

	// A directory squatting on the temp-file path makes the next persist fail
	// after the mutation ran.
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	err = client.Update(func(db *jsonfile.Database) error {
		db.Trips = append(db.Trips, &entities.Trip{ID: "t2"})
		return nil
	})
	require.Error(t, err)

	err = client.View(func(db *jsonfile.Database) error {
		require.Len(t, db.Trips, 1)
		assert.Equal(t, "t1", db.Trips[0].ID)
		return nil
	})
	require.NoError(t, err)

	reopened, err := jsonfile.NewClient(path)
	require.NoError(t, err)
	err = reopened.View(func(db *jsonfile.Database) error {
		require.Len(t, db.Trips, 1)
		return nil
	})
	require.NoError(t, err)

	// Once the obstruction is gone writes resume.
	require.NoError(t, os.Remove(path+".tmp"))
	err = client.Update(func(db *jsonfile.Database) error {
		db.Trips = append(db.Trips, &entities.Trip{ID: "t2"})
		return nil
	})
	require.NoError(t, err)
}

func TestClient_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "store.json")

	client, err := jsonfile.NewClient(path)
	require.NoError(t, err)
	err = client.Update(func(db *jsonfile.Database) error { return nil })
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
