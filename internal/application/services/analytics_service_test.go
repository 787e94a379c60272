package services_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargepilot/chargepilot/backend/internal/adapters/store"
	"github.com/chargepilot/chargepilot/backend/internal/application/services"
	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

func newAnalyticsFixture(t *testing.T) (*services.AnalyticsService, *jsonfile.Client) {
	t.Helper()
	client, err := jsonfile.NewClient(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	svc := services.NewAnalyticsService(
		store.NewUserAdapter(client),
		store.NewStationAdapter(client),
		store.NewTripAdapter(client),
		store.NewReviewAdapter(client),
		store.NewReportAdapter(client),
		store.NewClaimAdapter(client),
	)
	return svc, client
}

func TestAnalyticsOverview_RequiresAdmin(t *testing.T) {
	svc, _ := newAnalyticsFixture(t)

	_, err := svc.Overview(context.Background(), entities.RoleUser)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestAnalyticsOverview_Aggregates(t *testing.T) {
	svc, client := newAnalyticsFixture(t)
	ctx := context.Background()

	users := store.NewUserAdapter(client)
	stations := store.NewStationAdapter(client)
	trips := store.NewTripAdapter(client)

	require.NoError(t, users.Create(ctx, &entities.User{ID: "u1", Email: "a@example.com", Role: entities.RoleUser}))
	require.NoError(t, users.Create(ctx, &entities.User{ID: "u2", Email: "b@example.com", Role: entities.RoleUser}))

	station := &entities.Station{ID: uuid.New().String(), Name: "Hub", HealthScore: 80, Active: true}
	require.NoError(t, stations.Create(ctx, station))

	now := time.Now().UTC()
	require.NoError(t, trips.Create(ctx, &entities.Trip{
		ID: "t1", UserID: "u1", DistanceKM: 100, IsReachable: true,
		PredictionMethod: entities.PredictionMethodModel, CreatedAt: now,
	}))
	require.NoError(t, trips.Create(ctx, &entities.Trip{
		ID: "t2", UserID: "u1", DistanceKM: 300, IsReachable: false,
		RecommendedStationID: station.ID,
		PredictionMethod:     entities.PredictionMethodFallback, CreatedAt: now,
	}))

	overview, err := svc.Overview(ctx, entities.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.TotalUsers)
	assert.Equal(t, 1, overview.TotalStations)
	assert.Equal(t, 2, overview.TotalTrips)
	assert.Equal(t, 1, overview.ReachableTrips)
	assert.Equal(t, 1, overview.UnreachableTrips)
	assert.Equal(t, 1, overview.TripsByMethod[entities.PredictionMethodModel])
	assert.Equal(t, 1, overview.TripsByMethod[entities.PredictionMethodFallback])
	assert.InDelta(t, 200.0, overview.AvgTripDistanceKM, 0.001)
	assert.InDelta(t, 80.0, overview.AvgStationHealth, 0.001)

	require.Len(t, overview.TopStations, 1)
	assert.Equal(t, station.ID, overview.TopStations[0].Station.ID)
	assert.Equal(t, 1, overview.TopStations[0].Recommendations)
}

func TestAnalyticsOverview_EmptyStore(t *testing.T) {
	svc, _ := newAnalyticsFixture(t)

	overview, err := svc.Overview(context.Background(), entities.RoleAdmin)
	require.NoError(t, err)

	assert.Zero(t, overview.TotalTrips)
	assert.Zero(t, overview.AvgTripDistanceKM)
	assert.Zero(t, overview.AvgStationHealth)
	assert.Empty(t, overview.TopStations)
}
