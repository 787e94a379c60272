package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargepilot/chargepilot/backend/internal/adapters/store"
	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

func TestReviewCreate_UpdatesStationAggregates(t *testing.T) {
	client := newStoreClient(t)
	station := seedStation(t, client)
	reviews := store.NewReviewAdapter(client)
	stations := store.NewStationAdapter(client)
	ctx := context.Background()

	for _, rating := range []int{5, 3, 4} {
		require.NoError(t, reviews.Create(ctx, &entities.Review{
			ID:        uuid.New().String(),
			StationID: station.ID,
			UserID:    uuid.New().String(),
			Rating:    rating,
		}))
	}

	got, err := stations.GetByID(ctx, station.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalReviews)
	assert.InDelta(t, 4.0, got.AvgRating, 0.001)

	listed, err := reviews.ListByStation(ctx, station.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
	// Insertion order preserved.
	assert.Equal(t, 5, listed[0].Rating)

	count, err := reviews.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestReviewCreate_UnknownStation(t *testing.T) {
	client := newStoreClient(t)
	reviews := store.NewReviewAdapter(client)

	err := reviews.Create(context.Background(), &entities.Review{
		ID:        uuid.New().String(),
		StationID: "missing",
		Rating:    4,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)

	// A failed write must not leave a partial review behind.
	count, err := reviews.CountAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
