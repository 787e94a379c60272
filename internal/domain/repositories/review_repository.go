package repositories

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// ReviewRepository defines the interface for station reviews.
//
// Create appends the review and recomputes the owning station's cached
// AvgRating and TotalReviews in the same store write, keeping the aggregates
// exact with respect to the review log.
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	ListByStation(ctx context.Context, stationID string) ([]*entities.Review, error)
	CountAll(ctx context.Context) (int, error)
}
