package store

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// ReviewAdapter implements repositories.ReviewRepository on the flat-file
// store. The station's cached aggregates are recomputed in the same write
// that appends the review, so they always equal the exact mean and count of
// the review log.
type ReviewAdapter struct {
	client *jsonfile.Client
}

// NewReviewAdapter creates a new review adapter.
func NewReviewAdapter(client *jsonfile.Client) repositories.ReviewRepository {
	return &ReviewAdapter{client: client}
}

// Create appends the review and recomputes the station's rating aggregates.
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		var station *entities.Station
		for _, s := range db.Stations {
			if s.ID == review.StationID {
				station = s
				break
			}
		}
		if station == nil {
			return apperrors.NewNotFoundError("station not found")
		}

		clone := *review
		db.Reviews = append(db.Reviews, &clone)

		var sum, count float64
		for _, r := range db.Reviews {
			if r.StationID == station.ID {
				sum += float64(r.Rating)
				count++
			}
		}
		station.AvgRating = sum / count
		station.TotalReviews = int(count)
		return nil
	})
}

// ListByStation returns a station's reviews in insertion order.
func (a *ReviewAdapter) ListByStation(ctx context.Context, stationID string) ([]*entities.Review, error) {
	var reviews []*entities.Review
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, r := range db.Reviews {
			if r.StationID == stationID {
				clone := *r
				reviews = append(reviews, &clone)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// CountAll returns the total number of reviews.
func (a *ReviewAdapter) CountAll(ctx context.Context) (int, error) {
	var n int
	err := a.client.View(func(db *jsonfile.Database) error {
		n = len(db.Reviews)
		return nil
	})
	return n, err
}
