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

// ReviewInput is the payload for posting a review.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewService handles station reviews. Reviews are append-only; the store
// keeps the station's cached aggregates in step with every write.
type ReviewService struct {
	reviews repositories.ReviewRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Create posts a review for a station. A user may review the same station
// more than once; each review counts toward the average.
func (s *ReviewService) Create(ctx context.Context, userID, stationID string, input ReviewInput) (*entities.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5")
	}

	review := &entities.Review{
		ID:        uuid.New().String(),
		StationID: stationID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByStation returns all reviews for a station.
func (s *ReviewService) ListByStation(ctx context.Context, stationID string) ([]*entities.Review, error) {
	return s.reviews.ListByStation(ctx, stationID)
}
