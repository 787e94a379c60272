package store

import (
	"context"
	"sort"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
)

// TripAdapter implements repositories.TripRepository on the flat-file store.
// Trips are append-only; there is deliberately no update or delete.
type TripAdapter struct {
	client *jsonfile.Client
}

// NewTripAdapter creates a new trip adapter.
func NewTripAdapter(client *jsonfile.Client) repositories.TripRepository {
	return &TripAdapter{client: client}
}

// Create appends a trip record.
func (a *TripAdapter) Create(ctx context.Context, trip *entities.Trip) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		clone := *trip
		db.Trips = append(db.Trips, &clone)
		return nil
	})
}

// ListByUser returns the user's trips, newest first.
func (a *TripAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Trip, error) {
	var trips []*entities.Trip
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, t := range db.Trips {
			if t.UserID == userID {
				clone := *t
				trips = append(trips, &clone)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
	return trips, nil
}

// ListAll returns every trip record, for analytics aggregation.
func (a *TripAdapter) ListAll(ctx context.Context) ([]*entities.Trip, error) {
	var trips []*entities.Trip
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, t := range db.Trips {
			clone := *t
			trips = append(trips, &clone)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trips, nil
}
