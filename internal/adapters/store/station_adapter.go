package store

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// StationAdapter implements repositories.StationRepository on the flat-file
// store.
type StationAdapter struct {
	client *jsonfile.Client
}

// NewStationAdapter creates a new station adapter.
func NewStationAdapter(client *jsonfile.Client) repositories.StationRepository {
	return &StationAdapter{client: client}
}

// Create appends a station.
func (a *StationAdapter) Create(ctx context.Context, station *entities.Station) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		clone := *station
		db.Stations = append(db.Stations, &clone)
		return nil
	})
}

// GetByID returns the station with the given id.
func (a *StationAdapter) GetByID(ctx context.Context, id string) (*entities.Station, error) {
	var found *entities.Station
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, s := range db.Stations {
			if s.ID == id {
				clone := *s
				found = &clone
				return nil
			}
		}
		return apperrors.NewNotFoundError("station not found")
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List returns stations matching the filter in insertion order. The order is
// stable, which the candidate selector relies on for tie-breaking.
func (a *StationAdapter) List(ctx context.Context, filter repositories.StationFilter) ([]*entities.Station, error) {
	var stations []*entities.Station
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, s := range db.Stations {
			if filter.ActiveOnly && !s.Active {
				continue
			}
			if filter.OwnerID != "" && s.OwnerID != filter.OwnerID {
				continue
			}
			clone := *s
			stations = append(stations, &clone)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stations, nil
}

// Update replaces the stored station record. The health score and review
// aggregates are carried over from the stored record, not the caller's
// snapshot, so a stale snapshot cannot clobber concurrent review and report
// writes.
func (a *StationAdapter) Update(ctx context.Context, station *entities.Station) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		for i, s := range db.Stations {
			if s.ID == station.ID {
				station.HealthScore = s.HealthScore
				station.AvgRating = s.AvgRating
				station.TotalReviews = s.TotalReviews
				clone := *station
				db.Stations[i] = &clone
				return nil
			}
		}
		return apperrors.NewNotFoundError("station not found")
	})
}
