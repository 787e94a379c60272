package store

import (
	"context"
	"time"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// ReportAdapter implements repositories.ReportRepository on the flat-file
// store.
type ReportAdapter struct {
	client *jsonfile.Client
}

// NewReportAdapter creates a new report adapter.
func NewReportAdapter(client *jsonfile.Client) repositories.ReportRepository {
	return &ReportAdapter{client: client}
}

// Create appends the report and applies the health penalty to the station in
// the same write.
func (a *ReportAdapter) Create(ctx context.Context, report *entities.Report, healthPenalty float64) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		var station *entities.Station
		for _, s := range db.Stations {
			if s.ID == report.StationID {
				station = s
				break
			}
		}
		if station == nil {
			return apperrors.NewNotFoundError("station not found")
		}

		clone := *report
		db.Reports = append(db.Reports, &clone)

		station.HealthScore -= healthPenalty
		station.ClampHealth()
		return nil
	})
}

// GetByID returns the report with the given id.
func (a *ReportAdapter) GetByID(ctx context.Context, id string) (*entities.Report, error) {
	var found *entities.Report
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, r := range db.Reports {
			if r.ID == id {
				clone := *r
				found = &clone
				return nil
			}
		}
		return apperrors.NewNotFoundError("report not found")
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List returns reports, optionally filtered by status.
func (a *ReportAdapter) List(ctx context.Context, status string) ([]*entities.Report, error) {
	var reports []*entities.Report
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, r := range db.Reports {
			if status != "" && r.Status != status {
				continue
			}
			clone := *r
			reports = append(reports, &clone)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Resolve moves an OPEN report to a closed status and credits the health
// penalty back to the station in the same write. Concurrent closes of one
// report serialize behind the store lock; only the first succeeds.
func (a *ReportAdapter) Resolve(ctx context.Context, id, status string, healthCredit float64) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		var report *entities.Report
		for _, r := range db.Reports {
			if r.ID == id {
				report = r
				break
			}
		}
		if report == nil {
			return apperrors.NewNotFoundError("report not found")
		}
		if report.Status != entities.ReportStatusOpen {
			return apperrors.NewConflictError("report is already closed")
		}

		if station := findStation(db, report.StationID); station != nil {
			station.HealthScore += healthCredit
			station.ClampHealth()
			station.UpdatedAt = time.Now().UTC()
		}

		report.Status = status
		report.UpdatedAt = time.Now().UTC()
		return nil
	})
}
