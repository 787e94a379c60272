package repositories

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// ReportRepository defines the interface for station issue reports.
//
// Create appends the report with status OPEN and applies the configured
// health penalty to the station in the same store write. Resolve moves an
// OPEN report to a closed status and credits the penalty back to the station
// in one write; a report that is already closed is a conflict.
type ReportRepository interface {
	Create(ctx context.Context, report *entities.Report, healthPenalty float64) error
	GetByID(ctx context.Context, id string) (*entities.Report, error)
	List(ctx context.Context, status string) ([]*entities.Report, error)
	Resolve(ctx context.Context, id, status string, healthCredit float64) error
}
