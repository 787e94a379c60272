package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	"github.com/chargepilot/chargepilot/backend/pkg/config"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// Issue types accepted on a report.
var reportIssueTypes = map[string]bool{
	"broken_charger":  true,
	"wrong_location":  true,
	"wrong_pricing":   true,
	"inaccessible":    true,
	"long_queue":      true,
	"other":           true,
	"offline":         true,
	"damaged_cable":   true,
	"payment_failure": true,
}

// ReportInput is the payload for filing a station issue.
type ReportInput struct {
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
}

// ReportService handles station issue reports. Filing one immediately
// penalizes the station's health score; resolving or dismissing it restores
// the penalty.
type ReportService struct {
	reports repositories.ReportRepository
	penalty float64
}

// NewReportService creates a new report service.
func NewReportService(reports repositories.ReportRepository, cfg config.PlannerConfig) *ReportService {
	return &ReportService{
		reports: reports,
		penalty: cfg.ReportHealthPenalty,
	}
}

// Create files a report against a station and applies the health penalty in
// the same store write.
func (s *ReportService) Create(ctx context.Context, userID, stationID string, input ReportInput) (*entities.Report, error) {
	issueType := strings.ToLower(strings.TrimSpace(input.IssueType))
	if !reportIssueTypes[issueType] {
		return nil, apperrors.NewValidationError("unknown issue_type")
	}

	now := time.Now().UTC()
	report := &entities.Report{
		ID:          uuid.New().String(),
		StationID:   stationID,
		UserID:      userID,
		IssueType:   issueType,
		Description: strings.TrimSpace(input.Description),
		Status:      entities.ReportStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.reports.Create(ctx, report, s.penalty); err != nil {
		return nil, err
	}
	return report, nil
}

// List returns reports, optionally filtered by status. Admin only.
func (s *ReportService) List(ctx context.Context, role, status string) ([]*entities.Report, error) {
	if !entities.RoleAllowed(role, entities.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins can list reports")
	}
	return s.reports.List(ctx, strings.ToUpper(strings.TrimSpace(status)))
}

// SetStatus moves an OPEN report to RESOLVED or DISMISSED and credits the
// health penalty back to the station. Admin only; closed reports stay closed.
func (s *ReportService) SetStatus(ctx context.Context, role, reportID, status string) (*entities.Report, error) {
	if !entities.RoleAllowed(role, entities.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins can update reports")
	}
	status = strings.ToUpper(strings.TrimSpace(status))
	if status != entities.ReportStatusResolved && status != entities.ReportStatusDismissed {
		return nil, apperrors.NewValidationError("status must be RESOLVED or DISMISSED")
	}

	if err := s.reports.Resolve(ctx, reportID, status, s.penalty); err != nil {
		return nil, err
	}
	return s.reports.GetByID(ctx, reportID)
}
