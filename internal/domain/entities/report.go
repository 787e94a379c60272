package entities

import "time"

// Report statuses.
const (
	ReportStatusOpen      = "OPEN"
	ReportStatusResolved  = "RESOLVED"
	ReportStatusDismissed = "DISMISSED"
)

// Report is a user-filed station issue. Creation decrements the station's
// health score by a fixed penalty.
type Report struct {
	ID          string    `json:"id"`
	StationID   string    `json:"station_id"`
	UserID      string    `json:"user_id"`
	IssueType   string    `json:"issue_type"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
