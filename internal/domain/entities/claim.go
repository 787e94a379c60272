package entities

import "time"

// Claim statuses.
const (
	ClaimStatusPending  = "PENDING"
	ClaimStatusApproved = "APPROVED"
	ClaimStatusRejected = "REJECTED"
)

// Claim is a request by a prospective owner to take over a station.
// Approval sets the station's owner and verification flag and promotes the
// claimant to the owner role.
type Claim struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	StationID    string    `json:"station_id"`
	ProofURL     string    `json:"proof_url"`
	Status       string    `json:"status"`
	AdminComment string    `json:"admin_comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
