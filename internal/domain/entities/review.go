package entities

import "time"

// Review is a user rating of a station. Append-only; creating one triggers
// recomputation of the station's cached aggregates.
type Review struct {
	ID        string    `json:"id"`
	StationID string    `json:"station_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
