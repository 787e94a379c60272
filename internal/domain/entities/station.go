package entities

import "time"

// Station is a public EV charging station.
//
// HealthScore is a mutable 0-100 quality indicator decremented by issue
// reports. AvgRating and TotalReviews are cached aggregates recomputed on
// every review write. Stations are never hard-deleted; Active=false
// soft-disables them.
type Station struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Location     Coordinates `json:"location"`
	PowerKW      float64     `json:"power_kw"`
	Connectors   []string    `json:"connectors"`
	Pricing      string      `json:"pricing"`
	Verified     bool        `json:"verified"`
	OwnerID      string      `json:"owner_id,omitempty"`
	HealthScore  float64     `json:"health_score"`
	AvgRating    float64     `json:"avg_rating"`
	TotalReviews int         `json:"total_reviews"`
	Active       bool        `json:"active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ClampHealth keeps the health score inside [0, 100].
func (s *Station) ClampHealth() {
	if s.HealthScore < 0 {
		s.HealthScore = 0
	}
	if s.HealthScore > 100 {
		s.HealthScore = 100
	}
}
