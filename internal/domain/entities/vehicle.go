package entities

import "time"

// Vehicle is an EV owned by a user. EfficiencyKmPerKWh is the rated
// consumption used by the fallback range formula. At most one vehicle per
// user carries IsDefault=true; the store clears other defaults on set.
type Vehicle struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Name               string    `json:"name"`
	BatteryCapacityKWh float64   `json:"battery_capacity_kwh"`
	EfficiencyKmPerKWh float64   `json:"efficiency_km_per_kwh"`
	IsDefault          bool      `json:"is_default"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
