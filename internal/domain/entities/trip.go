package entities

import "time"

// Prediction method tags recorded on a trip.
const (
	PredictionMethodModel    = "trained_model"
	PredictionMethodFallback = "fallback"
)

// TripConditions is the weather/driving snapshot a feasibility check ran under.
type TripConditions struct {
	TemperatureC float64 `json:"temperature_c"`
	AvgSpeedKMH  float64 `json:"avg_speed_kmh"`
	ACUsage      bool    `json:"ac_usage"`
	Terrain      string  `json:"terrain"`
	DrivingMode  string  `json:"driving_mode"`
}

// ChargingPlan is the target state of charge, duration and cost for a
// recommended charging stop.
type ChargingPlan struct {
	TargetSoC           float64 `json:"target_soc"`
	ChargingTimeMinutes float64 `json:"charging_time_minutes"`
	EstimatedCostINR    float64 `json:"estimated_cost_inr"`
	EnergyKWh           float64 `json:"energy_kwh"`
}

// Trip is an immutable record of one feasibility check. It is appended when
// the check completes and never mutated afterwards.
type Trip struct {
	ID                   string         `json:"id"`
	UserID               string         `json:"user_id"`
	VehicleID            string         `json:"vehicle_id"`
	Origin               Coordinates    `json:"origin"`
	Destination          Coordinates    `json:"destination"`
	DistanceKM           float64        `json:"distance_km"`
	CurrentSoC           float64        `json:"current_soc"`
	PredictedRangeKM     float64        `json:"predicted_range_km"`
	IsReachable          bool           `json:"is_reachable"`
	EstimatedArrivalSoC  *float64       `json:"estimated_arrival_soc,omitempty"`
	RecommendedStationID string         `json:"recommended_station_id,omitempty"`
	ChargingPlan         *ChargingPlan  `json:"charging_plan,omitempty"`
	PredictionMethod     string         `json:"prediction_method"`
	Conditions           TripConditions `json:"conditions"`
	CreatedAt            time.Time      `json:"created_at"`
}
