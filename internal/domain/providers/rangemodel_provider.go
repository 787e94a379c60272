package providers

import "context"

// RangePredictionRequest carries the battery and condition features the
// trained model was fitted on. Field semantics follow the model service API.
type RangePredictionRequest struct {
	BatteryPercentage  float64 `json:"battery_percentage"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	AvgSpeedKMH        float64 `json:"avg_speed_kmh"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	ACUsage            bool    `json:"ac_usage"`
	Terrain            string  `json:"terrain"`
	DrivingMode        string  `json:"driving_mode"`
}

// RangePrediction is the model's range estimate, trusted verbatim on success.
type RangePrediction struct {
	PredictedRangeKM float64
	MaxRangeKM       float64
	ModelAccuracy    float64
}

// ChargeRecommendationRequest asks the model how much to charge to cover the
// remaining distance.
type ChargeRecommendationRequest struct {
	DistanceToDestinationKM float64 `json:"distance_to_destination_km"`
	BatteryCapacityKWh      float64 `json:"battery_capacity_kwh"`
	CurrentBatteryPct       float64 `json:"current_battery_pct"`
	AvgSpeedKMH             float64 `json:"avg_speed_kmh"`
	TemperatureCelsius      float64 `json:"temperature_celsius"`
	ACUsage                 bool    `json:"ac_usage"`
	Terrain                 string  `json:"terrain"`
	DrivingMode             string  `json:"driving_mode"`
}

// ChargeRecommendation is the model's charging plan.
type ChargeRecommendation struct {
	RequiredBatteryPct  float64
	ChargingTimeMinutes float64
	EnergyNeededKWh     float64
	EstimatedCostINR    float64
	ModelAccuracy       float64
}

// ModelInfo describes the deployed model, for the info passthrough endpoint.
type ModelInfo struct {
	ModelType       string  `json:"model_type"`
	BestModel       string  `json:"best_model"`
	AccuracyPercent float64 `json:"accuracy_percent"`
	R2Score         float64 `json:"r2_score"`
	NFeatures       int     `json:"n_features"`
	TrainedAt       string  `json:"trained_at"`
}

// RangeModelProvider consults the external model-serving process. Any error,
// including a non-success response, makes the caller switch to the
// closed-form fallback; errors never surface past the planning service.
type RangeModelProvider interface {
	PredictRange(ctx context.Context, req RangePredictionRequest) (*RangePrediction, error)
	RecommendCharge(ctx context.Context, req ChargeRecommendationRequest) (*ChargeRecommendation, error)
	ModelInfo(ctx context.Context) (*ModelInfo, error)
}
