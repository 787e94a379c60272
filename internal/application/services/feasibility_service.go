package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/observability"
	"github.com/chargepilot/chargepilot/backend/pkg/config"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// FeasibilityRequest is one trip-feasibility question.
type FeasibilityRequest struct {
	Origin      entities.Coordinates
	Destination entities.Coordinates
	VehicleID   string
	CurrentSoC  float64
}

// FeasibilityResult is the decision plus every quantity it was based on.
type FeasibilityResult struct {
	TripID              string                  `json:"trip_id"`
	DistanceKM          float64                 `json:"distance_km"`
	PredictedRangeKM    float64                 `json:"predicted_range_km"`
	IsReachable         bool                    `json:"is_reachable"`
	EstimatedArrivalSoC *float64                `json:"estimated_arrival_soc,omitempty"`
	RecommendedStation  *entities.Station       `json:"recommended_station,omitempty"`
	ChargingPlan        *entities.ChargingPlan  `json:"charging_plan,omitempty"`
	PredictionMethod    string                  `json:"prediction_method"`
	Conditions          entities.TripConditions `json:"conditions"`
}

// FeasibilityService runs the trip-feasibility pipeline: route distance,
// range prediction, reachability, candidate selection and charge planning.
//
// Every external dependency is independently optional. Routing degrades to a
// great-circle estimate, weather to a configured default temperature, the
// model to closed-form arithmetic; only the store is load-bearing, and a
// store failure aborts the request with no trip record written.
type FeasibilityService struct {
	routing  providers.RoutingProvider
	weather  providers.WeatherProvider
	model    providers.RangeModelProvider
	stations repositories.StationRepository
	vehicles repositories.VehicleRepository
	trips    repositories.TripRepository
	cfg      config.PlannerConfig
	metrics  *observability.Metrics
}

// NewFeasibilityService creates the pipeline. model may be nil when no model
// service is configured; metrics may be nil in tests.
func NewFeasibilityService(
	routing providers.RoutingProvider,
	weather providers.WeatherProvider,
	model providers.RangeModelProvider,
	stations repositories.StationRepository,
	vehicles repositories.VehicleRepository,
	trips repositories.TripRepository,
	cfg config.PlannerConfig,
	metrics *observability.Metrics,
) *FeasibilityService {
	return &FeasibilityService{
		routing:  routing,
		weather:  weather,
		model:    model,
		stations: stations,
		vehicles: vehicles,
		trips:    trips,
		cfg:      cfg,
		metrics:  metrics,
	}
}

// CheckFeasibility decides whether the vehicle can reach the destination
// and, when it cannot, recommends a charging stop with a plan. Both branches
// append an immutable trip record before returning.
func (s *FeasibilityService) CheckFeasibility(ctx context.Context, userID string, req FeasibilityRequest) (*FeasibilityResult, error) {
	if req.Origin.IsZero() || req.Destination.IsZero() {
		return nil, apperrors.NewValidationError("origin and destination coordinates are required")
	}
	if req.CurrentSoC <= 0 || req.CurrentSoC > 100 {
		return nil, apperrors.NewValidationError("current_soc must be in (0, 100]")
	}
	if req.VehicleID == "" {
		return nil, apperrors.NewValidationError("vehicle_id is required")
	}

	vehicle, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, apperrors.NewForbiddenError("vehicle belongs to another user")
	}

	// Routing and weather are independent; overlap them. The model call
	// needs the temperature, so it waits for both.
	var (
		wg         sync.WaitGroup
		distanceKM float64
		tempC      float64
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		distanceKM = s.estimateDistance(ctx, req.Origin, req.Destination)
	}()
	go func() {
		defer wg.Done()
		tempC = s.currentTemperature(ctx, req.Origin)
	}()
	wg.Wait()

	conditions := entities.TripConditions{
		TemperatureC: tempC,
		AvgSpeedKMH:  s.cfg.AvgSpeedKMH,
		ACUsage:      tempC > s.cfg.ACTempThresholdC,
		Terrain:      s.cfg.Terrain,
		DrivingMode:  s.cfg.DrivingMode,
	}

	rangeKM, method := s.predictRange(ctx, req.CurrentSoC, vehicle, conditions)

	result := &FeasibilityResult{
		DistanceKM:       distanceKM,
		PredictedRangeKM: rangeKM,
		PredictionMethod: method,
		Conditions:       conditions,
	}

	if rangeKM >= distanceKM {
		result.IsReachable = true
		arrival := req.CurrentSoC - (distanceKM/vehicle.EfficiencyKmPerKWh)/vehicle.BatteryCapacityKWh*100
		if arrival < 0 {
			arrival = 0
		}
		result.EstimatedArrivalSoC = &arrival
	} else {
		s.planChargingStop(ctx, req, vehicle, conditions, result)
	}

	trip := &entities.Trip{
		ID:               uuid.New().String(),
		UserID:           userID,
		VehicleID:        vehicle.ID,
		Origin:           req.Origin,
		Destination:      req.Destination,
		DistanceKM:       distanceKM,
		CurrentSoC:       req.CurrentSoC,
		PredictedRangeKM: rangeKM,
		IsReachable:      result.IsReachable,
		PredictionMethod: method,
		Conditions:       conditions,
		CreatedAt:        time.Now().UTC(),
	}
	trip.EstimatedArrivalSoC = result.EstimatedArrivalSoC
	if result.RecommendedStation != nil {
		trip.RecommendedStationID = result.RecommendedStation.ID
	}
	trip.ChargingPlan = result.ChargingPlan

	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, apperrors.NewInternalError("failed to record trip", err)
	}
	result.TripID = trip.ID

	s.metrics.RecordFeasibility(result.IsReachable, method)

	return result, nil
}

// estimateDistance asks the routing service once and falls back to the
// great-circle distance on any error.
func (s *FeasibilityService) estimateDistance(ctx context.Context, origin, dest entities.Coordinates) float64 {
	if s.routing != nil {
		km, err := s.routing.RouteDistance(ctx, origin, dest)
		if err == nil && km > 0 {
			return km
		}
		if err != nil {
			log.Warn().Err(err).Msg("routing service unavailable, using great-circle distance")
		}
	}
	return haversineKM(origin.Latitude, origin.Longitude, dest.Latitude, dest.Longitude)
}

// currentTemperature asks the weather service once and falls back to the
// configured default.
func (s *FeasibilityService) currentTemperature(ctx context.Context, at entities.Coordinates) float64 {
	if s.weather != nil {
		temp, err := s.weather.CurrentTemperature(ctx, at.Latitude, at.Longitude)
		if err == nil {
			return temp
		}
		log.Warn().Err(err).Msg("weather service unavailable, using default temperature")
	}
	return s.cfg.DefaultTemperatureC
}

// predictRange prefers the trained model and trusts its output verbatim;
// otherwise it applies the derated nameplate formula.
func (s *FeasibilityService) predictRange(ctx context.Context, soc float64, vehicle *entities.Vehicle, cond entities.TripConditions) (float64, string) {
	if s.model != nil {
		prediction, err := s.model.PredictRange(ctx, providers.RangePredictionRequest{
			BatteryPercentage:  soc,
			BatteryCapacityKWh: vehicle.BatteryCapacityKWh,
			AvgSpeedKMH:        cond.AvgSpeedKMH,
			TemperatureCelsius: cond.TemperatureC,
			ACUsage:            cond.ACUsage,
			Terrain:            cond.Terrain,
			DrivingMode:        cond.DrivingMode,
		})
		if err == nil && prediction.PredictedRangeKM > 0 {
			return prediction.PredictedRangeKM, entities.PredictionMethodModel
		}
		if err != nil {
			log.Warn().Err(err).Msg("model service unavailable, using fallback range formula")
		}
	}
	return fallbackRangeKM(s.cfg, soc, vehicle), entities.PredictionMethodFallback
}

// planChargingStop fills the unreachable branch of the result: best
// candidate station and a charging plan for it. No qualifying station leaves
// both fields nil, which is a valid terminal outcome.
func (s *FeasibilityService) planChargingStop(ctx context.Context, req FeasibilityRequest, vehicle *entities.Vehicle, cond entities.TripConditions, result *FeasibilityResult) {
	stations, err := s.stations.List(ctx, repositories.StationFilter{ActiveOnly: true})
	if err != nil {
		log.Error().Err(err).Msg("failed to list stations for candidate selection")
		return
	}

	candidates := rankCandidates(stations, req.Origin, req.Destination, result.DistanceKM, s.cfg.DetourSlack)
	if len(candidates) == 0 {
		return
	}

	best := candidates[0]
	result.RecommendedStation = best.Station

	arrivalSoC := arrivalSoCAtStop(req.CurrentSoC, s.cfg.ArrivalSoCDropPct)
	remainingKM := best.LegToDest

	if s.model != nil {
		rec, err := s.model.RecommendCharge(ctx, providers.ChargeRecommendationRequest{
			DistanceToDestinationKM: remainingKM,
			BatteryCapacityKWh:      vehicle.BatteryCapacityKWh,
			CurrentBatteryPct:       arrivalSoC,
			AvgSpeedKMH:             cond.AvgSpeedKMH,
			TemperatureCelsius:      cond.TemperatureC,
			ACUsage:                 cond.ACUsage,
			Terrain:                 cond.Terrain,
			DrivingMode:             cond.DrivingMode,
		})
		if err == nil {
			result.ChargingPlan = &entities.ChargingPlan{
				TargetSoC:           rec.RequiredBatteryPct,
				ChargingTimeMinutes: rec.ChargingTimeMinutes,
				EstimatedCostINR:    rec.EstimatedCostINR,
				EnergyKWh:           rec.EnergyNeededKWh,
			}
			return
		}
		log.Warn().Err(err).Msg("charge recommendation unavailable, using fallback plan")
	}

	result.ChargingPlan = fallbackChargePlan(s.cfg, remainingKM, arrivalSoC, vehicle, best.Station.PowerKW)
}
