package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargepilot/chargepilot/backend/internal/adapters/store"
	"github.com/chargepilot/chargepilot/backend/internal/application/services"
	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	"github.com/chargepilot/chargepilot/backend/pkg/config"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// Stub providers

type stubRouting struct {
	km  float64
	err error
}

func (s *stubRouting) RouteDistance(ctx context.Context, from, to entities.Coordinates) (float64, error) {
	return s.km, s.err
}

type stubWeather struct {
	temp float64
	err  error
}

func (s *stubWeather) CurrentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	return s.temp, s.err
}

type stubModel struct {
	rangeKM   float64
	rangeErr  error
	charge    *providers.ChargeRecommendation
	chargeErr error
}

func (s *stubModel) PredictRange(ctx context.Context, req providers.RangePredictionRequest) (*providers.RangePrediction, error) {
	if s.rangeErr != nil {
		return nil, s.rangeErr
	}
	return &providers.RangePrediction{PredictedRangeKM: s.rangeKM}, nil
}

func (s *stubModel) RecommendCharge(ctx context.Context, req providers.ChargeRecommendationRequest) (*providers.ChargeRecommendation, error) {
	if s.chargeErr != nil {
		return nil, s.chargeErr
	}
	return s.charge, nil
}

func (s *stubModel) ModelInfo(ctx context.Context) (*providers.ModelInfo, error) {
	return &providers.ModelInfo{}, nil
}

func plannerDefaults() config.PlannerConfig {
	return config.PlannerConfig{
		RangeDerate:         0.85,
		DetourSlack:         1.3,
		EnergyMargin:        1.2,
		UnitPriceINRPerKWh:  15,
		DefaultChargerKW:    50,
		ArrivalSoCDropPct:   30,
		DefaultTemperatureC: 25,
		ACTempThresholdC:    30,
		ReportHealthPenalty: 10,
		AvgSpeedKMH:         60,
		Terrain:             "flat",
		DrivingMode:         "normal",
	}
}

type feasibilityFixture struct {
	service  *services.FeasibilityService
	client   *jsonfile.Client
	userID   string
	vehicle  *entities.Vehicle
	stations []*entities.Station
}

// newFeasibilityFixture wires the pipeline over a temp-dir store with one
// vehicle (50 kWh, 6.5 km/kWh) owned by the fixture user.
func newFeasibilityFixture(t *testing.T, routing providers.RoutingProvider, weather providers.WeatherProvider, model providers.RangeModelProvider) *feasibilityFixture {
	t.Helper()

	client, err := jsonfile.NewClient(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	vehicles := store.NewVehicleAdapter(client)
	stations := store.NewStationAdapter(client)
	trips := store.NewTripAdapter(client)

	userID := uuid.New().String()
	vehicle := &entities.Vehicle{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Name:               "Nexon EV",
		BatteryCapacityKWh: 50,
		EfficiencyKmPerKWh: 6.5,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
	require.NoError(t, vehicles.Create(context.Background(), vehicle))

	svc := services.NewFeasibilityService(routing, weather, model, stations, vehicles, trips, plannerDefaults(), nil)
	return &feasibilityFixture{service: svc, client: client, userID: userID, vehicle: vehicle}
}

func (f *feasibilityFixture) addStation(t *testing.T, name string, lat, lon, health, rating float64) *entities.Station {
	t.Helper()
	station := &entities.Station{
		ID:          uuid.New().String(),
		Name:        name,
		Location:    entities.Coordinates{Latitude: lat, Longitude: lon},
		PowerKW:     50,
		HealthScore: health,
		AvgRating:   rating,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	stations := store.NewStationAdapter(f.client)
	require.NoError(t, stations.Create(context.Background(), station))
	f.stations = append(f.stations, station)
	return station
}

var (
	mumbai    = entities.Coordinates{Latitude: 19.0760, Longitude: 72.8777}
	pune      = entities.Coordinates{Latitude: 18.5204, Longitude: 73.8567}
	bangalore = entities.Coordinates{Latitude: 12.9716, Longitude: 77.5946}
)

func TestCheckFeasibility_ReachableWithFallbackRange(t *testing.T) {
	fx := newFeasibilityFixture(t,
		&stubRouting{km: 150},
		&stubWeather{temp: 25},
		nil, // no model service configured
	)

	result, err := fx.service.CheckFeasibility(context.Background(), fx.userID, services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: pune,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  80,
	})
	require.NoError(t, err)

	// 80% of 50 kWh at 6.5 km/kWh, derated by 0.85
	assert.InDelta(t, 221.0, result.PredictedRangeKM, 0.001)
	assert.True(t, result.IsReachable)
	assert.Equal(t, entities.PredictionMethodFallback, result.PredictionMethod)
	assert.Equal(t, 150.0, result.DistanceKM)

	require.NotNil(t, result.EstimatedArrivalSoC)
	// 80 - (150/6.5)/50*100
	assert.InDelta(t, 33.846, *result.EstimatedArrivalSoC, 0.01)

	assert.Nil(t, result.RecommendedStation)
	assert.Nil(t, result.ChargingPlan)
	assert.NotEmpty(t, result.TripID)
}

func TestCheckFeasibility_ModelPredictionPreferred(t *testing.T) {
	fx := newFeasibilityFixture(t,
		&stubRouting{km: 300},
		&stubWeather{temp: 25},
		&stubModel{rangeKM: 320},
	)

	result, err := fx.service.CheckFeasibility(context.Background(), fx.userID, services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: pune,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  80,
	})
	require.NoError(t, err)

	assert.Equal(t, 320.0, result.PredictedRangeKM)
	assert.True(t, result.IsReachable)
	assert.Equal(t, entities.PredictionMethodModel, result.PredictionMethod)
}

func TestCheckFeasibility_ModelFailureFallsBack(t *testing.T) {
	fx := newFeasibilityFixture(t,
		&stubRouting{km: 150},
		&stubWeather{temp: 25},
		&stubModel{rangeErr: errors.New("connection refused")},
	)

	result, err := fx.service.CheckFeasibility(context.Background(), fx.userID, services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: pune,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  80,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.PredictionMethodFallback, result.PredictionMethod)
	assert.InDelta(t, 221.0, result.PredictedRangeKM, 0.001)
}

func TestCheckFeasibility_RoutingFailureUsesHaversine(t *testing.T) {
	fx := newFeasibilityFixture(t,
		&stubRouting{err: errors.New("timeout")},
		&stubWeather{temp: 25},
		nil,
	)

	result, err := fx.service.CheckFeasibility(context.Background(), fx.userID, services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: pune,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  80,
	})
	require.NoError(t, err)

	// Great-circle Mumbai to Pune is roughly 120 km.
	assert.InDelta(t, 120, result.DistanceKM, 10)
}

func TestCheckFeasibility_WeatherDrivesACUsage(t *testing.T) {
	fx := newFeasibilityFixture(t,
		&stubRouting{km: 100},
		&stubWeather{temp: 38},
		nil,
	)

	result, err := fx.service.CheckFeasibility(context.Background(), fx.userID, services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: pune,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  80,
	})
	require.NoError(t, err)

	assert.True(t, result.Conditions.ACUsage)
	assert.Equal(t, 38.0, result.Conditions.TemperatureC)
}

func TestCheckFeasibility_WeatherFailureUsesDefault(t *testing.T) {
	fx := newFeasibilityFixture(t,
		&stubRouting{km: 100},
		&stubWeather{err: errors.New("unavailable")},
		nil,
	)

	result, err := fx.service.CheckFeasibility(context.Background(), fx.userID, services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: pune,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  80,
	})
	require.NoError(t, err)

	assert.Equal(t, 25.0, result.Conditions.TemperatureC)
	assert.False(t, result.Conditions.ACUsage)
}

func TestCheckFeasibility_UnreachableRecommendsStation(t *testing.T) {
	fx := newFeasibilityFixture(t,
		&stubRouting{km: 850},
		&stubWeather{temp: 25},
		nil,
	)
	// Pune sits on the Mumbai-Bangalore corridor; the second station is far
	// off route and must be filtered out.
	onRoute := fx.addStation(t, "Pune Hub", pune.Latitude, pune.Longitude, 90, 4.5)
	fx.addStation(t, "Delhi Hub", 28.7041, 77.1025, 100, 5)

	result, err := fx.service.CheckFeasibility(context.Background(), fx.userID, services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: bangalore,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  60,
	})
	require.NoError(t, err)

	assert.False(t, result.IsReachable)
	assert.Nil(t, result.EstimatedArrivalSoC)
	require.NotNil(t, result.RecommendedStation)
	assert.Equal(t, onRoute.ID, result.RecommendedStation.ID)

	require.NotNil(t, result.ChargingPlan)
	assert.Equal(t, entities.PredictionMethodFallback, result.PredictionMethod)
	assert.LessOrEqual(t, result.ChargingPlan.TargetSoC, 100.0)
	assert.Greater(t, result.ChargingPlan.EnergyKWh, 0.0)
	assert.Greater(t, result.ChargingPlan.EstimatedCostINR, 0.0)
}

func TestCheckFeasibility_UnreachableUsesModelChargePlan(t *testing.T) {
	fx := newFeasibilityFixture(t,
		&stubRouting{km: 850},
		&stubWeather{temp: 25},
		&stubModel{
			rangeKM: 200,
			charge: &providers.ChargeRecommendation{
				RequiredBatteryPct:  85,
				ChargingTimeMinutes: 42,
				EnergyNeededKWh:     30,
				EstimatedCostINR:    450,
			},
		},
	)
	fx.addStation(t, "Pune Hub", pune.Latitude, pune.Longitude, 90, 4.5)

	result, err := fx.service.CheckFeasibility(context.Background(), fx.userID, services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: bangalore,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  60,
	})
	require.NoError(t, err)

	assert.False(t, result.IsReachable)
	require.NotNil(t, result.ChargingPlan)
	assert.Equal(t, 85.0, result.ChargingPlan.TargetSoC)
	assert.Equal(t, 42.0, result.ChargingPlan.ChargingTimeMinutes)
	assert.Equal(t, 450.0, result.ChargingPlan.EstimatedCostINR)
}

func TestCheckFeasibility_UnreachableNoCandidates(t *testing.T) {
	fx := newFeasibilityFixture(t,
		&stubRouting{km: 850},
		&stubWeather{temp: 25},
		nil,
	)
	// No stations at all.

	result, err := fx.service.CheckFeasibility(context.Background(), fx.userID, services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: bangalore,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  40,
	})
	require.NoError(t, err)

	assert.False(t, result.IsReachable)
	assert.Nil(t, result.RecommendedStation)
	assert.Nil(t, result.ChargingPlan)
	assert.NotEmpty(t, result.TripID)
}

func TestCheckFeasibility_AppendsTripRecord(t *testing.T) {
	fx := newFeasibilityFixture(t,
		&stubRouting{km: 150},
		&stubWeather{temp: 25},
		nil,
	)
	trips := store.NewTripAdapter(fx.client)

	result, err := fx.service.CheckFeasibility(context.Background(), fx.userID, services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: pune,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  80,
	})
	require.NoError(t, err)

	recorded, err := trips.ListByUser(context.Background(), fx.userID)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, result.TripID, recorded[0].ID)
	assert.Equal(t, fx.vehicle.ID, recorded[0].VehicleID)
	assert.True(t, recorded[0].IsReachable)
}

func TestCheckFeasibility_Validation(t *testing.T) {
	fx := newFeasibilityFixture(t, &stubRouting{km: 100}, &stubWeather{temp: 25}, nil)

	cases := []struct {
		name string
		req  services.FeasibilityRequest
	}{
		{"missing coordinates", services.FeasibilityRequest{VehicleID: fx.vehicle.ID, CurrentSoC: 50}},
		{"zero soc", services.FeasibilityRequest{Origin: mumbai, Destination: pune, VehicleID: fx.vehicle.ID, CurrentSoC: 0}},
		{"soc above 100", services.FeasibilityRequest{Origin: mumbai, Destination: pune, VehicleID: fx.vehicle.ID, CurrentSoC: 120}},
		{"missing vehicle", services.FeasibilityRequest{Origin: mumbai, Destination: pune, CurrentSoC: 50}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.service.CheckFeasibility(context.Background(), fx.userID, tc.req)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		})
	}
}

func TestCheckFeasibility_ForeignVehicleForbidden(t *testing.T) {
	fx := newFeasibilityFixture(t, &stubRouting{km: 100}, &stubWeather{temp: 25}, nil)

	_, err := fx.service.CheckFeasibility(context.Background(), "someone-else", services.FeasibilityRequest{
		Origin:      mumbai,
		Destination: pune,
		VehicleID:   fx.vehicle.ID,
		CurrentSoC:  50,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}
