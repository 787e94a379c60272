package services

import (
	"context"
	"sort"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// StationUsage pairs a station with how often the pipeline recommended it.
type StationUsage struct {
	Station         *entities.Station `json:"station"`
	Recommendations int               `json:"recommendations"`
}

// AnalyticsOverview is the admin dashboard snapshot, computed from the full
// store on every request.
type AnalyticsOverview struct {
	TotalUsers        int            `json:"total_users"`
	TotalStations     int            `json:"total_stations"`
	TotalTrips        int            `json:"total_trips"`
	TotalReviews      int            `json:"total_reviews"`
	ReachableTrips    int            `json:"reachable_trips"`
	UnreachableTrips  int            `json:"unreachable_trips"`
	TripsByMethod     map[string]int `json:"trips_by_method"`
	AvgTripDistanceKM float64        `json:"avg_trip_distance_km"`
	TopStations       []StationUsage `json:"top_stations"`
	AvgStationHealth  float64        `json:"avg_station_health"`
	OpenReports       int            `json:"open_reports"`
	PendingClaims     int            `json:"pending_claims"`
}

const topStationsLimit = 5

// AnalyticsService aggregates store-wide counters for admins.
type AnalyticsService struct {
	users    repositories.UserRepository
	stations repositories.StationRepository
	trips    repositories.TripRepository
	reviews  repositories.ReviewRepository
	reports  repositories.ReportRepository
	claims   repositories.ClaimRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	users repositories.UserRepository,
	stations repositories.StationRepository,
	trips repositories.TripRepository,
	reviews repositories.ReviewRepository,
	reports repositories.ReportRepository,
	claims repositories.ClaimRepository,
) *AnalyticsService {
	return &AnalyticsService{
		users:    users,
		stations: stations,
		trips:    trips,
		reviews:  reviews,
		reports:  reports,
		claims:   claims,
	}
}

// Overview computes the dashboard snapshot. Admin only. The store is small
// enough that full scans per request beat maintaining incremental counters.
func (s *AnalyticsService) Overview(ctx context.Context, role string) (*AnalyticsOverview, error) {
	if !entities.RoleAllowed(role, entities.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins can view analytics")
	}

	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	stations, err := s.stations.List(ctx, repositories.StationFilter{})
	if err != nil {
		return nil, err
	}
	trips, err := s.trips.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	reviewCount, err := s.reviews.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	openReports, err := s.reports.List(ctx, entities.ReportStatusOpen)
	if err != nil {
		return nil, err
	}
	pendingClaims, err := s.claims.List(ctx, entities.ClaimStatusPending)
	if err != nil {
		return nil, err
	}

	overview := &AnalyticsOverview{
		TotalUsers:    userCount,
		TotalStations: len(stations),
		TotalTrips:    len(trips),
		TotalReviews:  reviewCount,
		TripsByMethod: map[string]int{},
		OpenReports:   len(openReports),
		PendingClaims: len(pendingClaims),
	}

	var distanceSum float64
	recommendations := map[string]int{}
	for _, t := range trips {
		if t.IsReachable {
			overview.ReachableTrips++
		} else {
			overview.UnreachableTrips++
		}
		overview.TripsByMethod[t.PredictionMethod]++
		distanceSum += t.DistanceKM
		if t.RecommendedStationID != "" {
			recommendations[t.RecommendedStationID]++
		}
	}
	if len(trips) > 0 {
		overview.AvgTripDistanceKM = distanceSum / float64(len(trips))
	}

	var healthSum float64
	for _, st := range stations {
		healthSum += st.HealthScore
	}
	if len(stations) > 0 {
		overview.AvgStationHealth = healthSum / float64(len(stations))
	}

	var usage []StationUsage
	for _, st := range stations {
		if n := recommendations[st.ID]; n > 0 {
			usage = append(usage, StationUsage{Station: st, Recommendations: n})
		}
	}
	sort.SliceStable(usage, func(i, j int) bool {
		return usage[i].Recommendations > usage[j].Recommendations
	})
	if len(usage) > topStationsLimit {
		usage = usage[:topStationsLimit]
	}
	overview.TopStations = usage

	return overview, nil
}
