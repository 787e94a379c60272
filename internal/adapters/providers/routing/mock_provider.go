package routing

import (
	"context"
	"math"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
)

// MockRoutingProvider returns great-circle distances without touching the
// network, for tests and local development.
type MockRoutingProvider struct{}

// NewMockRoutingProvider creates a new mock routing provider.
func NewMockRoutingProvider() providers.RoutingProvider {
	return &MockRoutingProvider{}
}

// RouteDistance returns the haversine distance between the two points.
func (m *MockRoutingProvider) RouteDistance(ctx context.Context, from, to entities.Coordinates) (float64, error) {
	const earthRadiusKm = 6371.0

	lat1Rad := toRadians(from.Latitude)
	lat2Rad := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
