package geocoding

import (
	"context"
	"fmt"
	"strings"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
)

// MockGeocodingProvider resolves a handful of well-known cities, for tests
// and local development.
type MockGeocodingProvider struct{}

// NewMockGeocodingProvider creates a new mock geocoding provider.
func NewMockGeocodingProvider() providers.GeocodingProvider {
	return &MockGeocodingProvider{}
}

var mockCities = map[string]entities.Coordinates{
	"Mumbai":    {Latitude: 19.0760, Longitude: 72.8777},
	"Bangalore": {Latitude: 12.9716, Longitude: 77.5946},
	"Delhi":     {Latitude: 28.7041, Longitude: 77.1025},
	"Pune":      {Latitude: 18.5204, Longitude: 73.8567},
	"Hyderabad": {Latitude: 17.3850, Longitude: 78.4867},
	"Chennai":   {Latitude: 13.0827, Longitude: 80.2707},
	"Ahmedabad": {Latitude: 23.0225, Longitude: 72.5714},
}

// Geocode matches the query against known city names.
func (m *MockGeocodingProvider) Geocode(ctx context.Context, query string) (*providers.GeocodedPlace, error) {
	for city, coords := range mockCities {
		if strings.Contains(strings.ToLower(query), strings.ToLower(city)) {
			return &providers.GeocodedPlace{DisplayName: city, Coordinates: coords}, nil
		}
	}
	// Default to Mumbai so local flows always resolve something.
	return &providers.GeocodedPlace{DisplayName: "Mumbai", Coordinates: mockCities["Mumbai"]}, nil
}

// ReverseGeocode echoes the coordinates back as a display name.
func (m *MockGeocodingProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (*providers.GeocodedPlace, error) {
	return &providers.GeocodedPlace{
		DisplayName: fmt.Sprintf("%f, %f", lat, lon),
		Coordinates: entities.Coordinates{Latitude: lat, Longitude: lon},
	}, nil
}
