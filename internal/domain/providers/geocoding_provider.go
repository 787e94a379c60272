package providers

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// GeocodedPlace is a resolved free-text location.
type GeocodedPlace struct {
	DisplayName string               `json:"display_name"`
	Coordinates entities.Coordinates `json:"coordinates"`
}

// GeocodingProvider converts between addresses and coordinates.
type GeocodingProvider interface {
	Geocode(ctx context.Context, query string) (*GeocodedPlace, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (*GeocodedPlace, error)
}
