package geocoding_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargepilot/chargepilot/backend/internal/adapters/providers/geocoding"
)

func TestNominatimProvider_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Mumbai", r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"19.0760","lon":"72.8777","display_name":"Mumbai, Maharashtra, India"}]`))
	}))
	defer server.Close()

	provider := geocoding.NewNominatimProvider(server.URL, nil)
	place, err := provider.Geocode(context.Background(), "Mumbai")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai, Maharashtra, India", place.DisplayName)
	assert.InDelta(t, 19.0760, place.Coordinates.Latitude, 0.0001)
	assert.InDelta(t, 72.8777, place.Coordinates.Longitude, 0.0001)
}

func TestNominatimProvider_GeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	provider := geocoding.NewNominatimProvider(server.URL, nil)
	_, err := provider.Geocode(context.Background(), "nowhere at all")
	assert.Error(t, err)
}

func TestNominatimProvider_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"lat":"18.5204","lon":"73.8567","display_name":"Pune, Maharashtra, India"}`))
	}))
	defer server.Close()

	provider := geocoding.NewNominatimProvider(server.URL, nil)
	place, err := provider.ReverseGeocode(context.Background(), 18.5204, 73.8567)
	require.NoError(t, err)
	assert.Equal(t, "Pune, Maharashtra, India", place.DisplayName)
}

func TestMockGeocodingProvider_KnownCity(t *testing.T) {
	provider := geocoding.NewMockGeocodingProvider()

	place, err := provider.Geocode(context.Background(), "central Bangalore")
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", place.DisplayName)
	assert.InDelta(t, 12.9716, place.Coordinates.Latitude, 0.0001)
}

func TestMockGeocodingProvider_UnknownDefaultsToMumbai(t *testing.T) {
	provider := geocoding.NewMockGeocodingProvider()

	place, err := provider.Geocode(context.Background(), "somewhere unknown")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", place.DisplayName)
}
