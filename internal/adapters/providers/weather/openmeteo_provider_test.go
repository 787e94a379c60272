package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargepilot/chargepilot/backend/internal/adapters/providers/weather"
)

func TestOpenMeteoProvider_CurrentTemperature(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("current_weather"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current_weather":{"temperature":31.4,"windspeed":12.0}}`))
	}))
	defer server.Close()

	provider := weather.NewOpenMeteoProvider(server.URL, time.Second)
	temp, err := provider.CurrentTemperature(context.Background(), 19.0760, 72.8777)
	require.NoError(t, err)
	assert.Equal(t, 31.4, temp)
}

func TestOpenMeteoProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := weather.NewOpenMeteoProvider(server.URL, time.Second)
	_, err := provider.CurrentTemperature(context.Background(), 19.0760, 72.8777)
	assert.Error(t, err)
}

func TestMockWeatherProvider(t *testing.T) {
	provider := weather.NewMockWeatherProvider(25)
	temp, err := provider.CurrentTemperature(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 25.0, temp)
}
