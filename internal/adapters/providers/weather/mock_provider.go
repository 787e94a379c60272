package weather

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
)

// MockWeatherProvider returns a fixed temperature, for tests and local
// development.
type MockWeatherProvider struct {
	TemperatureC float64
}

// NewMockWeatherProvider creates a mock weather provider reporting temp
// everywhere.
func NewMockWeatherProvider(temp float64) providers.WeatherProvider {
	return &MockWeatherProvider{TemperatureC: temp}
}

// CurrentTemperature returns the fixed temperature.
func (m *MockWeatherProvider) CurrentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	return m.TemperatureC, nil
}
