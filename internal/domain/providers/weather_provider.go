package providers

import "context"

// WeatherProvider resolves current ambient conditions at a point.
// Callers substitute a configured default temperature on any error.
type WeatherProvider interface {
	// CurrentTemperature returns the temperature in degrees Celsius.
	CurrentTemperature(ctx context.Context, lat, lon float64) (float64, error)
}
