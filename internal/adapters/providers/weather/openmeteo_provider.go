package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
)

const (
	defaultBaseURL     = "https://api.open-meteo.com"
	defaultHTTPTimeout = 3 * time.Second
)

// OpenMeteoProvider implements WeatherProvider against an Open-Meteo
// compatible endpoint. Failures are expected and cheap: the planning service
// substitutes a configured default temperature.
type OpenMeteoProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoProvider creates a weather provider.
func NewOpenMeteoProvider(baseURL string, timeout time.Duration) providers.WeatherProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &OpenMeteoProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
	} `json:"current_weather"`
}

// CurrentTemperature returns the current temperature at the point in
// degrees Celsius.
func (p *OpenMeteoProvider) CurrentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	reqURL := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&current_weather=true",
		p.baseURL, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("weather request returned status %d", resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode weather response: %w", err)
	}

	return payload.CurrentWeather.Temperature, nil
}
