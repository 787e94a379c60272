package routing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
)

const (
	defaultOSRMBaseURL    = "https://router.project-osrm.org"
	defaultHTTPTimeout    = 5 * time.Second
	routeDistanceCacheTTL = 60 * 60
)

// OSRMProvider implements RoutingProvider against an OSRM-compatible routing
// service. A single failed request is final; the planning service falls back
// to a great-circle estimate instead of retrying.
type OSRMProvider struct {
	baseURL    string
	httpClient *http.Client
	cache      providers.CacheProvider
}

// NewOSRMProvider creates a routing provider. cache may be nil.
func NewOSRMProvider(baseURL string, timeout time.Duration, cache providers.CacheProvider) providers.RoutingProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultOSRMBaseURL
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &OSRMProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
	}
}

type osrmRouteResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// RouteDistance returns the driving distance between two points in
// kilometers.
func (p *OSRMProvider) RouteDistance(ctx context.Context, from, to entities.Coordinates) (float64, error) {
	cacheKey := "route:v1:" + hashKey(fmt.Sprintf("%.5f,%.5f;%.5f,%.5f",
		from.Latitude, from.Longitude, to.Latitude, to.Longitude))
	if p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			var km float64
			if err := json.Unmarshal(cached, &km); err == nil && km > 0 {
				return km, nil
			}
		}
	}

	// OSRM takes lon,lat pairs.
	reqURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		p.baseURL, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build route request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("route request returned status %d", resp.StatusCode)
	}

	var payload osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode route response: %w", err)
	}

	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		return 0, fmt.Errorf("route request failed: %s", payload.Code)
	}

	km := payload.Routes[0].Distance / 1000

	if p.cache != nil {
		if data, err := json.Marshal(km); err == nil {
			_ = p.cache.Set(ctx, cacheKey, data, routeDistanceCacheTTL)
		}
	}

	return km, nil
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
