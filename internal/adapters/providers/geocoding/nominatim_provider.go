package geocoding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
)

const (
	defaultBaseURL         = "https://nominatim.openstreetmap.org"
	defaultHTTPTimeout     = 5 * time.Second
	defaultGeocodeCacheTTL = 60 * 60 * 24 * 30
)

// NominatimProvider implements GeocodingProvider against a Nominatim-style
// search API, with cache-aside on resolved queries since places rarely move.
type NominatimProvider struct {
	baseURL    string
	httpClient *http.Client
	cache      providers.CacheProvider
}

// NewNominatimProvider creates a geocoding provider. cache may be nil.
func NewNominatimProvider(baseURL string, cache providers.CacheProvider) providers.GeocodingProvider {
	return NewNominatimProviderWithOptions(baseURL, cache, nil)
}

// NewNominatimProviderWithOptions allows overriding the HTTP client (used
// for tests).
func NewNominatimProviderWithOptions(baseURL string, cache providers.CacheProvider, httpClient *http.Client) providers.GeocodingProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &NominatimProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		cache:      cache,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text query to a place.
func (p *NominatimProvider) Geocode(ctx context.Context, query string) (*providers.GeocodedPlace, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, fmt.Errorf("query is required")
	}

	cacheKey := "geo:v1:search:" + hashKey(strings.ToLower(trimmed))
	if p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			var place providers.GeocodedPlace
			if err := json.Unmarshal(cached, &place); err == nil && !place.Coordinates.IsZero() {
				return &place, nil
			}
		}
	}

	params := url.Values{}
	params.Set("q", trimmed)
	params.Set("format", "json")
	params.Set("limit", "1")

	results, err := p.doSearchRequest(ctx, "/search", params)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no results for query")
	}

	place, err := toPlace(results[0])
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if payload, err := json.Marshal(place); err == nil {
			_ = p.cache.Set(ctx, cacheKey, payload, defaultGeocodeCacheTTL)
		}
	}

	return place, nil
}

// ReverseGeocode resolves coordinates to the nearest place.
func (p *NominatimProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (*providers.GeocodedPlace, error) {
	cacheKey := "geo:v1:reverse:" + hashKey(fmt.Sprintf("%.5f,%.5f", lat, lon))
	if p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			var place providers.GeocodedPlace
			if err := json.Unmarshal(cached, &place); err == nil && !place.Coordinates.IsZero() {
				return &place, nil
			}
		}
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("format", "json")

	reqURL := fmt.Sprintf("%s/reverse?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build reverse geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "chargepilot-backend")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("reverse geocode request returned status %d", resp.StatusCode)
	}

	var result nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode reverse geocode response: %w", err)
	}

	place, err := toPlace(result)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if payload, err := json.Marshal(place); err == nil {
			_ = p.cache.Set(ctx, cacheKey, payload, defaultGeocodeCacheTTL)
		}
	}

	return place, nil
}

func (p *NominatimProvider) doSearchRequest(ctx context.Context, path string, params url.Values) ([]nominatimResult, error) {
	reqURL := fmt.Sprintf("%s%s?%s", p.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "chargepilot-backend")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	return results, nil
}

func toPlace(r nominatimResult) (*providers.GeocodedPlace, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocode response: %w", err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocode response: %w", err)
	}
	return &providers.GeocodedPlace{
		DisplayName: r.DisplayName,
		Coordinates: entities.Coordinates{Latitude: lat, Longitude: lon},
	}, nil
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
