package mlmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
	"github.com/chargepilot/chargepilot/backend/pkg/config"
)

const defaultTimeout = 5 * time.Second

// Client talks to the external model-serving process over HTTP. It
// implements providers.RangeModelProvider. A response with success=false is
// an error: the planning service treats it the same as an unreachable
// service and switches to the closed-form fallback.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a model service client from configuration.
func NewClient(cfg *config.ModelConfig) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type predictRangeResponse struct {
	Success          bool    `json:"success"`
	Error            string  `json:"error,omitempty"`
	PredictedRangeKM float64 `json:"predicted_range_km"`
	MaxRangeKM       float64 `json:"max_range_km"`
	ModelAccuracy    float64 `json:"model_accuracy"`
}

// PredictRange calls POST /api/predict-range.
func (c *Client) PredictRange(ctx context.Context, req providers.RangePredictionRequest) (*providers.RangePrediction, error) {
	var resp predictRangeResponse
	if err := c.postJSON(ctx, "/api/predict-range", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("model service rejected prediction: %s", resp.Error)
	}
	return &providers.RangePrediction{
		PredictedRangeKM: resp.PredictedRangeKM,
		MaxRangeKM:       resp.MaxRangeKM,
		ModelAccuracy:    resp.ModelAccuracy,
	}, nil
}

type recommendChargeResponse struct {
	Success             bool    `json:"success"`
	Error               string  `json:"error,omitempty"`
	RequiredBatteryPct  float64 `json:"required_battery_pct"`
	ChargingTimeMinutes float64 `json:"estimated_charging_time_minutes"`
	EnergyNeededKWh     float64 `json:"energy_needed_kwh"`
	EstimatedCostINR    float64 `json:"estimated_cost_inr"`
	ModelAccuracy       float64 `json:"model_accuracy"`
}

// RecommendCharge calls POST /api/recommend-charge.
func (c *Client) RecommendCharge(ctx context.Context, req providers.ChargeRecommendationRequest) (*providers.ChargeRecommendation, error) {
	var resp recommendChargeResponse
	if err := c.postJSON(ctx, "/api/recommend-charge", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("model service rejected recommendation: %s", resp.Error)
	}
	return &providers.ChargeRecommendation{
		RequiredBatteryPct:  resp.RequiredBatteryPct,
		ChargingTimeMinutes: resp.ChargingTimeMinutes,
		EnergyNeededKWh:     resp.EnergyNeededKWh,
		EstimatedCostINR:    resp.EstimatedCostINR,
		ModelAccuracy:       resp.ModelAccuracy,
	}, nil
}

// ModelInfo calls GET /api/model-info.
func (c *Client) ModelInfo(ctx context.Context) (*providers.ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/model-info", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	info := &providers.ModelInfo{}
	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return nil, err
	}
	return info, nil
}

// Health calls GET /health, used as a startup probe.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model service health returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// The model service answers 400 with a success=false body on bad input;
	// decode before rejecting so the error message survives.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("model service returned status %d", resp.StatusCode)
	}
	return nil
}
