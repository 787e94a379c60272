package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Env       string
	Server    ServerConfig
	Store     StoreConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Routing   RoutingConfig
	Weather   WeatherConfig
	Geocoding GeocodingConfig
	Model     ModelConfig
	Planner   PlannerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig holds the flat-file store configuration
type StoreConfig struct {
	Path string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
}

// RoutingConfig holds the routing service configuration
type RoutingConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// WeatherConfig holds the weather service configuration
type WeatherConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// GeocodingConfig holds geocoding provider configuration
type GeocodingConfig struct {
	Provider string
	BaseURL  string
}

// ModelConfig holds the range-model service configuration
type ModelConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// PlannerConfig holds the feasibility-pipeline heuristics. The defaults are
// the tuned values the fallback formulas were calibrated with; they are
// configuration so they can be adjusted without touching the pipeline.
type PlannerConfig struct {
	RangeDerate         float64
	DetourSlack         float64
	EnergyMargin        float64
	UnitPriceINRPerKWh  float64
	DefaultChargerKW    float64
	ArrivalSoCDropPct   float64
	DefaultTemperatureC float64
	ACTempThresholdC    float64
	ReportHealthPenalty float64
	AvgSpeedKMH         float64
	Terrain             string
	DrivingMode         string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "data/chargepilot.json"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTLMinutes: getEnvAsInt("JWT_TTL_MINUTES", 24*60),
		},
		Routing: RoutingConfig{
			BaseURL:        getEnv("ROUTING_BASE_URL", "https://router.project-osrm.org"),
			TimeoutSeconds: getEnvAsInt("ROUTING_TIMEOUT_SECONDS", 5),
		},
		Weather: WeatherConfig{
			BaseURL:        getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com"),
			TimeoutSeconds: getEnvAsInt("WEATHER_TIMEOUT_SECONDS", 3),
		},
		Geocoding: GeocodingConfig{
			Provider: getEnv("GEOCODING_PROVIDER", "mock"),
			BaseURL:  getEnv("GEOCODING_BASE_URL", "https://nominatim.openstreetmap.org"),
		},
		Model: ModelConfig{
			BaseURL:        getEnv("MODEL_BASE_URL", "http://localhost:5001"),
			TimeoutSeconds: getEnvAsInt("MODEL_TIMEOUT_SECONDS", 5),
		},
		Planner: PlannerConfig{
			RangeDerate:         getEnvAsFloat("PLANNER_RANGE_DERATE", 0.85),
			DetourSlack:         getEnvAsFloat("PLANNER_DETOUR_SLACK", 1.3),
			EnergyMargin:        getEnvAsFloat("PLANNER_ENERGY_MARGIN", 1.2),
			UnitPriceINRPerKWh:  getEnvAsFloat("PLANNER_UNIT_PRICE_INR", 15),
			DefaultChargerKW:    getEnvAsFloat("PLANNER_DEFAULT_CHARGER_KW", 50),
			ArrivalSoCDropPct:   getEnvAsFloat("PLANNER_ARRIVAL_SOC_DROP", 30),
			DefaultTemperatureC: getEnvAsFloat("PLANNER_DEFAULT_TEMP_C", 25),
			ACTempThresholdC:    getEnvAsFloat("PLANNER_AC_THRESHOLD_C", 30),
			ReportHealthPenalty: getEnvAsFloat("PLANNER_REPORT_PENALTY", 10),
			AvgSpeedKMH:         getEnvAsFloat("PLANNER_AVG_SPEED_KMH", 60),
			Terrain:             getEnv("PLANNER_TERRAIN", "flat"),
			DrivingMode:         getEnv("PLANNER_DRIVING_MODE", "normal"),
		},
	}, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
