package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/chargepilot/chargepilot/backend/internal/adapters/cache"
	"github.com/chargepilot/chargepilot/backend/internal/adapters/providers/geocoding"
	"github.com/chargepilot/chargepilot/backend/internal/adapters/providers/routing"
	"github.com/chargepilot/chargepilot/backend/internal/adapters/providers/weather"
	"github.com/chargepilot/chargepilot/backend/internal/adapters/store"
	"github.com/chargepilot/chargepilot/backend/internal/api/handlers"
	"github.com/chargepilot/chargepilot/backend/internal/api/routes"
	"github.com/chargepilot/chargepilot/backend/internal/application/services"
	"github.com/chargepilot/chargepilot/backend/internal/domain/providers"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/mlmodel"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/redis"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/observability"
	"github.com/chargepilot/chargepilot/backend/pkg/config"
	"github.com/chargepilot/chargepilot/backend/pkg/retry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("chargepilot-api", cfg.Env)

	// Initialize metrics
	metrics := observability.InitMetrics()

	// Initialize the flat-file store
	storeClient, err := jsonfile.NewClient(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("failed to open store")
	}
	log.Info().Str("path", cfg.Store.Path).Msg("store opened")

	// Initialize Redis client; the application works without caching
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("redis cache initialized")
	}

	// External providers. Routing and weather talk to public services;
	// geocoding is mock unless configured otherwise.
	routingProvider := routing.NewOSRMProvider(
		cfg.Routing.BaseURL,
		time.Duration(cfg.Routing.TimeoutSeconds)*time.Second,
		cacheProvider,
	)
	weatherProvider := weather.NewOpenMeteoProvider(
		cfg.Weather.BaseURL,
		time.Duration(cfg.Weather.TimeoutSeconds)*time.Second,
	)

	var geocodingProvider providers.GeocodingProvider
	switch cfg.Geocoding.Provider {
	case "nominatim":
		geocodingProvider = geocoding.NewNominatimProvider(cfg.Geocoding.BaseURL, cacheProvider)
	default:
		geocodingProvider = geocoding.NewMockGeocodingProvider()
	}

	// Model service. Probe it at startup so a misconfigured URL is visible
	// immediately; the pipeline falls back to arithmetic either way.
	var modelProvider providers.RangeModelProvider
	modelClient := mlmodel.NewClient(&cfg.Model)
	probeCfg := retry.Config{
		MaxAttempts:     3,
		InitialDelay:    500 * time.Millisecond,
		MaxDelay:        5 * time.Second,
		BackoffFactor:   2.0,
		MaxTotalTimeout: 15 * time.Second,
	}
	if err := retry.Do(context.Background(), probeCfg, func() error {
		return modelClient.Health(context.Background())
	}); err != nil {
		log.Warn().Err(err).Msg("model service unreachable, predictions will use the fallback formula")
	} else {
		log.Info().Str("url", cfg.Model.BaseURL).Msg("model service reachable")
	}
	modelProvider = modelClient

	// Store adapters
	userRepo := store.NewUserAdapter(storeClient)
	vehicleRepo := store.NewVehicleAdapter(storeClient)
	stationRepo := store.NewStationAdapter(storeClient)
	tripRepo := store.NewTripAdapter(storeClient)
	reviewRepo := store.NewReviewAdapter(storeClient)
	reportRepo := store.NewReportAdapter(storeClient)
	claimRepo := store.NewClaimAdapter(storeClient)

	// Services
	authService := services.NewAuthService(userRepo, cfg.Auth)
	vehicleService := services.NewVehicleService(vehicleRepo)
	stationService := services.NewStationService(stationRepo)
	reviewService := services.NewReviewService(reviewRepo)
	reportService := services.NewReportService(reportRepo, cfg.Planner)
	claimService := services.NewClaimService(claimRepo)
	tripService := services.NewTripService(tripRepo)
	analyticsService := services.NewAnalyticsService(userRepo, stationRepo, tripRepo, reviewRepo, reportRepo, claimRepo)
	feasibilityService := services.NewFeasibilityService(
		routingProvider,
		weatherProvider,
		modelProvider,
		stationRepo,
		vehicleRepo,
		tripRepo,
		cfg.Planner,
		metrics,
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	stationHandler := handlers.NewStationHandler(stationService, reviewService, reportService)
	tripHandler := handlers.NewTripHandler(feasibilityService, tripService)
	reportHandler := handlers.NewReportHandler(reportService)
	claimHandler := handlers.NewClaimHandler(claimService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	geocodingHandler := handlers.NewGeocodingHandler(geocodingProvider)
	modelHandler := handlers.NewModelHandler(modelProvider)

	// Set up router
	router := routes.NewRouter(
		authService,
		authHandler,
		vehicleHandler,
		stationHandler,
		tripHandler,
		reportHandler,
		claimHandler,
		analyticsHandler,
		geocodingHandler,
		modelHandler,
		metrics,
	)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
