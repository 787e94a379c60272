package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chargepilot/chargepilot/backend/internal/api/handlers"
	"github.com/chargepilot/chargepilot/backend/internal/api/middleware"
	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	tokens middleware.TokenParser

	authHandler      *handlers.AuthHandler
	vehicleHandler   *handlers.VehicleHandler
	stationHandler   *handlers.StationHandler
	tripHandler      *handlers.TripHandler
	reportHandler    *handlers.ReportHandler
	claimHandler     *handlers.ClaimHandler
	analyticsHandler *handlers.AnalyticsHandler
	geocodingHandler *handlers.GeocodingHandler
	modelHandler     *handlers.ModelHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	tokens middleware.TokenParser,
	authHandler *handlers.AuthHandler,
	vehicleHandler *handlers.VehicleHandler,
	stationHandler *handlers.StationHandler,
	tripHandler *handlers.TripHandler,
	reportHandler *handlers.ReportHandler,
	claimHandler *handlers.ClaimHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	geocodingHandler *handlers.GeocodingHandler,
	modelHandler *handlers.ModelHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		tokens:           tokens,
		authHandler:      authHandler,
		vehicleHandler:   vehicleHandler,
		stationHandler:   stationHandler,
		tripHandler:      tripHandler,
		reportHandler:    reportHandler,
		claimHandler:     claimHandler,
		analyticsHandler: analyticsHandler,
		geocodingHandler: geocodingHandler,
		modelHandler:     modelHandler,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAuth(r.tokens, h)
	}
	adminOnly := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireRole(r.tokens, h, entities.RoleAdmin)
	}

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Prometheus metrics
	r.mux.Handle("GET /metrics", promhttp.Handler())

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/register", r.authHandler.Register)
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("GET /api/auth/me", authed(r.authHandler.Me))
	r.mux.HandleFunc("PATCH /api/auth/me", authed(r.authHandler.UpdateMe))

	// Vehicle endpoints
	r.mux.HandleFunc("POST /api/vehicles", authed(r.vehicleHandler.CreateVehicle))
	r.mux.HandleFunc("GET /api/vehicles", authed(r.vehicleHandler.ListVehicles))
	r.mux.HandleFunc("PUT /api/vehicles/{id}", authed(r.vehicleHandler.UpdateVehicle))
	r.mux.HandleFunc("DELETE /api/vehicles/{id}", authed(r.vehicleHandler.DeleteVehicle))

	// Station endpoints
	r.mux.HandleFunc("GET /api/stations", authed(r.stationHandler.ListStations))
	r.mux.HandleFunc("GET /api/stations/mine", authed(r.stationHandler.ListOwnedStations))
	r.mux.HandleFunc("GET /api/stations/{id}", authed(r.stationHandler.GetStation))
	r.mux.HandleFunc("POST /api/stations", authed(r.stationHandler.CreateStation))
	r.mux.HandleFunc("PUT /api/stations/{id}", authed(r.stationHandler.UpdateStation))
	r.mux.HandleFunc("DELETE /api/stations/{id}", authed(r.stationHandler.DeleteStation))

	// Review and report sub-resources
	r.mux.HandleFunc("POST /api/stations/{id}/reviews", authed(r.stationHandler.CreateReview))
	r.mux.HandleFunc("GET /api/stations/{id}/reviews", authed(r.stationHandler.ListReviews))
	r.mux.HandleFunc("POST /api/stations/{id}/reports", authed(r.stationHandler.CreateReport))

	// Trip endpoints
	r.mux.HandleFunc("POST /api/trips/check-feasibility", authed(r.tripHandler.CheckFeasibility))
	r.mux.HandleFunc("GET /api/trips", authed(r.tripHandler.ListTrips))

	// Admin report management
	r.mux.HandleFunc("GET /api/reports", adminOnly(r.reportHandler.ListReports))
	r.mux.HandleFunc("PATCH /api/reports/{id}", adminOnly(r.reportHandler.UpdateReportStatus))

	// Ownership claim endpoints
	r.mux.HandleFunc("POST /api/claims", authed(r.claimHandler.CreateClaim))
	r.mux.HandleFunc("GET /api/claims/mine", authed(r.claimHandler.ListMyClaims))
	r.mux.HandleFunc("GET /api/claims", adminOnly(r.claimHandler.ListClaims))
	r.mux.HandleFunc("PATCH /api/claims/{id}", adminOnly(r.claimHandler.ResolveClaim))

	// Analytics endpoints
	r.mux.HandleFunc("GET /api/analytics/overview", adminOnly(r.analyticsHandler.GetOverview))

	// Geocoding endpoints
	r.mux.HandleFunc("GET /api/geocode", r.geocodingHandler.Geocode)
	r.mux.HandleFunc("GET /api/reverse-geocode", r.geocodingHandler.ReverseGeocode)

	// Model metadata passthrough
	r.mux.HandleFunc("GET /api/model/info", r.modelHandler.GetModelInfo)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so preflights never hit the mux
	handler = middleware.CORSMiddleware(handler)

	return handler
}
