package providers

import (
	"context"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

// RoutingProvider resolves a driving-route distance between two points.
// Implementations apply their own bounded timeout; callers fall back to a
// great-circle estimate on any error and never retry.
type RoutingProvider interface {
	// RouteDistance returns the driving distance in kilometers.
	RouteDistance(ctx context.Context, from, to entities.Coordinates) (float64, error)
}
