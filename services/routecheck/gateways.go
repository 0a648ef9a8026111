package routecheck

import (
	"context"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/phantomdigital/truckcheck-sub001/services/routecheck RouteCheckGW

// RouteCheckGW defines the route compliance gateway interface
type RouteCheckGW interface {
	// Geocoding provider. Returns the highest-confidence match for the
	// address, a *GeocodeError with Kind GeocodeNotFound when the provider
	// has no match, or Kind GeocodeUnavailable on timeout/fault.
	Geocode(ctx context.Context, address string) (*models.GeoPoint, error)

	// Routing provider. Returns driving metrics for the route base ->
	// waypoints in order, or an error on any failure; callers fall back to
	// straight-line distance when no metrics are available.
	RouteMetrics(ctx context.Context, base models.GeoPoint, waypoints []models.GeoPoint) (*models.RouteMetrics, error)

	// NATS gateway, fire-and-forget
	PublishCalculationCompleted(ctx context.Context, event *models.CalculationEvent) error
	PublishDepotCreated(ctx context.Context, depot *models.Depot) error
	PublishDepotDeleted(ctx context.Context, userID, depotID uuid.UUID) error
}
