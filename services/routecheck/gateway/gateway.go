package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

// Geocode forwards to the HTTP gateway implementation
func (g *RouteCheckGW) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	return g.httpGateway.Geocode(ctx, address)
}

// RouteMetrics forwards to the HTTP gateway implementation
func (g *RouteCheckGW) RouteMetrics(ctx context.Context, base models.GeoPoint, waypoints []models.GeoPoint) (*models.RouteMetrics, error) {
	return g.httpGateway.RouteMetrics(ctx, base, waypoints)
}

// PublishCalculationCompleted forwards to the NATS gateway implementation
func (g *RouteCheckGW) PublishCalculationCompleted(ctx context.Context, event *models.CalculationEvent) error {
	return g.natsGateway.PublishCalculationCompleted(ctx, event)
}

// PublishDepotCreated forwards to the NATS gateway implementation
func (g *RouteCheckGW) PublishDepotCreated(ctx context.Context, depot *models.Depot) error {
	return g.natsGateway.PublishDepotCreated(ctx, depot)
}

// PublishDepotDeleted forwards to the NATS gateway implementation
func (g *RouteCheckGW) PublishDepotDeleted(ctx context.Context, userID, depotID uuid.UUID) error {
	return g.natsGateway.PublishDepotDeleted(ctx, userID, depotID)
}
