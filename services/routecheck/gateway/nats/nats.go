package gateway_nats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/constants"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/logger"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	natspkg "github.com/phantomdigital/truckcheck-sub001/internal/pkg/nats"
)

// NATSGateway publishes route compliance events
type NATSGateway struct {
	producer *natspkg.Producer
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		producer: natspkg.NewProducer(client),
	}
}

// PublishCalculationCompleted publishes a completed calculation event
func (g *NATSGateway) PublishCalculationCompleted(ctx context.Context, event *models.CalculationEvent) error {
	if err := g.producer.Publish(constants.SubjectCalculationCompleted, event); err != nil {
		return fmt.Errorf("failed to publish calculation completed event: %w", err)
	}

	logger.Debug("Published calculation completed event",
		logger.String("user_id", event.UserID.String()),
		logger.Float64("distance_km", event.DistanceKm),
		logger.Bool("logbook_required", event.LogbookRequired))

	return nil
}

// PublishDepotCreated publishes a depot created event
func (g *NATSGateway) PublishDepotCreated(ctx context.Context, depot *models.Depot) error {
	if err := g.producer.Publish(constants.SubjectDepotCreated, depot); err != nil {
		return fmt.Errorf("failed to publish depot created event: %w", err)
	}
	return nil
}

// PublishDepotDeleted publishes a depot deleted event
func (g *NATSGateway) PublishDepotDeleted(ctx context.Context, userID, depotID uuid.UUID) error {
	event := map[string]interface{}{
		"user_id":    userID.String(),
		"depot_id":   depotID.String(),
		"deleted_at": time.Now().UTC(),
	}
	if err := g.producer.Publish(constants.SubjectDepotDeleted, event); err != nil {
		return fmt.Errorf("failed to publish depot deleted event: %w", err)
	}
	return nil
}
