package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

// CreateDepot saves a named base location for the user
func (r *RouteCheckRepo) CreateDepot(ctx context.Context, depot *models.Depot) error {
	if depot.CreatedAt.IsZero() {
		depot.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO depots (id, user_id, name, address, lat, lng, created_at)
		VALUES (:id, :user_id, :name, :address, :lat, :lng, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, depot); err != nil {
		return fmt.Errorf("failed to create depot: %w", err)
	}

	return nil
}

// ListDepots returns the user's saved depots, oldest first
func (r *RouteCheckRepo) ListDepots(ctx context.Context, userID uuid.UUID) ([]models.Depot, error) {
	query := `
		SELECT id, user_id, name, address, lat, lng, created_at
		FROM depots
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	var depots []models.Depot
	if err := r.db.SelectContext(ctx, &depots, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list depots: %w", err)
	}

	return depots, nil
}

// DeleteDepot removes one depot owned by the user
func (r *RouteCheckRepo) DeleteDepot(ctx context.Context, userID, depotID uuid.UUID) error {
	query := `DELETE FROM depots WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, depotID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete depot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("depot not found")
	}

	return nil
}
