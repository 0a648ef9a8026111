package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/logger"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

// History returns the user's most recent calculations, newest first.
func (uc *RouteCheckUC) History(ctx context.Context, userID uuid.UUID) ([]models.CalculationRecord, error) {
	return uc.repo.ListCalculations(ctx, userID, uc.cfg.Compliance.HistoryLimit)
}

// DeleteHistory removes one calculation from the user's history.
func (uc *RouteCheckUC) DeleteHistory(ctx context.Context, userID, recordID uuid.UUID) error {
	return uc.repo.DeleteCalculation(ctx, userID, recordID)
}

// CreateDepot saves a named base location. The depot address is geocoded
// here when the caller did not supply coordinates.
func (uc *RouteCheckUC) CreateDepot(ctx context.Context, depot *models.Depot) error {
	if depot.Name == "" {
		return routecheck.ErrEmptyAddress
	}

	if depot.Lat == 0 && depot.Lng == 0 {
		pt, err := uc.GeocodeAddress(ctx, depot.Address)
		if err != nil {
			return err
		}
		depot.Lat = pt.Lat
		depot.Lng = pt.Lng
		depot.Address = pt.PlaceName
	}

	if depot.ID == uuid.Nil {
		depot.ID = uuid.New()
	}

	if err := uc.repo.CreateDepot(ctx, depot); err != nil {
		return err
	}

	if err := uc.gw.PublishDepotCreated(ctx, depot); err != nil {
		logger.Warn("Failed to publish depot created event",
			logger.Err(err),
			logger.String("depot_id", depot.ID.String()))
	}

	return nil
}

// ListDepots returns the user's saved base locations.
func (uc *RouteCheckUC) ListDepots(ctx context.Context, userID uuid.UUID) ([]models.Depot, error) {
	return uc.repo.ListDepots(ctx, userID)
}

// DeleteDepot removes a saved base location.
func (uc *RouteCheckUC) DeleteDepot(ctx context.Context, userID, depotID uuid.UUID) error {
	if err := uc.repo.DeleteDepot(ctx, userID, depotID); err != nil {
		return err
	}

	if err := uc.gw.PublishDepotDeleted(ctx, userID, depotID); err != nil {
		logger.Warn("Failed to publish depot deleted event",
			logger.Err(err),
			logger.String("depot_id", depotID.String()))
	}

	return nil
}

// RecentSearches returns the user's recent destination lookups, newest
// first, capped at the configured limit.
func (uc *RouteCheckUC) RecentSearches(ctx context.Context, userID uuid.UUID) ([]models.RecentSearch, error) {
	return uc.repo.ListRecentSearches(ctx, userID, uc.cfg.Compliance.RecentSearchLimit)
}
