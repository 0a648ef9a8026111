package routecheck

import (
	"context"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/phantomdigital/truckcheck-sub001/services/routecheck RouteCheckRepo

// RouteCheckRepo represents the route compliance repository interface.
// Persistence here is best-effort: callers log failures and keep going.
type RouteCheckRepo interface {
	// calculation history
	SaveCalculation(ctx context.Context, record *models.CalculationRecord) error
	ListCalculations(ctx context.Context, userID uuid.UUID, limit int) ([]models.CalculationRecord, error)
	DeleteCalculation(ctx context.Context, userID, recordID uuid.UUID) error

	// depots
	CreateDepot(ctx context.Context, depot *models.Depot) error
	ListDepots(ctx context.Context, userID uuid.UUID) ([]models.Depot, error)
	DeleteDepot(ctx context.Context, userID, depotID uuid.UUID) error

	// recent searches
	SaveRecentSearch(ctx context.Context, userID uuid.UUID, search *models.RecentSearch) error
	ListRecentSearches(ctx context.Context, userID uuid.UUID, limit int) ([]models.RecentSearch, error)
}
