package routecheck

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/phantomdigital/truckcheck-sub001/services/routecheck RouteCheckUC

// RouteCheckUC represents the route compliance usecase interface
type RouteCheckUC interface {
	// trip sessions
	CreateSession(ctx context.Context) (*models.SessionState, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*models.SessionState, error)
	SetBaseAddress(ctx context.Context, sessionID uuid.UUID, address string) (*models.SessionState, error)

	// stop sequence
	AddStop(ctx context.Context, sessionID uuid.UUID, entitled bool) (*models.SessionState, error)
	RemoveStop(ctx context.Context, sessionID, stopID uuid.UUID) (*models.SessionState, error)
	UpdateStopAddress(ctx context.Context, sessionID, stopID uuid.UUID, address string) (*models.SessionState, error)
	UpdateStopLocation(ctx context.Context, sessionID, stopID uuid.UUID, point models.GeoPoint) (*models.SessionState, error)
	ReorderStops(ctx context.Context, sessionID uuid.UUID, fromIndex, toIndex int) (*models.SessionState, error)

	// compliance evaluation
	Evaluate(ctx context.Context, sessionID, userID uuid.UUID) (*models.RouteResult, error)
	GeocodeAddress(ctx context.Context, address string) (*models.GeoPoint, error)

	// share links
	EncodeShare(result *models.RouteResult) url.Values
	DecodeShare(values url.Values, entitled bool) (*models.SharedResult, error)

	// history, depots, recent searches
	History(ctx context.Context, userID uuid.UUID) ([]models.CalculationRecord, error)
	DeleteHistory(ctx context.Context, userID, recordID uuid.UUID) error
	CreateDepot(ctx context.Context, depot *models.Depot) error
	ListDepots(ctx context.Context, userID uuid.UUID) ([]models.Depot, error)
	DeleteDepot(ctx context.Context, userID, depotID uuid.UUID) error
	RecentSearches(ctx context.Context, userID uuid.UUID) ([]models.RecentSearch, error)
}
