package usecase

import (
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

// RouteCheckUC implements the route compliance usecase
type RouteCheckUC struct {
	cfg      *models.Config
	repo     routecheck.RouteCheckRepo
	gw       routecheck.RouteCheckGW
	sessions *SessionManager
}

// NewRouteCheckUC creates a new route compliance usecase
func NewRouteCheckUC(
	cfg *models.Config,
	repo routecheck.RouteCheckRepo,
	gw routecheck.RouteCheckGW,
) *RouteCheckUC {
	return &RouteCheckUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		sessions: NewSessionManager(),
	}
}
