package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/middleware"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	handler_http "github.com/phantomdigital/truckcheck-sub001/services/routecheck/handler/http"
	handler_ws "github.com/phantomdigital/truckcheck-sub001/services/routecheck/handler/websocket"
)

// Handler coordinates all protocol handlers for the route compliance
// service
type Handler struct {
	sessionHandler *handler_http.SessionHandler
	calcHandler    *handler_http.CalcHandler
	shareHandler   *handler_http.ShareHandler
	historyHandler *handler_http.HistoryHandler
	geocodeWS      *handler_ws.GeocodeWSHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	sessionHandler *handler_http.SessionHandler,
	calcHandler *handler_http.CalcHandler,
	shareHandler *handler_http.ShareHandler,
	historyHandler *handler_http.HistoryHandler,
	geocodeWS *handler_ws.GeocodeWSHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		sessionHandler: sessionHandler,
		calcHandler:    calcHandler,
		shareHandler:   shareHandler,
		historyHandler: historyHandler,
		geocodeWS:      geocodeWS,
		cfg:            cfg,
	}
}

// RegisterRoutes sets up all routes. Trip sessions and share links serve
// anonymous callers, so they use the optional auth middleware; history,
// depots and recent searches require a signed-in user.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	optional := middleware.OptionalJWTMiddleware(h.cfg.JWT)
	required := middleware.JWTAuthMiddleware(h.cfg.JWT)

	sessions := e.Group("/sessions", optional)
	sessions.POST("", h.sessionHandler.CreateSession)
	sessions.GET("/:id", h.sessionHandler.GetSession)
	sessions.PUT("/:id/base", h.sessionHandler.SetBaseAddress)
	sessions.POST("/:id/stops", h.sessionHandler.AddStop)
	sessions.DELETE("/:id/stops/:stopId", h.sessionHandler.RemoveStop)
	sessions.PUT("/:id/stops/:stopId/address", h.sessionHandler.UpdateStopAddress)
	sessions.PUT("/:id/stops/:stopId/location", h.sessionHandler.UpdateStopLocation)
	sessions.POST("/:id/stops/reorder", h.sessionHandler.ReorderStops)
	sessions.POST("/:id/calculate", h.calcHandler.Calculate)
	sessions.GET("/:id/share", h.shareHandler.Encode)

	e.GET("/share", h.shareHandler.Decode, optional)
	e.GET("/geocode", h.calcHandler.Geocode, optional)
	e.GET("/ws/geocode", h.geocodeWS.HandleGeocode, optional)

	me := e.Group("/me", required)
	me.GET("/history", h.historyHandler.ListHistory)
	me.DELETE("/history/:recordId", h.historyHandler.DeleteHistory)
	me.POST("/depots", h.historyHandler.CreateDepot)
	me.GET("/depots", h.historyHandler.ListDepots)
	me.DELETE("/depots/:depotId", h.historyHandler.DeleteDepot)
	me.GET("/recent-searches", h.historyHandler.ListRecentSearches)
}
