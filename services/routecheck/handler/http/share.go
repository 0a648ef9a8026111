package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/middleware"
	"github.com/phantomdigital/truckcheck-sub001/internal/utils"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

// ShareHandler serves share link encoding and decoding
type ShareHandler struct {
	uc routecheck.RouteCheckUC
}

// NewShareHandler creates a new share handler
func NewShareHandler(uc routecheck.RouteCheckUC) *ShareHandler {
	return &ShareHandler{uc: uc}
}

// Encode builds a share query string from the session's latest result
func (h *ShareHandler) Encode(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	state, err := h.uc.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}
	if state.Result == nil {
		return utils.BadRequestResponse(c, "Session has no calculation to share")
	}

	values := h.uc.EncodeShare(state.Result)
	return utils.SuccessResponse(c, http.StatusOK, "Share link encoded", map[string]string{
		"query": values.Encode(),
	})
}

// Decode rebuilds a shared result from link query parameters. The full
// route is always returned; EditDisabled tells the client whether the
// caller may edit a multi-stop route.
func (h *ShareHandler) Decode(c echo.Context) error {
	entitled, _ := c.Get(middleware.ContextEntitled).(bool)

	shared, err := h.uc.DecodeShare(c.QueryParams(), entitled)
	if err != nil {
		return utils.BadRequestResponse(c, "Malformed share link")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Share link decoded", shared)
}
