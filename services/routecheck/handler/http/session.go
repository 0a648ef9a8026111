package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/middleware"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/internal/utils"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

// SessionHandler serves the trip session endpoints
type SessionHandler struct {
	uc routecheck.RouteCheckUC
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(uc routecheck.RouteCheckUC) *SessionHandler {
	return &SessionHandler{uc: uc}
}

type addressRequest struct {
	Address string `json:"address"`
}

type locationRequest struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	PlaceName string  `json:"place_name"`
}

type reorderRequest struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
}

// CreateSession starts a new trip session
func (h *SessionHandler) CreateSession(c echo.Context) error {
	state, err := h.uc.CreateSession(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Session created", state)
}

// GetSession returns the current state of a trip session
func (h *SessionHandler) GetSession(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	state, err := h.uc.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved", state)
}

// SetBaseAddress updates the session's base location address
func (h *SessionHandler) SetBaseAddress(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	state, err := h.uc.SetBaseAddress(c.Request().Context(), sessionID, req.Address)
	if err != nil {
		return mapSessionError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Base address updated", state)
}

// AddStop appends a blank stop to the session
func (h *SessionHandler) AddStop(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	entitled, _ := c.Get(middleware.ContextEntitled).(bool)

	state, err := h.uc.AddStop(c.Request().Context(), sessionID, entitled)
	if err != nil {
		return mapSessionError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop added", state)
}

// RemoveStop deletes a stop from the session
func (h *SessionHandler) RemoveStop(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}
	stopID, err := uuid.Parse(c.Param("stopId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid stop ID")
	}

	state, err := h.uc.RemoveStop(c.Request().Context(), sessionID, stopID)
	if err != nil {
		return mapSessionError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop removed", state)
}

// UpdateStopAddress updates a stop's free-text address
func (h *SessionHandler) UpdateStopAddress(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}
	stopID, err := uuid.Parse(c.Param("stopId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid stop ID")
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	state, err := h.uc.UpdateStopAddress(c.Request().Context(), sessionID, stopID, req.Address)
	if err != nil {
		return mapSessionError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop address updated", state)
}

// UpdateStopLocation sets a stop's resolved coordinates, typically from an
// autocomplete pick
func (h *SessionHandler) UpdateStopLocation(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}
	stopID, err := uuid.Parse(c.Param("stopId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid stop ID")
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	point := models.GeoPoint{Lat: req.Lat, Lng: req.Lng, PlaceName: req.PlaceName}
	state, err := h.uc.UpdateStopLocation(c.Request().Context(), sessionID, stopID, point)
	if err != nil {
		return mapSessionError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop location updated", state)
}

// ReorderStops moves a stop to a new position in the sequence
func (h *SessionHandler) ReorderStops(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	state, err := h.uc.ReorderStops(c.Request().Context(), sessionID, req.FromIndex, req.ToIndex)
	if err != nil {
		return mapSessionError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stops reordered", state)
}
