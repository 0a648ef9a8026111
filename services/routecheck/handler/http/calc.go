package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/middleware"
	"github.com/phantomdigital/truckcheck-sub001/internal/utils"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

// CalcHandler serves the compliance calculation endpoint
type CalcHandler struct {
	uc routecheck.RouteCheckUC
}

// NewCalcHandler creates a new calculation handler
func NewCalcHandler(uc routecheck.RouteCheckUC) *CalcHandler {
	return &CalcHandler{uc: uc}
}

// Calculate runs the work diary evaluation for a session. Anonymous
// callers get a result too; only signed-in calls are recorded in history.
func (h *CalcHandler) Calculate(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	userID, _ := c.Get(middleware.ContextUserID).(uuid.UUID)

	result, err := h.uc.Evaluate(c.Request().Context(), sessionID, userID)
	if err != nil {
		return mapCalcError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Calculation completed", result)
}

// Geocode resolves a single free-text address
func (h *CalcHandler) Geocode(c echo.Context) error {
	address := c.QueryParam("address")

	point, err := h.uc.GeocodeAddress(c.Request().Context(), address)
	if err != nil {
		return mapCalcError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Address resolved", point)
}

// mapSessionError translates session and entitlement errors to HTTP status
// codes
func mapSessionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, routecheck.ErrSessionNotFound),
		errors.Is(err, routecheck.ErrStopNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, routecheck.ErrUpgradeRequired):
		return utils.PaymentRequiredResponse(c, err.Error())
	case errors.Is(err, routecheck.ErrEmptyAddress):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}

// mapCalcError translates calculation errors. Geocoding misses are the
// user's to fix (422); provider faults are ours (503). A superseded
// calculation is not an error condition worth surfacing as a failure.
func mapCalcError(c echo.Context, err error) error {
	var stopErr *routecheck.StopGeocodeError
	if errors.As(err, &stopErr) {
		if routecheck.IsGeocodeUnavailable(stopErr.Err) {
			return utils.ServiceUnavailableResponse(c, stopErr.Error())
		}
		return utils.UnprocessableEntityResponse(c, stopErr.Error())
	}

	switch {
	case routecheck.IsGeocodeNotFound(err):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case routecheck.IsGeocodeUnavailable(err):
		return utils.ServiceUnavailableResponse(c, err.Error())
	case errors.Is(err, routecheck.ErrBaseNotSet),
		errors.Is(err, routecheck.ErrEmptyAddress):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, routecheck.ErrSuperseded):
		return utils.SuccessResponse(c, http.StatusAccepted, "Superseded by a newer calculation", nil)
	default:
		return mapSessionError(c, err)
	}
}
