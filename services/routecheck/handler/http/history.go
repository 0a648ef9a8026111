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

// HistoryHandler serves calculation history, depots and recent searches.
// Every route here sits behind required authentication.
type HistoryHandler struct {
	uc routecheck.RouteCheckUC
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(uc routecheck.RouteCheckUC) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

// ListHistory returns the caller's calculation history
func (h *HistoryHandler) ListHistory(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	records, err := h.uc.History(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "History retrieved", records)
}

// DeleteHistory removes one history entry
func (h *HistoryHandler) DeleteHistory(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	recordID, err := uuid.Parse(c.Param("recordId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid record ID")
	}

	if err := h.uc.DeleteHistory(c.Request().Context(), userID, recordID); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "History entry deleted", nil)
}

type depotRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// CreateDepot saves a named base location
func (h *HistoryHandler) CreateDepot(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req depotRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	depot := &models.Depot{
		UserID:  userID,
		Name:    req.Name,
		Address: req.Address,
		Lat:     req.Lat,
		Lng:     req.Lng,
	}

	if err := h.uc.CreateDepot(c.Request().Context(), depot); err != nil {
		return mapCalcError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Depot created", depot)
}

// ListDepots returns the caller's saved depots
func (h *HistoryHandler) ListDepots(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	depots, err := h.uc.ListDepots(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Depots retrieved", depots)
}

// DeleteDepot removes a saved depot
func (h *HistoryHandler) DeleteDepot(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	depotID, err := uuid.Parse(c.Param("depotId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid depot ID")
	}

	if err := h.uc.DeleteDepot(c.Request().Context(), userID, depotID); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Depot deleted", nil)
}

// ListRecentSearches returns the caller's recent destination lookups
func (h *HistoryHandler) ListRecentSearches(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	searches, err := h.uc.RecentSearches(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Recent searches retrieved", searches)
}
