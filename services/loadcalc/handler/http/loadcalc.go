package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/services/loadcalc/usecase"
)

// LoadCalcHandler serves the axle mass check endpoint
type LoadCalcHandler struct {
	uc *usecase.LoadCalcUC
}

// NewLoadCalcHandler creates a new load calculator handler
func NewLoadCalcHandler(uc *usecase.LoadCalcUC) *LoadCalcHandler {
	return &LoadCalcHandler{uc: uc}
}

// Check evaluates a combination's axle masses against general limits
func (h *LoadCalcHandler) Check(c *gin.Context) {
	var req models.LoadCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	if len(req.Groups) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one axle group is required"})
		return
	}

	result, err := h.uc.Evaluate(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownAxleGroup) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RegisterRoutes sets up the load calculator routes
func (h *LoadCalcHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	load := router.Group("/load")
	{
		load.POST("/check", h.Check)
	}
}
