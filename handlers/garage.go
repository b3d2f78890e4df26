package handlers

import (
	"errors"
	"net/http"

	"garagehub/models"
	"garagehub/services/garage"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GarageHandler exposes garage settings endpoints.
type GarageHandler struct {
	GarageService garage.GarageService
}

// GetGarageHandler handles GET /api/garage.
func (h *GarageHandler) GetGarageHandler(c *gin.Context) {
	garageID := c.GetString("garageID")
	g, err := h.GarageService.Get(c.Request.Context(), garageID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Garage not found"})
		return
	}
	c.JSON(http.StatusOK, g)
}

// SaveGarageHandler handles PUT /api/garage. Bays, technicians and the
// service catalogue are replaced wholesale.
func (h *GarageHandler) SaveGarageHandler(c *gin.Context) {
	var g models.Garage
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	g.ID = c.GetString("garageID")

	if err := h.GarageService.Save(c.Request.Context(), &g); err != nil {
		if errors.Is(err, garage.ErrInvalidHours) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business hours"})
			return
		}
		utils.GetLogger().Error("Failed to save garage", zap.String("garageID", g.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save garage"})
		return
	}
	c.JSON(http.StatusOK, g)
}

// SetHoursHandler handles PUT /api/garage/hours.
func (h *GarageHandler) SetHoursHandler(c *gin.Context) {
	var req struct {
		Hours []models.BusinessHours `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	garageID := c.GetString("garageID")
	if err := h.GarageService.SetHours(c.Request.Context(), garageID, req.Hours); err != nil {
		if errors.Is(err, garage.ErrInvalidHours) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business hours"})
			return
		}
		utils.GetLogger().Error("Failed to set business hours",
			zap.String("garageID", garageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set business hours"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business hours updated"})
}
