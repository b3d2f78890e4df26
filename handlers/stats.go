package handlers

import (
	"net/http"
	"time"

	"garagehub/services/stats"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler exposes the dashboard summary endpoint.
type StatsHandler struct {
	StatsService stats.StatsService
}

// OverviewHandler handles GET /api/stats/overview.
func (h *StatsHandler) OverviewHandler(c *gin.Context) {
	garageID := c.GetString("garageID")
	overview, err := h.StatsService.Overview(c.Request.Context(), garageID, time.Now())
	if err != nil {
		utils.GetLogger().Error("Failed to compute dashboard overview",
			zap.String("garageID", garageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load overview"})
		return
	}
	c.JSON(http.StatusOK, overview)
}
