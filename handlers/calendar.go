package handlers

import (
	"net/http"
	"strconv"
	"time"

	bookingRepo "garagehub/database/repository/booking"
	"garagehub/models"
	"garagehub/services/calendar"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the computed calendar views.
type CalendarHandler struct {
	Bookings bookingRepo.BookingRepository
}

// GetCalendarHandler handles GET /api/calendar. Query params: view
// (day|week|month, default day), date (YYYY-MM-DD, default today) and bay
// (bay id suffix filter, default all).
func (h *CalendarHandler) GetCalendarHandler(c *gin.Context) {
	logger := utils.GetLogger()
	garageID := c.GetString("garageID")

	mode := models.ViewMode(c.DefaultQuery("view", string(models.ViewDay)))
	if mode != models.ViewDay && mode != models.ViewWeek && mode != models.ViewMonth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown view mode"})
		return
	}

	ref := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation(calendar.DateLayout, dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		ref = parsed
	}
	bayFilter := c.DefaultQuery("bay", calendar.BayFilterAll)

	window, ok := calendar.Window(mode, ref)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid view window"})
		return
	}

	// Fetch a day wider than the window on both sides: a booking's date and
	// its service start times can land on different days.
	all, err := h.Bookings.ListByGarage(c.Request.Context(), garageID,
		window.Start.AddDate(0, 0, -1), window.End.AddDate(0, 0, 1))
	if err != nil {
		logger.Error("Failed to load bookings for calendar",
			zap.String("garageID", garageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load calendar"})
		return
	}

	view := calendar.BuildView(all, mode, ref, bayFilter)
	c.JSON(http.StatusOK, view)
}

// ClickCalendarHandler handles GET /api/calendar/click. It maps a vertical
// pixel offset inside a day column back to the hour label at that position.
func (h *CalendarHandler) ClickCalendarHandler(c *gin.Context) {
	y, err := strconv.Atoi(c.Query("y"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid y offset"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hour": calendar.HourAtPixel(y)})
}
