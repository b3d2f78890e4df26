package handlers

import (
	"errors"
	"net/http"
	"time"

	bookingRepo "garagehub/database/repository/booking"
	"garagehub/models"
	"garagehub/services/booking"
	"garagehub/services/calendar"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking creation session flow and booking reads.
type BookingHandler struct {
	Sessions booking.SessionService
	Bookings bookingRepo.BookingRepository
}

// StartSessionHandler handles POST /api/booking/session.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	garageID := c.GetString("garageID")
	session, err := h.Sessions.Start(c.Request.Context(), garageID)
	if err != nil {
		utils.GetLogger().Error("Failed to start booking session",
			zap.String("garageID", garageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start booking session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSessionHandler handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Sessions.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSessionHandler handles PUT /api/booking/session/:sessionID. Changing
// the selected services or date re-resolves the available slots.
func (h *BookingHandler) UpdateSessionHandler(c *gin.Context) {
	var req struct {
		ServiceIDs []string `json:"serviceIds"`
		Date       string   `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Sessions.UpdateSelection(c.Request.Context(), c.Param("sessionID"), req.ServiceIDs, req.Date)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
			return
		}
		utils.GetLogger().Error("Failed to update booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectSlotHandler handles PUT /api/booking/session/:sessionID/slot.
func (h *BookingHandler) SelectSlotHandler(c *gin.Context) {
	var req struct {
		SlotID string `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Sessions.SelectSlot(c.Request.Context(), c.Param("sessionID"), req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		case errors.Is(err, booking.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
		case errors.Is(err, booking.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Slot is no longer available"})
		case errors.Is(err, booking.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Select services and a date first"})
		default:
			utils.GetLogger().Error("Failed to select slot", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select slot"})
		}
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBookingHandler handles POST /api/booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	var req struct {
		Customer models.CustomerInfo `json:"customer"`
		Vehicle  models.VehicleInfo  `json:"vehicle"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Sessions.Confirm(c.Request.Context(), c.Param("sessionID"), req.Customer, req.Vehicle)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		case errors.Is(err, booking.ErrNoSlotSelected):
			c.JSON(http.StatusConflict, gin.H{"error": "Select a slot before confirming"})
		case errors.Is(err, booking.ErrIncompleteForm):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name, vehicle registration and services are required"})
		default:
			utils.GetLogger().Error("Failed to confirm booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking"})
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CancelSessionHandler handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Sessions.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.GetLogger().Error("Failed to cancel booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled"})
}

// ListBookingsHandler handles GET /api/bookings?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	garageID := c.GetString("garageID")

	from, err := parseDateQuery(c, "from", calendar.DayStart(time.Now()))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := parseDateQuery(c, "to", from.AddDate(0, 0, 7))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}

	bookings, err := h.Bookings.ListByGarage(c.Request.Context(), garageID, from, to)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings",
			zap.String("garageID", garageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingStatusHandler handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.GetLogger().Error("Failed to update booking status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

func parseDateQuery(c *gin.Context, key string, fallback time.Time) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return time.ParseInLocation(calendar.DateLayout, raw, time.Local)
}
