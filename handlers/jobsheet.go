package handlers

import (
	"errors"
	"net/http"

	"garagehub/models"
	"garagehub/services/jobsheet"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobSheetHandler exposes job sheet endpoints.
type JobSheetHandler struct {
	JobSheetService jobsheet.JobSheetService
}

// GetJobSheetHandler handles GET /api/jobsheets/:id.
func (h *JobSheetHandler) GetJobSheetHandler(c *gin.Context) {
	sheet, err := h.JobSheetService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job sheet not found"})
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// GetByBookingHandler handles GET /api/bookings/:id/jobsheet.
func (h *JobSheetHandler) GetByBookingHandler(c *gin.Context) {
	sheet, err := h.JobSheetService.GetByBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job sheet not found"})
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// ListJobSheetsHandler handles GET /api/jobsheets?status=open.
func (h *JobSheetHandler) ListJobSheetsHandler(c *gin.Context) {
	garageID := c.GetString("garageID")
	sheets, err := h.JobSheetService.List(c.Request.Context(), garageID, c.Query("status"))
	if err != nil {
		utils.GetLogger().Error("Failed to list job sheets",
			zap.String("garageID", garageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list job sheets"})
		return
	}
	c.JSON(http.StatusOK, sheets)
}

// AddLineHandler handles POST /api/jobsheets/:id/lines.
func (h *JobSheetHandler) AddLineHandler(c *gin.Context) {
	var line models.JobLine
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sheet, err := h.JobSheetService.AddLine(c.Request.Context(), c.Param("id"), line)
	if err != nil {
		if errors.Is(err, jobsheet.ErrInvalidStatus) {
			c.JSON(http.StatusConflict, gin.H{"error": "Completed job sheets cannot be modified"})
			return
		}
		utils.GetLogger().Error("Failed to add job sheet line", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add line"})
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// SetStatusHandler handles PUT /api/jobsheets/:id/status.
func (h *JobSheetHandler) SetStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sheet, err := h.JobSheetService.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, jobsheet.ErrInvalidStatus) {
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
			return
		}
		utils.GetLogger().Error("Failed to set job sheet status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set status"})
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// SetNotesHandler handles PUT /api/jobsheets/:id/notes.
func (h *JobSheetHandler) SetNotesHandler(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sheet, err := h.JobSheetService.SetNotes(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		utils.GetLogger().Error("Failed to set job sheet notes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set notes"})
		return
	}
	c.JSON(http.StatusOK, sheet)
}
