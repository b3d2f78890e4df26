package handlers

import (
	"errors"
	"net/http"

	"garagehub/services/invoice"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes invoicing endpoints.
type InvoiceHandler struct {
	InvoiceService invoice.InvoiceService
}

// IssueInvoiceHandler handles POST /api/jobsheets/:id/invoice.
func (h *InvoiceHandler) IssueInvoiceHandler(c *gin.Context) {
	inv, err := h.InvoiceService.IssueFromJobSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrSheetNotCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "Job sheet must be completed before invoicing"})
		case errors.Is(err, invoice.ErrAlreadyInvoiced):
			c.JSON(http.StatusConflict, gin.H{"error": "Job sheet already invoiced"})
		default:
			utils.GetLogger().Error("Failed to issue invoice",
				zap.String("jobSheetID", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue invoice"})
		}
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// GetInvoiceHandler handles GET /api/invoices/:id.
func (h *InvoiceHandler) GetInvoiceHandler(c *gin.Context) {
	inv, err := h.InvoiceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ListInvoicesHandler handles GET /api/invoices?status=issued.
func (h *InvoiceHandler) ListInvoicesHandler(c *gin.Context) {
	garageID := c.GetString("garageID")
	invoices, err := h.InvoiceService.List(c.Request.Context(), garageID, c.Query("status"))
	if err != nil {
		utils.GetLogger().Error("Failed to list invoices",
			zap.String("garageID", garageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// PayInvoiceHandler handles POST /api/invoices/:id/pay.
func (h *InvoiceHandler) PayInvoiceHandler(c *gin.Context) {
	inv, err := h.InvoiceService.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotPayable) {
			c.JSON(http.StatusConflict, gin.H{"error": "Invoice is not payable"})
			return
		}
		utils.GetLogger().Error("Failed to mark invoice paid",
			zap.String("invoiceID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark invoice paid"})
		return
	}
	c.JSON(http.StatusOK, inv)
}
