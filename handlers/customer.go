package handlers

import (
	"errors"
	"net/http"

	"garagehub/models"
	"garagehub/services/customer"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler exposes customer and vehicle record endpoints.
type CustomerHandler struct {
	CustomerService customer.CustomerService
}

// CreateCustomerHandler handles POST /api/customers.
func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	cust.GarageID = c.GetString("garageID")

	if err := h.CustomerService.Create(c.Request.Context(), &cust); err != nil {
		if errors.Is(err, customer.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name is required"})
			return
		}
		utils.GetLogger().Error("Failed to create customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, cust)
}

// GetCustomerHandler handles GET /api/customers/:id.
func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	cust, err := h.CustomerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, cust)
}

// ListCustomersHandler handles GET /api/customers.
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	garageID := c.GetString("garageID")
	customers, err := h.CustomerService.List(c.Request.Context(), garageID)
	if err != nil {
		utils.GetLogger().Error("Failed to list customers",
			zap.String("garageID", garageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// UpdateCustomerHandler handles PUT /api/customers/:id.
func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	cust.ID = c.Param("id")
	cust.GarageID = c.GetString("garageID")

	if err := h.CustomerService.Update(c.Request.Context(), &cust); err != nil {
		utils.GetLogger().Error("Failed to update customer", zap.String("id", cust.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}
	c.JSON(http.StatusOK, cust)
}

// DeleteCustomerHandler handles DELETE /api/customers/:id.
func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	if err := h.CustomerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.GetLogger().Error("Failed to delete customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

// AddVehicleHandler handles POST /api/customers/:id/vehicles.
func (h *CustomerHandler) AddVehicleHandler(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	added, err := h.CustomerService.AddVehicle(c.Request.Context(), c.Param("id"), vehicle)
	if err != nil {
		utils.GetLogger().Error("Failed to add vehicle", zap.String("customerID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add vehicle"})
		return
	}
	c.JSON(http.StatusCreated, added)
}
