package handlers

import (
	"errors"
	"net/http"

	"garagehub/services/user"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes staff account endpoints.
type UserHandler struct {
	UserService user.UserService
}

// RegisterHandler handles POST /api/users/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		GarageID string `json:"garageId" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.UserService.Register(c.Request.Context(), req.GarageID, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to register user", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// LoginHandler handles POST /api/users/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, token, err := h.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate user", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr, "token": token})
}

// MeHandler handles GET /api/users/me.
func (h *UserHandler) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := h.UserService.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// LogoutHandler handles POST /api/users/logout. It revokes the stored token
// hash so the presented token stops working.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.UserService.RevokeToken(c.Request.Context(), userID); err != nil {
		utils.GetLogger().Error("Failed to revoke token", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
