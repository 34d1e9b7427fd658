package handlers

import (
	"errors"
	"net/http"

	"github.com/canaville/resort-booking-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication HTTP requests
type AuthHandler struct {
	authService *services.AdminAuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AdminAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AdminLoginRequest represents the admin login payload
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin authenticates the admin and issues a session token
// POST /api/v1/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "Username and password are required",
		})
		return
	}

	resp, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_credentials",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "login_failed",
			"message": "Login failed, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
