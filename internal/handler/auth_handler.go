package handler

import (
	"errors"
	"net/http"

	"coinadmin/config"
	"coinadmin/internal/middleware"
	"coinadmin/internal/repository"
	"coinadmin/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cfg       *config.Config
	authSvc   *service.AuthService
	adminRepo *repository.AdminRepository
}

func NewAuthHandler(cfg *config.Config, authSvc *service.AuthService, adminRepo *repository.AdminRepository) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc, adminRepo: adminRepo}
}

// Login handles POST /auth/login and issues the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}
	admin, token, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	secure := h.cfg.Server.Env == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, token, int(h.cfg.JWT.Expiry.Seconds()), "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"name":     admin.Name,
		},
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	admin, err := h.adminRepo.GetByID(middleware.GetAdminID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "admin not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"name":     admin.Name,
	}})
}

// Logout handles POST /auth/logout and clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	secure := h.cfg.Server.Env == "production"
	c.SetCookie(middleware.CookieName, "", -1, "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
