package v1

import (
	"net/http"

	"go-workerconnect-backend/config"
	"go-workerconnect-backend/internal/delivery/http/middleware"
	"go-workerconnect-backend/internal/delivery/http/response"
	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC, config: cfg}

	// Public Routes
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/login", handler.Login)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.POST("/logout", handler.Logout)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=customer worker"`
}

// Login validates the credential triple against the fixed allow-list and
// returns the synthesized identity plus a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	setAuthCookie(c, h.config, result.Token)
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me returns the identity restored by the auth middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}
	response.Success(c, http.StatusOK, "Current user", identity)
}

// Logout clears the persisted session snapshot. Idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(string(domain.KeySessionID))
	if err := h.authUC.Logout(c.Request.Context(), sessionID); err != nil {
		c.Error(err)
		return
	}

	clearAuthCookie(c)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

func setAuthCookie(c *gin.Context, cfg *config.Config, token string) {
	maxAge := cfg.SessionTTLHours * 3600
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, maxAge, "/", "", false, true)
}

func clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
}
