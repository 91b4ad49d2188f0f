package v1

import (
	"net/http"
	"time"

	"go-workerconnect-backend/config"
	"go-workerconnect-backend/internal/delivery/http/middleware"
	"go-workerconnect-backend/internal/delivery/http/response"
	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	DiscoveryUC    domain.DiscoveryUsecase
	BookingUC      domain.BookingUsecase
	ReviewUC       domain.ReviewUsecase
	RegistrationUC domain.RegistrationUsecase
	Tokens         *token.Manager
	Validate       *validator.Validate
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Login gets its own strict rate limit window
	loginLimited := v1.Group("")
	loginLimited.Use(middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	NewAuthHandler(loginLimited, protected, deps.AuthUC, deps.Config)
	NewWorkerHandler(v1, deps.DiscoveryUC, deps.ReviewUC)
	NewRegistrationHandler(v1, deps.RegistrationUC, deps.Validate, deps.Config)
	NewBookingHandler(protected, deps.BookingUC)

	return r
}
