package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-workerconnect-backend/config"
	v1 "go-workerconnect-backend/internal/delivery/http/v1"
	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/internal/repository/memory"
	"go-workerconnect-backend/internal/repository/redisrepo"
	"go-workerconnect-backend/internal/usecase"
	"go-workerconnect-backend/pkg/logger"
	"go-workerconnect-backend/pkg/redis"
	"go-workerconnect-backend/pkg/token"
	"go-workerconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting workerconnect backend", "port", cfg.Port)

	// 3. Setup Session Store (Redis with in-memory fallback)
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	var sessionRepo domain.SessionRepository
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, sessions will not survive restarts", "error", err)
		sessionRepo = memory.NewSessionRepository()
	} else {
		sessionRepo = redisrepo.NewSessionRepository(redis.Client(), sessionTTL)
		defer redis.Close()
	}

	// 4. Setup Seed Repositories
	workerRepo := memory.NewWorkerRepository()
	bookingRepo := memory.NewBookingRepository()
	reviewRepo := memory.NewReviewRepository()

	// 5. Setup Token Manager
	tokens := token.NewManager(cfg.SessionSecret, sessionTTL)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(sessionRepo, tokens)
	discoveryUC := usecase.NewDiscoveryUsecase(workerRepo)
	bookingUC := usecase.NewBookingUsecase(bookingRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo)
	registrationUC := usecase.NewRegistrationUsecase(authUC, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		DiscoveryUC:    discoveryUC,
		BookingUC:      bookingUC,
		ReviewUC:       reviewUC,
		RegistrationUC: registrationUC,
		Tokens:         tokens,
		Validate:       validate,
		Config:         cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
