package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/propcalc/api/internal/config"
	"github.com/stwalsh4118/propcalc/api/internal/database"
	"github.com/stwalsh4118/propcalc/api/internal/handlers"
	"github.com/stwalsh4118/propcalc/api/internal/logger"
	"github.com/stwalsh4118/propcalc/api/internal/middleware"
	"github.com/stwalsh4118/propcalc/api/internal/repository"
	"github.com/stwalsh4118/propcalc/api/internal/services"
	"github.com/stwalsh4118/propcalc/api/internal/validator"
)

const (
	shutdownTimeout   = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
)

func main() {
	// Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithOptions(logger.Options{
		Env:     cfg.Server.Env,
		Level:   cfg.Logging.Level,
		Service: cfg.Logging.ServiceName,
	})
	log.Info("Starting propcalc API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
		"store":       cfg.Database.Enabled,
	})

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to open property store", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}

	// The property endpoints answer 503 and readiness reports "disabled"
	// when the store is off.
	var (
		pinger          handlers.Pinger
		propertyService services.PropertyService
	)
	if db != nil {
		defer db.Close()
		pinger = db
		propertyService = services.NewPropertyService(repository.NewPropertyRepository(db), log)

		log.Info("Property store ready", map[string]interface{}{
			"host":       cfg.Database.Host,
			"database":   cfg.Database.Name,
			"pool_min":   cfg.Database.PoolMin,
			"pool_max":   cfg.Database.PoolMax,
			"migrations": db.Applied,
		})
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()
	router := gin.New()

	// Middleware order: RequestID -> Logger -> Recovery -> CORS -> BodyLimit
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.BodyLimit(cfg.Limits.MaxBodyBytes))

	handlers.RegisterRoutes(router, handlers.Handlers{
		Health:   handlers.NewHealthHandler(pinger, cfg.Server.Env),
		Mortgage: handlers.NewMortgageHandler(services.NewMortgageService(log)),
		Rental:   handlers.NewRentalHandler(services.NewRentalService(log, cfg.Limits.MaxCompareScenarios)),
		Strategy: handlers.NewStrategyHandler(services.NewStrategyService(log)),
		Metadata: handlers.NewMetadataHandler(),
		Property: handlers.NewPropertyHandler(propertyService),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
