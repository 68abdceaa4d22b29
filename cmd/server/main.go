// Package main is the entry point for the itinerary orchestration service.
//
//	@title						Itinerary Orchestration API
//	@version					1.0.0
//	@description				A trip planning service that generates day-by-day itineraries with an LLM, schedules activities around flight times, and persists booked trip components.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/tripwise/itinerary-orchestration-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/tripwise/itinerary-orchestration-service/docs"

	"github.com/tripwise/itinerary-orchestration-service/internal/adapter/completion/gemini"
	triphttp "github.com/tripwise/itinerary-orchestration-service/internal/adapter/http"
	"github.com/tripwise/itinerary-orchestration-service/internal/adapter/http/middleware"
	"github.com/tripwise/itinerary-orchestration-service/internal/adapter/store/memory"
	"github.com/tripwise/itinerary-orchestration-service/internal/adapter/store/postgres"
	"github.com/tripwise/itinerary-orchestration-service/internal/config"
	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
	"github.com/tripwise/itinerary-orchestration-service/internal/infrastructure/logger"
	"github.com/tripwise/itinerary-orchestration-service/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	storeInitTimeout = 15 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Backend).
		Msg("Configuration loaded")

	ctx := context.Background()

	// Initialize component store
	store, cleanup, err := buildStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize component store")
	}
	defer cleanup()

	// Initialize completion client
	completion, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:          cfg.Completion.APIKey,
		Model:           cfg.Completion.Model,
		Temperature:     float32(cfg.Completion.Temperature),
		MaxOutputTokens: int32(cfg.Completion.MaxOutputTokens),
		Logger:          &log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize completion client")
	}

	// Initialize use case
	planner := usecase.NewTripPlanner(completion, store, &usecase.Config{
		CompletionTimeout: cfg.Planner.CompletionTimeout,
		RetryAttempts:     cfg.Planner.RetryAttempts,
		MaxTripDays:       cfg.Planner.MaxTripDays,
		WebContext:        cfg.Planner.WebContext,
		Logger:            &log.Logger,
	})

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware and routes
	middleware.Setup(e, log.Logger)
	handler := triphttp.NewTripHandler(planner, store)
	triphttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// buildStore creates the component store selected by configuration.
// The returned cleanup func releases any held connections.
func buildStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.ComponentStore, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Store.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}

		store := postgres.NewStore(pool)

		initCtx, cancel := context.WithTimeout(ctx, storeInitTimeout)
		defer cancel()
		if err := store.EnsureSchema(initCtx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}

		log.Info().Msg("Connected to postgres component store")
		return store, pool.Close, nil

	default:
		return memory.NewStore(), func() {}, nil
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
