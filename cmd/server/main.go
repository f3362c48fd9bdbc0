// Package main is the entry point for the trip planner service. It wires
// the search providers, the session-scoped itinerary store, and the HTTP
// layer together from environment configuration.
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

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	triphttp "github.com/tripdeck/travel-itinerary-service/internal/adapter/http"
	"github.com/tripdeck/travel-itinerary-service/internal/adapter/http/middleware"
	"github.com/tripdeck/travel-itinerary-service/internal/adapter/provider/bookingcom"
	"github.com/tripdeck/travel-itinerary-service/internal/adapter/provider/localguide"
	"github.com/tripdeck/travel-itinerary-service/internal/adapter/provider/skyscrapper"
	"github.com/tripdeck/travel-itinerary-service/internal/config"
	"github.com/tripdeck/travel-itinerary-service/internal/infrastructure/logger"
	"github.com/tripdeck/travel-itinerary-service/internal/store"
	"github.com/tripdeck/travel-itinerary-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "trip-planner",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("session_backend", cfg.Session.Backend).
		Msg("Configuration loaded")

	// Session snapshot store (memory or redis)
	snapshots, err := buildSnapshotStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize session store")
	}

	// Search providers
	flightProvider := skyscrapper.NewAdapter(skyscrapper.Config{
		BaseURL:     cfg.Providers.FlightBaseURL,
		APIKey:      cfg.Providers.APIKey,
		Currency:    cfg.Providers.Currency,
		Market:      cfg.Providers.Market,
		CountryCode: cfg.Providers.CountryCode,
		Timeout:     cfg.Search.ProviderTimeout,
	})
	hotelProvider := bookingcom.NewAdapter(bookingcom.Config{
		BaseURL:  cfg.Providers.HotelBaseURL,
		APIKey:   cfg.Providers.APIKey,
		Currency: cfg.Providers.Currency,
		Language: cfg.Providers.Language,
		Timeout:  cfg.Search.ProviderTimeout,
	})
	activityProvider := localguide.NewAdapter()

	// Application services
	searchUC := usecase.NewSearchUsecase(
		flightProvider,
		hotelProvider,
		activityProvider,
		usecase.Fallbacks{
			Flights:    skyscrapper.FallbackFlights,
			Hotels:     bookingcom.FallbackHotels,
			Activities: localguide.FallbackActivities,
		},
		cfg.Search.ProviderTimeout,
		log,
	)
	itineraryUC := usecase.NewItineraryUsecase(snapshots, log)

	// HTTP layer
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	triphttp.RegisterRoutes(e, triphttp.NewSearchHandler(searchUC), triphttp.NewItineraryHandler(itineraryUC))

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildSnapshotStore constructs the configured session store backend.
func buildSnapshotStore(cfg *config.Config, log *logger.Logger) (store.SnapshotStore, error) {
	switch cfg.Session.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})

		rs := store.NewRedis(client, cfg.Session.TTL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rs.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis session store: %w", err)
		}

		log.Info().Str("addr", cfg.Session.RedisAddr).Msg("Using redis session store")
		return rs, nil
	default:
		log.Info().Dur("ttl", cfg.Session.TTL).Msg("Using in-memory session store")
		return store.NewMemory(cfg.Session.TTL), nil
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
