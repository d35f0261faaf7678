package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maku-travel/inventory/internal/activities"
	"github.com/maku-travel/inventory/internal/auth"
	"github.com/maku-travel/inventory/internal/config"
	"github.com/maku-travel/inventory/internal/handler"
	"github.com/maku-travel/inventory/internal/middleware"
	"github.com/maku-travel/inventory/internal/obs"
	"github.com/maku-travel/inventory/internal/payments"
	"github.com/maku-travel/inventory/internal/providers"
	"github.com/maku-travel/inventory/internal/search"
	"github.com/maku-travel/inventory/internal/search/cache"
	"github.com/maku-travel/inventory/internal/search/ratelimit"
	"github.com/maku-travel/inventory/internal/transfers"
)

// Run initializes and runs the application.
func Run() error {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	metrics := obs.NewMetrics(logger)

	// Provider adapters. Credentials are injected here, one Hotelbeds key
	// pair per service; nothing reads them from globals.
	registry := auth.NewRegistry(map[string]auth.Credentials{
		auth.ServiceHotels:     {APIKey: cfg.HotelbedsHotels.APIKey, Secret: cfg.HotelbedsHotels.Secret},
		auth.ServiceActivities: {APIKey: cfg.HotelbedsActivities.APIKey, Secret: cfg.HotelbedsActivities.Secret},
		auth.ServiceTransfers:  {APIKey: cfg.HotelbedsTransfers.APIKey, Secret: cfg.HotelbedsTransfers.Secret},
	})
	hotelsSigner, err := registry.Signer(auth.ServiceHotels)
	if err != nil {
		return err
	}
	activitiesSigner, err := registry.Signer(auth.ServiceActivities)
	if err != nil {
		return err
	}
	transfersSigner, err := registry.Signer(auth.ServiceTransfers)
	if err != nil {
		return err
	}

	amadeus := providers.NewAmadeus(cfg.AmadeusBaseURL, cfg.AmadeusHotelIDs, cfg.ProviderTimeout)
	hotelbeds := providers.NewHotelbeds(cfg.HotelbedsBaseURL, hotelsSigner, cfg.ProviderTimeout)
	activitiesClient := providers.NewActivitiesClient(cfg.HotelbedsBaseURL, activitiesSigner, cfg.ProviderTimeout)
	transfersClient := providers.NewTransfersClient(cfg.HotelbedsBaseURL, transfersSigner, cfg.ProviderTimeout)

	aggregator := search.NewAggregator(amadeus, hotelbeds, cfg.SearchTimeout, metrics, logger)
	activitiesService := activities.NewService(activitiesClient, metrics, logger)
	transfersService := transfers.NewService(transfersClient, metrics, logger)

	searchCache := cache.NewCache(cfg.CacheTTL)
	defer searchCache.Close()

	limiter := ratelimit.New(cfg.RateLimit, cfg.RateLimitWindow)
	defer limiter.Close()

	paymentsClient := payments.New(cfg.StripeSecretKey)

	h := handler.New(aggregator, activitiesService, transfersService, searchCache, limiter, paymentsClient, metrics, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search/unified", h.UnifiedSearchHandler)
	mux.HandleFunc("GET /api/inventory/live", h.LiveInventoryHandler)
	mux.HandleFunc("GET /api/hotelbeds/activities", h.ActivitiesHandler)
	mux.HandleFunc("GET /api/hotelbeds/transfers", h.TransfersHandler)
	mux.HandleFunc("POST /api/hotels/booking", h.BookingHandler)
	mux.HandleFunc("GET /api/hotels/ratings", h.RatingsHandler)
	mux.HandleFunc("POST /api/payments/intent", h.PaymentIntentHandler)
	mux.HandleFunc("GET /healthz", obs.HealthHandler(logger))
	mux.HandleFunc("GET /metrics", metrics.MetricsHandler())

	wrappedHandler := middleware.Logging(logger)(mux)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      wrappedHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}
