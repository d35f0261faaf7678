// Command provider runs a mock upstream for local development: either an
// Amadeus-shaped hotel list endpoint or a Hotelbeds-shaped availability
// endpoint, so the real adapters can be exercised without live credentials.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	port := getEnv("PORT", "9001")
	providerType := getEnv("PROVIDER_TYPE", "amadeus")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	mux := http.NewServeMux()

	switch providerType {
	case "amadeus":
		mux.Handle("GET /api/hotels/list", NewMockAmadeus())
		logger.Info("starting mock provider", "type", "amadeus", "port", port)
	case "hotelbeds":
		mux.Handle("POST /hotel-api/1.0/hotels", NewMockHotelbeds(
			getEnv("HOTELBEDS_API_KEY", "demo-key"),
		))
		mux.Handle("GET /activity-content-api/3.0/activities", NewMockActivities(
			getEnv("HOTELBEDS_ACTIVITIES_API_KEY", "demo-key"),
		))
		mux.Handle("POST /transfer-api/1.0/availability", NewMockTransfers(
			getEnv("HOTELBEDS_TRANSFERS_API_KEY", "demo-key"),
		))
		logger.Info("starting mock provider", "type", "hotelbeds", "port", port)
	default:
		logger.Error("unknown provider type", "type", providerType)
		os.Exit(1)
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write healthz response", "error", err)
		}
	})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// getEnv gets an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
