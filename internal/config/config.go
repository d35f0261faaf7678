package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. It is constructed once at
// startup and injected into the components that need it; there is no
// package-level state.
type Config struct {
	// HTTP server
	Addr string

	// Provider endpoints
	AmadeusBaseURL   string
	HotelbedsBaseURL string
	ProviderTimeout  time.Duration

	// Default hotel set requested from the Amadeus-side list endpoint.
	AmadeusHotelIDs []string

	// Hotelbeds credentials, one key pair per service. Signatures are
	// derived from these per call.
	HotelbedsHotels     HotelbedsCredentials
	HotelbedsActivities HotelbedsCredentials
	HotelbedsTransfers  HotelbedsCredentials

	// Aggregation
	SearchTimeout time.Duration
	CacheTTL      time.Duration

	// Rate limiting (requests per window per client IP)
	RateLimit       int
	RateLimitWindow time.Duration

	// Payments
	StripeSecretKey string
}

// HotelbedsCredentials is one Hotelbeds service's API key pair.
type HotelbedsCredentials struct {
	APIKey string
	Secret string
}

// Load reads an optional .env file and then the environment, applying
// defaults for anything unset.
func Load() *Config {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	return &Config{
		Addr:             getEnv("ADDR", ":8080"),
		AmadeusBaseURL:   getEnv("AMADEUS_BASE_URL", "http://localhost:9001"),
		HotelbedsBaseURL: getEnv("HOTELBEDS_BASE_URL", "http://localhost:9002"),
		ProviderTimeout:  getDuration("PROVIDER_TIMEOUT", 2*time.Second),
		AmadeusHotelIDs:  getList("AMADEUS_HOTEL_IDS", []string{"ACPAR419", "MCLONGHM", "PARPET01"}),
		HotelbedsHotels: HotelbedsCredentials{
			// The unsuffixed names are accepted as a fallback for the
			// hotels service.
			APIKey: getEnv("HOTELBEDS_HOTELS_API_KEY", getEnv("HOTELBEDS_API_KEY", "")),
			Secret: getEnv("HOTELBEDS_HOTELS_SECRET", getEnv("HOTELBEDS_SECRET", "")),
		},
		HotelbedsActivities: HotelbedsCredentials{
			APIKey: getEnv("HOTELBEDS_ACTIVITIES_API_KEY", ""),
			Secret: getEnv("HOTELBEDS_ACTIVITIES_SECRET", ""),
		},
		HotelbedsTransfers: HotelbedsCredentials{
			APIKey: getEnv("HOTELBEDS_TRANSFERS_API_KEY", ""),
			Secret: getEnv("HOTELBEDS_TRANSFERS_SECRET", ""),
		},
		SearchTimeout:    getDuration("SEARCH_TIMEOUT", 3*time.Second),
		CacheTTL:         getDuration("CACHE_TTL", 30*time.Second),
		RateLimit:        getInt("RATE_LIMIT", 10),
		RateLimitWindow:  getDuration("RATE_LIMIT_WINDOW", time.Minute),
		StripeSecretKey:  getEnv("STRIPE_SECRET_KEY", ""),
	}
}

// getEnv gets an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
