package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.AmadeusBaseURL != "http://localhost:9001" {
		t.Errorf("AmadeusBaseURL = %q, want http://localhost:9001", cfg.AmadeusBaseURL)
	}
	if cfg.HotelbedsBaseURL != "http://localhost:9002" {
		t.Errorf("HotelbedsBaseURL = %q, want http://localhost:9002", cfg.HotelbedsBaseURL)
	}
	if cfg.ProviderTimeout != 2*time.Second {
		t.Errorf("ProviderTimeout = %v, want 2s", cfg.ProviderTimeout)
	}
	if cfg.SearchTimeout != 3*time.Second {
		t.Errorf("SearchTimeout = %v, want 3s", cfg.SearchTimeout)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want 30s", cfg.CacheTTL)
	}
	if cfg.RateLimit != 10 {
		t.Errorf("RateLimit = %d, want 10", cfg.RateLimit)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v, want 1m", cfg.RateLimitWindow)
	}
	if len(cfg.AmadeusHotelIDs) != 3 {
		t.Errorf("AmadeusHotelIDs = %v, want 3 defaults", cfg.AmadeusHotelIDs)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("PROVIDER_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT", "25")
	t.Setenv("AMADEUS_HOTEL_IDS", "ACPAR419, MCLONGHM")
	t.Setenv("HOTELBEDS_HOTELS_API_KEY", "hotels-key")
	t.Setenv("HOTELBEDS_ACTIVITIES_API_KEY", "activities-key")
	t.Setenv("HOTELBEDS_TRANSFERS_SECRET", "transfers-secret")

	cfg := Load()

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.ProviderTimeout != 5*time.Second {
		t.Errorf("ProviderTimeout = %v, want 5s", cfg.ProviderTimeout)
	}
	if cfg.RateLimit != 25 {
		t.Errorf("RateLimit = %d, want 25", cfg.RateLimit)
	}
	if len(cfg.AmadeusHotelIDs) != 2 || cfg.AmadeusHotelIDs[1] != "MCLONGHM" {
		t.Errorf("AmadeusHotelIDs = %v, want trimmed two-element list", cfg.AmadeusHotelIDs)
	}
	if cfg.HotelbedsHotels.APIKey != "hotels-key" {
		t.Errorf("HotelbedsHotels.APIKey = %q, want hotels-key", cfg.HotelbedsHotels.APIKey)
	}
	if cfg.HotelbedsActivities.APIKey != "activities-key" {
		t.Errorf("HotelbedsActivities.APIKey = %q, want activities-key", cfg.HotelbedsActivities.APIKey)
	}
	if cfg.HotelbedsTransfers.Secret != "transfers-secret" {
		t.Errorf("HotelbedsTransfers.Secret = %q, want transfers-secret", cfg.HotelbedsTransfers.Secret)
	}
}

func TestLoad_UnsuffixedHotelsCredentialFallback(t *testing.T) {
	t.Setenv("HOTELBEDS_API_KEY", "legacy-key")
	t.Setenv("HOTELBEDS_SECRET", "legacy-secret")

	cfg := Load()

	if cfg.HotelbedsHotels.APIKey != "legacy-key" {
		t.Errorf("HotelbedsHotels.APIKey = %q, want legacy-key", cfg.HotelbedsHotels.APIKey)
	}
	if cfg.HotelbedsHotels.Secret != "legacy-secret" {
		t.Errorf("HotelbedsHotels.Secret = %q, want legacy-secret", cfg.HotelbedsHotels.Secret)
	}
	if cfg.HotelbedsActivities.APIKey != "" {
		t.Errorf("HotelbedsActivities.APIKey = %q, unsuffixed names apply to hotels only", cfg.HotelbedsActivities.APIKey)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT", "many")
	t.Setenv("AMADEUS_HOTEL_IDS", " , ,")

	cfg := Load()

	if cfg.ProviderTimeout != 2*time.Second {
		t.Errorf("ProviderTimeout = %v, want default 2s", cfg.ProviderTimeout)
	}
	if cfg.RateLimit != 10 {
		t.Errorf("RateLimit = %d, want default 10", cfg.RateLimit)
	}
	if len(cfg.AmadeusHotelIDs) != 3 {
		t.Errorf("AmadeusHotelIDs = %v, want defaults for a blank list", cfg.AmadeusHotelIDs)
	}
}
