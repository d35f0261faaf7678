package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
)

// MockHotelbeds serves a Hotelbeds-shaped availability endpoint. It checks
// that requests carry the expected Api-key and a plausible X-Signature;
// the signature itself is not time-verified since the mock does not know
// when the client stamped it.
type MockHotelbeds struct {
	apiKey string
	logger *slog.Logger
}

// NewMockHotelbeds creates a MockHotelbeds expecting the given API key.
func NewMockHotelbeds(apiKey string) *MockHotelbeds {
	return &MockHotelbeds{
		apiKey: apiKey,
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

// ServeHTTP handles availability requests.
func (p *MockHotelbeds) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Api-key") != p.apiKey {
		http.Error(w, "invalid api key", http.StatusForbidden)
		return
	}
	if sig := r.Header.Get("X-Signature"); len(sig) != 64 {
		http.Error(w, "missing or malformed signature", http.StatusForbidden)
		return
	}

	var req struct {
		Stay struct {
			CheckIn  string `json:"checkIn"`
			CheckOut string `json:"checkOut"`
		} `json:"stay"`
		Destination struct {
			Code string `json:"code"`
		} `json:"destination"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	dest := req.Destination.Code
	if dest == "" {
		dest = "MAD"
	}

	// Latitude, longitude and rates are strings here on purpose; the live
	// API serializes them that way.
	response := map[string]any{
		"hotels": map[string]any{
			"checkIn":  req.Stay.CheckIn,
			"checkOut": req.Stay.CheckOut,
			"currency": "EUR",
			"total":    2,
			"hotels": []map[string]any{
				{
					"code":            "HTB001",
					"name":            "Madrid Pet Resort",
					"categoryName":    "4 STARS",
					"destinationCode": dest,
					"zoneName":        "City Center",
					"latitude":        "40.4168",
					"longitude":       "-3.7038",
					"minRate":         "120.50",
					"maxRate":         "185.00",
					"rooms": []map[string]any{
						{"name": "DOUBLE STANDARD"},
						{"name": "PET FRIENDLY SUITE"},
					},
				},
				{
					"code":            "HTB002",
					"name":            "Barcelona Paws Hotel",
					"categoryName":    "5 STARS",
					"destinationCode": dest,
					"zoneName":        "Gothic Quarter",
					"latitude":        "41.3851",
					"longitude":       "2.1734",
					"minRate":         "200.00",
					"maxRate":         "320.00",
					"rooms": []map[string]any{
						{"name": "LUXURY PET SUITE"},
					},
				},
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		p.logger.Error("failed to encode response", "error", err)
	}
}
