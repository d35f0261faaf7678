package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
)

// MockActivities serves a Hotelbeds-shaped activity content endpoint with
// the same credential checks as the availability mock.
type MockActivities struct {
	apiKey string
	logger *slog.Logger
}

// NewMockActivities creates a MockActivities expecting the given API key.
func NewMockActivities(apiKey string) *MockActivities {
	return &MockActivities{
		apiKey: apiKey,
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

// ServeHTTP handles activity content requests.
func (p *MockActivities) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Api-key") != p.apiKey {
		http.Error(w, "invalid api key", http.StatusForbidden)
		return
	}
	if sig := r.Header.Get("X-Signature"); len(sig) != 64 {
		http.Error(w, "missing or malformed signature", http.StatusForbidden)
		return
	}

	dest := r.URL.Query().Get("destinationCode")
	if dest == "" {
		dest = "BCN"
	}

	response := map[string]any{
		"activities": []map[string]any{
			{
				"code":        "MOCK-ACT-1",
				"name":        "Old Town Guided Walk",
				"type":        "TICKET",
				"category":    map[string]any{"name": "Cultural"},
				"destination": map[string]any{"name": dest},
				"country":     map[string]any{"name": "Spain"},
				"description": "Two-hour guided walk through the old town.",
				"modality":    map[string]any{"name": "Guided tour"},
				"duration":    map[string]any{"value": 2, "metric": "hours"},
				"amountsFrom": []map[string]any{
					{"paxType": "ADULT", "ageFrom": 12, "ageTo": 99, "amount": 28, "currencyId": "EUR"},
				},
				"minPaxForReservation": 1,
				"maxPaxForReservation": 12,
				"operatingDays":        []map[string]any{{"dayOfTheWeek": 1}, {"dayOfTheWeek": 4}},
				"languages":            []map[string]any{{"name": "English"}, {"name": "Spanish"}},
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		p.logger.Error("failed to encode response", "error", err)
	}
}

// MockTransfers serves a Hotelbeds-shaped transfer availability endpoint.
type MockTransfers struct {
	apiKey string
	logger *slog.Logger
}

// NewMockTransfers creates a MockTransfers expecting the given API key.
func NewMockTransfers(apiKey string) *MockTransfers {
	return &MockTransfers{
		apiKey: apiKey,
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

// ServeHTTP handles transfer availability requests.
func (p *MockTransfers) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Api-key") != p.apiKey {
		http.Error(w, "invalid api key", http.StatusForbidden)
		return
	}
	if sig := r.Header.Get("X-Signature"); len(sig) != 64 {
		http.Error(w, "missing or malformed signature", http.StatusForbidden)
		return
	}

	var req struct {
		TransferType string `json:"transferType"`
		From         struct {
			Code string `json:"code"`
		} `json:"from"`
		To struct {
			Code string `json:"code"`
		} `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	transferType := req.TransferType
	if transferType == "" {
		transferType = "PRIVATE"
	}

	response := map[string]any{
		"transfers": []map[string]any{
			{
				"id":           "MOCK-TRF-1",
				"transferType": transferType,
				"category":     map[string]any{"name": "Standard"},
				"vehicle": map[string]any{
					"name":           "Sedan",
					"minPaxCapacity": 1,
					"maxPaxCapacity": 3,
				},
				"pickupInformation": map[string]any{
					"from": map[string]any{"type": "IATA", "description": req.From.Code + " Airport"},
					"to":   map[string]any{"type": "ATLAS", "description": req.To.Code + " city center"},
					"pickup": map[string]any{
						"address":    "Arrivals hall",
						"pickupTime": "Flexible",
						"waitTime":   45,
						"checkPickup": map[string]any{
							"mustCheckPickupTime": true,
							"hoursBeforeConsult":  24,
						},
					},
				},
				"price": map[string]any{
					"totalAmount": 42.5,
					"netAmount":   38,
					"currencyId":  "EUR",
				},
				"content": map[string]any{
					"vehicle": map[string]any{
						"description": "Air-conditioned sedan",
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
