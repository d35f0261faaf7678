package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maku-travel/inventory/internal/auth"
)

const transfersPayload = `{
	"transfers": [
		{
			"id": "T-2201",
			"transferType": "PRIVATE",
			"category": {"name": "Standard"},
			"vehicle": {"name": "Sedan", "minPaxCapacity": 1, "maxPaxCapacity": 3},
			"pickupInformation": {
				"from": {"type": "IATA", "description": "Madrid Airport"},
				"to": {"type": "ATLAS", "description": "Gran Via Hotel"},
				"pickup": {
					"address": "Arrivals hall, exit B",
					"pickupTime": "Flexible",
					"waitTime": 45,
					"checkPickup": {"mustCheckPickupTime": true, "hoursBeforeConsult": 24}
				}
			},
			"price": {"totalAmount": 42.5, "netAmount": 38, "currencyId": "EUR"},
			"content": {
				"vehicle": {
					"description": "Air-conditioned sedan",
					"images": [{"imageUrl": "https://example.com/sedan.jpg"}]
				},
				"transferRemarks": [
					{"type": "info", "description": "Driver holds a name board", "mandatory": false}
				]
			}
		},
		{
			"id": "",
			"transferType": "SHARED"
		},
		{
			"id": "T-2202"
		}
	]
}`

func TestTransfersSearch(t *testing.T) {
	var (
		gotHeaders http.Header
		gotBody    []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transfer-api/1.0/availability", r.URL.Path)
		gotHeaders = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(transfersPayload))
	}))
	defer srv.Close()

	signer := auth.NewSigner("trf-key", "trf-secret")
	client := NewTransfersClient(srv.URL, signer, time.Second)

	records, err := client.Search(context.Background(), TransferQuery{
		From:         "MAD",
		To:           "madrid",
		TransferType: "PRIVATE",
		Pax:          2,
	})
	require.NoError(t, err)

	assert.Equal(t, "trf-key", gotHeaders.Get("Api-key"))
	assert.Len(t, gotHeaders.Get("X-Signature"), 64)

	var body struct {
		Language string `json:"language"`
		From     struct {
			Type string `json:"type"`
			Code string `json:"code"`
		} `json:"from"`
		To struct {
			Type string `json:"type"`
			Code string `json:"code"`
		} `json:"to"`
		Occupancy struct {
			Paxes int `json:"paxes"`
		} `json:"occupancy"`
		TransferType string `json:"transferType"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Equal(t, "ENG", body.Language)
	assert.Equal(t, "ATLAS", body.From.Type)
	assert.Equal(t, "MAD", body.From.Code)
	assert.Equal(t, "ATLAS", body.To.Type)
	assert.Equal(t, "madrid", body.To.Code)
	assert.Equal(t, 2, body.Occupancy.Paxes)
	assert.Equal(t, "PRIVATE", body.TransferType)

	// The id-less entry is skipped.
	require.Len(t, records, 2)

	full := records[0]
	assert.Equal(t, "T-2201", full.ID)
	assert.Equal(t, "PRIVATE", full.Type)
	assert.Equal(t, "Standard", full.Category)
	assert.Equal(t, "Sedan", full.VehicleName)
	assert.Equal(t, 1, full.VehicleMinPax)
	assert.Equal(t, 3, full.VehicleMaxPax)
	assert.Equal(t, "Air-conditioned sedan", full.VehicleDescription)
	assert.Equal(t, []string{"https://example.com/sedan.jpg"}, full.VehicleImages)
	assert.Equal(t, "Madrid Airport", full.FromDescription)
	assert.Equal(t, "Gran Via Hotel", full.ToDescription)
	assert.Equal(t, "Arrivals hall, exit B", full.PickupAddress)
	assert.InDelta(t, 42.5, full.TotalAmount, 1e-9)
	assert.InDelta(t, 38, full.NetAmount, 1e-9)
	assert.Equal(t, "EUR", full.Currency)
	assert.Equal(t, 45, full.WaitTime)
	assert.True(t, full.MustCheckPickup)
	assert.Equal(t, 24, full.HoursBeforeConsult)
	require.Len(t, full.Remarks, 1)
	assert.Equal(t, "Driver holds a name board", full.Remarks[0].Description)

	sparse := records[1]
	assert.Equal(t, "T-2202", sparse.ID)
	assert.Zero(t, sparse.TotalAmount)
	assert.Empty(t, sparse.Remarks)
}

func TestTransfersSearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewTransfersClient(srv.URL, auth.NewSigner("k", "s"), time.Second)
	_, err := client.Search(context.Background(), TransferQuery{From: "MAD", To: "madrid", TransferType: "PRIVATE", Pax: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestParseTransfersResponseMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"invalid json", `not json`},
		{"missing array", `{"ok": true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseTransfersResponse([]byte(tc.raw))
			require.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}
