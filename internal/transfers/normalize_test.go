package transfers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maku-travel/inventory/internal/providers"
)

func TestNormalizeFullRecord(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	rec := providers.TransferRecord{
		ID:                 "T-2201",
		Type:               "PRIVATE",
		Category:           "Standard",
		VehicleName:        "Sedan",
		VehicleMinPax:      1,
		VehicleMaxPax:      3,
		VehicleDescription: "Air-conditioned sedan",
		VehicleImages:      []string{"https://example.com/sedan.jpg"},
		FromType:           "IATA",
		FromDescription:    "Madrid Airport",
		ToType:             "ATLAS",
		ToDescription:      "Gran Via Hotel",
		PickupAddress:      "Arrivals hall, exit B",
		TotalAmount:        42.5,
		NetAmount:          38,
		Currency:           "EUR",
		PickupTime:         "14:30",
		WaitTime:           45,
		MustCheckPickup:    true,
		HoursBeforeConsult: 24,
		Remarks: []providers.TransferRemark{
			{Type: "info", Description: "Driver holds a name board"},
		},
	}

	tr := Normalize(rec, now)

	assert.Equal(t, "T-2201", tr.ID)
	assert.Equal(t, "Madrid Airport to Gran Via Hotel", tr.Name)
	assert.Equal(t, "PRIVATE", tr.Type)
	assert.Equal(t, Vehicle{
		Type:        "Sedan",
		Capacity:    Capacity{Min: 1, Max: 3},
		Description: "Air-conditioned sedan",
		Images:      []string{"https://example.com/sedan.jpg"},
	}, tr.Vehicle)
	assert.Equal(t, Endpoint{Type: "IATA", Description: "Madrid Airport", Location: "Arrivals hall, exit B"}, tr.Route.From)
	assert.Equal(t, Endpoint{Type: "ATLAS", Description: "Gran Via Hotel", Location: "Gran Via Hotel"}, tr.Route.To)
	assert.Equal(t, Pricing{Total: 42.5, Net: 38, Currency: "EUR", PerVehicle: true}, tr.Pricing)
	assert.Equal(t, Schedule{PickupTime: "14:30", WaitTime: 45, CheckPickupRequired: true, HoursBeforeConsult: 24}, tr.Schedule)
	require.Len(t, tr.Remarks, 1)
	assert.Equal(t, now, tr.LastUpdated)
}

func TestNormalizeSparseRecordDefaults(t *testing.T) {
	tr := Normalize(providers.TransferRecord{ID: "T-1"}, time.Now().UTC())

	assert.Equal(t, "Location to Destination", tr.Name)
	assert.Equal(t, "Transfer", tr.Type)
	assert.Equal(t, "Standard", tr.Category)
	assert.Equal(t, "Standard Vehicle", tr.Vehicle.Type)
	assert.Equal(t, Capacity{Min: 1, Max: 4}, tr.Vehicle.Capacity)
	assert.NotEmpty(t, tr.Vehicle.Images)
	assert.Equal(t, "Address provided", tr.Route.From.Location)
	assert.Equal(t, Pricing{Total: 50, Net: 45, Currency: "EUR", PerVehicle: true}, tr.Pricing)
	assert.Equal(t, "Flexible", tr.Schedule.PickupTime)
	assert.Equal(t, 30, tr.Schedule.WaitTime)
	assert.Equal(t, 2, tr.Schedule.HoursBeforeConsult)
	assert.InDelta(t, 4.5, tr.Rating, 1e-9)
	assert.NotNil(t, tr.Remarks)
	assert.Empty(t, tr.Remarks)
}

// The availability schema has no pet signal, so live records always come
// out with pets disallowed, a zeroed fee, and a carrier requirement.
func TestNormalizePetPolicyInvariant(t *testing.T) {
	tr := Normalize(providers.TransferRecord{ID: "ANY"}, time.Now().UTC())
	require.False(t, tr.PetPolicy.Allowed)
	assert.Zero(t, tr.PetPolicy.Fee)
	assert.Zero(t, tr.PetPolicy.MaxPets)
	assert.True(t, tr.PetPolicy.Carrier.Required)
	assert.NotEmpty(t, tr.PetPolicy.Restrictions)
}

func TestFallbackTransfersInvariants(t *testing.T) {
	now := time.Now().UTC()
	list := FallbackTransfers(now)
	require.Len(t, list, 3)

	seen := make(map[string]bool, len(list))
	for _, tr := range list {
		assert.False(t, seen[tr.ID], "duplicate id %s", tr.ID)
		seen[tr.ID] = true
		assert.True(t, tr.PetPolicy.Allowed, "%s must be pet friendly", tr.ID)
		assert.Positive(t, tr.Pricing.Total)
		assert.GreaterOrEqual(t, tr.Pricing.Total, tr.Pricing.Net)
		assert.GreaterOrEqual(t, tr.Vehicle.Capacity.Max, tr.Vehicle.Capacity.Min)
		assert.Equal(t, now, tr.LastUpdated)
	}
}
