package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maku-travel/inventory/internal/search/types"
)

func hotelWithAvailability(id string, roomsLeft int, urgency types.UrgencyLevel) types.Hotel {
	return types.Hotel{
		ID:           id,
		Provider:     types.ProviderAmadeus,
		Name:         "Hotel " + id,
		Availability: types.Availability{RoomsLeft: roomsLeft, UrgencyLevel: urgency},
	}
}

func TestBuildAlerts(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name        string
		hotel       types.Hotel
		wantType    types.AlertType
		wantMessage string
		none        bool
	}{
		{
			name:        "few rooms left",
			hotel:       hotelWithAvailability("amadeus_A1", 3, types.UrgencyMedium),
			wantType:    types.AlertLowAvailability,
			wantMessage: "Only 3 rooms left at Hotel amadeus_A1!",
		},
		{
			name:     "exactly five rooms",
			hotel:    hotelWithAvailability("amadeus_A2", 5, types.UrgencyLow),
			wantType: types.AlertLowAvailability,
		},
		{
			name:        "high urgency with plenty of rooms",
			hotel:       hotelWithAvailability("amadeus_A3", 20, types.UrgencyHigh),
			wantType:    types.AlertPriceDrop,
			wantMessage: "Price dropped 15% at Hotel amadeus_A3",
		},
		{
			// Both conditions hold; scarcity takes precedence.
			name:     "high urgency and few rooms",
			hotel:    hotelWithAvailability("amadeus_A4", 2, types.UrgencyHigh),
			wantType: types.AlertLowAvailability,
		},
		{
			name:  "calm availability",
			hotel: hotelWithAvailability("amadeus_A5", 10, types.UrgencyMedium),
			none:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := BuildAlerts([]types.Hotel{tt.hotel}, now)

			if tt.none {
				assert.Empty(t, alerts)
				return
			}
			require.Len(t, alerts, 1)
			a := alerts[0]
			assert.Equal(t, tt.wantType, a.Type)
			assert.Equal(t, "alert_"+tt.hotel.ID, a.ID)
			assert.Equal(t, tt.hotel.ID, a.HotelID)
			assert.Equal(t, tt.hotel.Availability.UrgencyLevel, a.Urgency)
			assert.Equal(t, now, a.Timestamp)
			assert.NotEmpty(t, a.Message)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, a.Message)
			}
		})
	}
}

func TestBuildAlerts_AtMostOnePerHotel(t *testing.T) {
	hotels := []types.Hotel{
		hotelWithAvailability("amadeus_A1", 2, types.UrgencyHigh),
		hotelWithAvailability("amadeus_A2", 10, types.UrgencyMedium),
		hotelWithAvailability("hotelbeds_B1", 4, types.UrgencyLow),
	}

	alerts := BuildAlerts(hotels, time.Now())
	assert.Len(t, alerts, 2)
}

func TestBuildAlerts_EmptyInputYieldsEmptySlice(t *testing.T) {
	alerts := BuildAlerts(nil, time.Now())
	require.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
