package search

import (
	"fmt"
	"time"

	"github.com/maku-travel/inventory/internal/search/types"
)

// BuildAlerts derives scarcity alerts from an aggregated result. A hotel
// yields exactly one alert when its urgency is high or it has five or fewer
// rooms left; low_availability wins when both conditions hold.
func BuildAlerts(hotels []types.Hotel, now time.Time) []types.Alert {
	alerts := make([]types.Alert, 0)
	for _, h := range hotels {
		lowAvailability := h.Availability.RoomsLeft <= 5
		if !lowAvailability && h.Availability.UrgencyLevel != types.UrgencyHigh {
			continue
		}

		alertType := types.AlertPriceDrop
		message := fmt.Sprintf("Price dropped 15%% at %s", h.Name)
		if lowAvailability {
			alertType = types.AlertLowAvailability
			message = fmt.Sprintf("Only %d rooms left at %s!", h.Availability.RoomsLeft, h.Name)
		}

		alerts = append(alerts, types.Alert{
			ID:        "alert_" + h.ID,
			HotelID:   h.ID,
			Provider:  h.Provider,
			Type:      alertType,
			Message:   message,
			Timestamp: now,
			Urgency:   h.Availability.UrgencyLevel,
		})
	}
	return alerts
}
