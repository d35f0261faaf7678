package search

import (
	"fmt"
	"time"

	"github.com/maku-travel/inventory/internal/providers"
	"github.com/maku-travel/inventory/internal/search/types"
)

// Per-field defaults applied when a provider omits data. Amenity and image
// defaults exist so the UI never renders empty sections; they are a display
// policy, not a data-integrity guarantee.
const (
	defaultAmadeusPrice   = 100
	defaultHotelbedsPrice = 80
	defaultAmadeusRating  = 4.0
	defaultHotelbedsRating = 4.2
	defaultRoomsLeft      = 10
)

var (
	defaultAmadeusAmenities   = []string{"Free WiFi", "Restaurant"}
	defaultHotelbedsAmenities = []string{"Free WiFi", "Restaurant", "Pet Services"}

	defaultAmadeusImages   = []string{"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&h=600&fit=crop"}
	defaultHotelbedsImages = []string{"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&h=600&fit=crop"}

	petAllowedRestrictions    = []string{"Advance booking required", "Vaccinations required"}
	petNotAllowedRestrictions = []string{"Pets not allowed"}
)

// NormalizeAmadeus maps one Amadeus-native record into the unified shape.
// It is a pure function of the record and the timestamp: normalizing the
// same record twice yields identical output except for lastUpdated.
func NormalizeAmadeus(h providers.AmadeusHotel, now time.Time) types.Hotel {
	nativeID := h.HotelID
	if nativeID == "" {
		nativeID = "unknown"
	}
	name := h.Name
	if name == "" {
		name = "Unknown Hotel"
	}

	category := h.PriceRange
	if category == "" {
		category = "Standard"
	}
	destination := h.Address.CityName
	if destination == "" {
		destination = "Unknown"
	}
	address := h.Address.CityName
	if len(h.Address.Lines) > 0 && h.Address.Lines[0] != "" {
		address = h.Address.Lines[0]
	}

	from, to := priceBand(h.Price, h.OrigPrice, defaultAmadeusPrice)

	// Pet policy defaults to "not allowed, no fee" unless the upstream
	// explicitly marks the hotel pet friendly.
	allowed := h.PetFriendly != nil && *h.PetFriendly

	urgency := parseUrgency(h.Availability.UrgencyLevel)
	roomsLeft := h.Availability.RoomsAvailable
	if roomsLeft <= 0 {
		roomsLeft = defaultRoomsLeft
	}

	return types.Hotel{
		ID:          fmt.Sprintf("%s_%s", types.ProviderAmadeus, nativeID),
		Provider:    types.ProviderAmadeus,
		Name:        fmt.Sprintf("%s (Amadeus)", name),
		Category:    category,
		Destination: destination,
		Location: types.Location{
			Latitude:  h.GeoCode.Latitude,
			Longitude: h.GeoCode.Longitude,
			Address:   address,
		},
		Pricing: types.Pricing{
			From:     from,
			To:       to,
			Currency: defaultCurrency(h.Currency),
			PerNight: true,
		},
		PetPolicy:    petPolicy(allowed, h.PetFee),
		Rating:       clampRating(h.Rating, defaultAmadeusRating),
		Amenities:    defaultList(h.Amenities, defaultAmadeusAmenities),
		Images:       defaultList(h.Images, defaultAmadeusImages),
		Availability: types.Availability{RoomsLeft: roomsLeft, UrgencyLevel: urgency},
		LastUpdated:  now,
	}
}

// NormalizeHotelbeds maps one Hotelbeds-native record into the unified
// shape. The availability schema carries no pet signal, so pet policy is
// always "not allowed" for live Hotelbeds data.
func NormalizeHotelbeds(h providers.HotelbedsHotel, now time.Time) types.Hotel {
	nativeID := h.Code
	if nativeID == "" {
		nativeID = "unknown"
	}
	name := h.Name
	if name == "" {
		name = "Unknown Hotel"
	}

	category := h.Category
	if category == "" {
		category = "Standard"
	}
	destination := h.Destination
	if destination == "" {
		destination = "Unknown"
	}

	from, to := priceBand(h.MinRate, h.MaxRate, defaultHotelbedsPrice)

	return types.Hotel{
		ID:          fmt.Sprintf("%s_%s", types.ProviderHotelbeds, nativeID),
		Provider:    types.ProviderHotelbeds,
		Name:        fmt.Sprintf("%s (Hotelbeds)", name),
		Category:    category,
		Destination: destination,
		Location: types.Location{
			Latitude:  h.Latitude,
			Longitude: h.Longitude,
			Address:   h.Zone,
		},
		Pricing: types.Pricing{
			From:     from,
			To:       to,
			Currency: defaultCurrency(h.Currency),
			PerNight: true,
		},
		PetPolicy:    petPolicy(false, 0),
		Rating:       clampRating(0, defaultHotelbedsRating),
		Amenities:    defaultList(nil, defaultHotelbedsAmenities),
		Images:       defaultList(nil, defaultHotelbedsImages),
		Availability: types.Availability{RoomsLeft: defaultRoomsLeft, UrgencyLevel: types.UrgencyMedium},
		LastUpdated:  now,
	}
}

// priceBand returns a valid from/to pair. When only one bound is present the
// other is derived; from <= to always holds.
func priceBand(from, to, defaultFrom float64) (float64, float64) {
	if from <= 0 {
		from = defaultFrom
	}
	if to <= 0 {
		to = from * 1.2
	}
	if to < from {
		to = from
	}
	return from, to
}

// petPolicy enforces the invariant that a hotel which does not allow pets
// carries no fee and no pet allowance.
func petPolicy(allowed bool, fee float64) types.PetPolicy {
	if !allowed {
		return types.PetPolicy{
			Allowed:      false,
			Fee:          0,
			Restrictions: petNotAllowedRestrictions,
			MaxPets:      0,
		}
	}
	if fee < 0 {
		fee = 0
	}
	return types.PetPolicy{
		Allowed:      true,
		Fee:          fee,
		Restrictions: petAllowedRestrictions,
		MaxPets:      2,
	}
}

func clampRating(r, fallback float64) float64 {
	if r <= 0 {
		r = fallback
	}
	if r > 5 {
		r = 5
	}
	return r
}

func defaultCurrency(c string) string {
	if c == "" {
		return "EUR"
	}
	return c
}

func defaultList(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}

func parseUrgency(s string) types.UrgencyLevel {
	switch types.UrgencyLevel(s) {
	case types.UrgencyHigh, types.UrgencyMedium, types.UrgencyLow:
		return types.UrgencyLevel(s)
	default:
		return types.UrgencyMedium
	}
}
