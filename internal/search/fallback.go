package search

import (
	"time"

	"github.com/maku-travel/inventory/internal/search/types"
)

// FallbackHotels returns the hand-authored record set substituted when both
// providers come back empty. The records satisfy every unified-record
// invariant, so downstream filtering, stats and alert derivation treat them
// exactly like live data; only the result's source tag tells them apart.
func FallbackHotels(now time.Time) []types.Hotel {
	return []types.Hotel{
		{
			ID:          "amadeus_MCLONGHM",
			Provider:    types.ProviderAmadeus,
			Name:        "Pet Paradise Hotel London (Amadeus)",
			Category:    "Premium",
			Destination: "London",
			Location: types.Location{
				Latitude:  51.5074,
				Longitude: -0.1278,
				Address:   "Central London",
			},
			Pricing: types.Pricing{From: 150, To: 180, Currency: "EUR", PerNight: true},
			PetPolicy: types.PetPolicy{
				Allowed:      true,
				Fee:          25,
				Restrictions: petAllowedRestrictions,
				MaxPets:      2,
			},
			Rating:       4.5,
			Amenities:    []string{"Pet Beds Available", "Dog Walking", "Veterinary Services Nearby"},
			Images:       defaultAmadeusImages,
			Availability: types.Availability{RoomsLeft: 8, UrgencyLevel: types.UrgencyMedium},
			LastUpdated:  now,
		},
		{
			ID:          "hotelbeds_HTB001",
			Provider:    types.ProviderHotelbeds,
			Name:        "Madrid Pet Resort (Hotelbeds)",
			Category:    "Premium",
			Destination: "Madrid",
			Location: types.Location{
				Latitude:  40.4168,
				Longitude: -3.7038,
				Address:   "Madrid City Center",
			},
			Pricing: types.Pricing{From: 120, To: 140, Currency: "EUR", PerNight: true},
			PetPolicy: types.PetPolicy{
				Allowed:      true,
				Fee:          15,
				Restrictions: petAllowedRestrictions,
				MaxPets:      2,
			},
			Rating:       4.3,
			Amenities:    []string{"Pet Spa Services", "Pet Sitting Service", "Dog Park Access"},
			Images:       defaultHotelbedsImages,
			Availability: types.Availability{RoomsLeft: 5, UrgencyLevel: types.UrgencyHigh},
			LastUpdated:  now,
		},
		{
			ID:          "hotelbeds_HTB002",
			Provider:    types.ProviderHotelbeds,
			Name:        "Barcelona Paws Hotel (Hotelbeds)",
			Category:    "Luxury",
			Destination: "Barcelona",
			Location: types.Location{
				Latitude:  41.3851,
				Longitude: 2.1734,
				Address:   "Barcelona Beach Area",
			},
			Pricing: types.Pricing{From: 200, To: 250, Currency: "EUR", PerNight: true},
			PetPolicy: types.PetPolicy{
				Allowed:      true,
				Fee:          30,
				Restrictions: petAllowedRestrictions,
				MaxPets:      2,
			},
			Rating:       4.7,
			Amenities:    []string{"Luxury Pet Amenities", "Pet Grooming", "Beach Access"},
			Images:       defaultHotelbedsImages,
			Availability: types.Availability{RoomsLeft: 12, UrgencyLevel: types.UrgencyLow},
			LastUpdated:  now,
		},
	}
}
