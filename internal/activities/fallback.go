package activities

import (
	"time"

	"github.com/maku-travel/inventory/internal/search/types"
)

// FallbackActivities returns the hand-authored record set substituted when
// the upstream fails or has no content for the destination. Unlike live
// content, every record here is pet friendly; the pet-friendly filter still
// applies to them.
func FallbackActivities(now time.Time) []Activity {
	return []Activity{
		{
			Code:        "ACT001",
			Name:        "Pet-Friendly Madrid City Walking Tour",
			Type:        "City Tour",
			Category:    "Cultural",
			Destination: "Madrid",
			Country:     "Spain",
			Description: "Explore Madrid's historic center with your furry friend! This guided walking tour includes pet-friendly stops at parks, plazas, and outdoor cafes.",
			Duration:    Duration{Value: 3, Unit: "hours", Display: "3 hours"},
			Pricing:     Pricing{From: 25, Currency: "EUR", PerPerson: true},
			PetPolicy: types.PetPolicy{
				Allowed:      true,
				Fee:          5,
				Restrictions: []string{"Must be leashed", "Up to date vaccinations required"},
				MaxPets:      2,
			},
			Capacity:        Capacity{Min: 2, Max: 15},
			AgeRestrictions: AgeRestrictions{MinAge: 8, MaxAge: 99},
			Schedule: Schedule{
				OperatingDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
				Frequency:     "Daily at 10:00 AM",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1539037116277-4db20889f2d4?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1523531294919-4bcd7c65e216?w=800&h=600&fit=crop",
			},
			Rating:    4.6,
			Languages: []string{"English", "Spanish"},
			Highlights: []string{
				"Pet-friendly route through historic center",
				"Stops at dog parks and water fountains",
				"Professional guide with pet experience",
				"Small group size for personalized attention",
			},
			LastUpdated: now,
		},
		{
			Code:        "ACT002",
			Name:        "Barcelona Beach Day with Pets",
			Type:        "Beach Activity",
			Category:    "Nature",
			Destination: "Barcelona",
			Country:     "Spain",
			Description: "Enjoy a perfect beach day with your pet at Barcelona's pet-friendly beaches. Includes beach equipment rental, pet grooming station access, and a beachside lunch at a pet-welcome restaurant.",
			Duration:    Duration{Value: 6, Unit: "hours", Display: "Full day (6 hours)"},
			Pricing:     Pricing{From: 40, Currency: "EUR", PerPerson: true},
			PetPolicy: types.PetPolicy{
				Allowed:      true,
				Fee:          10,
				Restrictions: []string{"Dogs only", "Must be socialized with other dogs"},
				MaxPets:      3,
			},
			Capacity:        Capacity{Min: 1, Max: 8},
			AgeRestrictions: AgeRestrictions{MinAge: 12, MaxAge: 99},
			Schedule: Schedule{
				OperatingDays: []string{"Saturday", "Sunday"},
				Frequency:     "Weekends at 9:00 AM",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=800&h=600&fit=crop",
			},
			Rating:    4.8,
			Languages: []string{"English", "Spanish", "Catalan"},
			Highlights: []string{
				"Access to designated pet beach area",
				"Beach equipment included",
				"Pet grooming and wash station",
				"Lunch at pet-friendly beachside restaurant",
			},
			LastUpdated: now,
		},
		{
			Code:        "ACT003",
			Name:        "Hiking Adventure in the Pyrenees with Dogs",
			Type:        "Outdoor Adventure",
			Category:    "Nature",
			Destination: "Pyrenees",
			Country:     "Spain",
			Description: "A guided hiking experience in the beautiful Pyrenees mountains, specifically designed for travelers with dogs. The trail is dog-friendly with water stops and rest areas.",
			Duration:    Duration{Value: 8, Unit: "hours", Display: "Full day adventure (8 hours)"},
			Pricing:     Pricing{From: 75, Currency: "EUR", PerPerson: true},
			PetPolicy: types.PetPolicy{
				Allowed:      true,
				Fee:          15,
				Restrictions: []string{"Medium to large dogs preferred", "Good fitness level required"},
				MaxPets:      2,
			},
			Capacity:        Capacity{Min: 4, Max: 12},
			AgeRestrictions: AgeRestrictions{MinAge: 16, MaxAge: 65},
			Schedule: Schedule{
				OperatingDays: []string{"Saturday"},
				Frequency:     "Weekly on Saturdays at 7:00 AM",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1551632811-561732d1e306?w=800&h=600&fit=crop",
			},
			Rating:    4.9,
			Languages: []string{"English", "Spanish", "French"},
			Highlights: []string{
				"Professional mountain guide",
				"Dog-friendly trail with water sources",
				"Lunch and treats included for pets",
				"Transportation from Barcelona included",
			},
			LastUpdated: now,
		},
	}
}
