package transfers

import (
	"time"

	"github.com/maku-travel/inventory/internal/providers"
)

// FallbackTransfers returns the hand-authored record set substituted when
// the upstream fails or has no availability for the route. Every record
// here is pet friendly; the pet-friendly filter still applies to them.
func FallbackTransfers(now time.Time) []Transfer {
	return []Transfer{
		{
			ID:       "TRF001",
			Name:     "Madrid Airport to Hotel - Pet-Friendly Transfer",
			Type:     "Private Transfer",
			Category: "Premium",
			Vehicle: Vehicle{
				Type:        "Mercedes E-Class or similar",
				Capacity:    Capacity{Min: 1, Max: 3},
				Description: "Comfortable sedan with pet-friendly amenities including seat covers and water bowls",
				Images:      []string{"https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=800&h=600&fit=crop"},
			},
			Route: Route{
				From:     Endpoint{Type: "Airport", Description: "Madrid-Barajas Airport (MAD)", Location: "Terminal 1, 2, 3, or 4"},
				To:       Endpoint{Type: "Hotel", Description: "Madrid City Center Hotels", Location: "Any hotel within city limits"},
				Duration: "30-45 minutes",
				Distance: "25-35 km",
			},
			Pricing: Pricing{Total: 65, Net: 60, Currency: "EUR", PerVehicle: true},
			PetPolicy: PetPolicy{
				Allowed: true,
				Fee:     10,
				Restrictions: []string{
					"Pets must be in carrier or on leash",
					"Maximum 2 pets per vehicle",
					"Service animals travel free",
				},
				MaxPets: 2,
				Carrier: Carrier{Required: false, Provided: false, MaxSize: "Medium (up to 10kg)"},
			},
			Schedule: Schedule{PickupTime: "On demand 24/7", WaitTime: 60, CheckPickupRequired: false, HoursBeforeConsult: 2},
			Amenities: []string{
				"Pet seat covers",
				"Water bowls available",
				"Professional driver",
				"Flight monitoring",
				"Free waiting time",
				"Child seats available",
			},
			Rating:   4.7,
			Provider: "MAKU Travel Partners",
			Remarks: []providers.TransferRemark{
				{Type: "important", Description: "Please inform about pets when booking", Mandatory: true},
				{Type: "info", Description: "Driver will wait up to 60 minutes after scheduled pickup time", Mandatory: false},
			},
			LastUpdated: now,
		},
		{
			ID:       "TRF002",
			Name:     "Barcelona Airport Pet-Safe Shared Transfer",
			Type:     "Shared Transfer",
			Category: "Economy",
			Vehicle: Vehicle{
				Type:        "Mercedes Sprinter or similar",
				Capacity:    Capacity{Min: 1, Max: 8},
				Description: "Large van with dedicated pet area and climate control",
				Images:      []string{"https://images.unsplash.com/photo-1544620347-c4fd4a3d5957?w=800&h=600&fit=crop"},
			},
			Route: Route{
				From:     Endpoint{Type: "Airport", Description: "Barcelona El Prat Airport (BCN)", Location: "Terminal 1 or 2"},
				To:       Endpoint{Type: "Hotel", Description: "Barcelona Hotels - Gothic Quarter & Eixample", Location: "Central Barcelona hotels"},
				Duration: "45-90 minutes",
				Distance: "15-25 km",
			},
			Pricing: Pricing{Total: 25, Net: 22, Currency: "EUR", PerVehicle: false},
			PetPolicy: PetPolicy{
				Allowed: true,
				Fee:     5,
				Restrictions: []string{
					"Small to medium pets only",
					"Must be well-behaved around other passengers",
					"Carrier recommended for cats",
				},
				MaxPets: 1,
				Carrier: Carrier{Required: true, Provided: false, MaxSize: "Small to Medium (up to 8kg)"},
			},
			Schedule: Schedule{PickupTime: "Every 30 minutes", WaitTime: 30, CheckPickupRequired: true, HoursBeforeConsult: 24},
			Amenities: []string{
				"Dedicated pet area",
				"Climate control",
				"WiFi available",
				"Multiple pickup points",
				"Luggage assistance",
			},
			Rating:   4.3,
			Provider: "Barcelona Transfer Service",
			Remarks: []providers.TransferRemark{
				{Type: "mandatory", Description: "Advance booking required for pets", Mandatory: true},
				{Type: "info", Description: "Shared with other passengers - pets must be sociable", Mandatory: false},
			},
			LastUpdated: now,
		},
		{
			ID:       "TRF003",
			Name:     "Luxury Pet Transfer - Seville to Costa del Sol",
			Type:     "Private Transfer",
			Category: "Luxury",
			Vehicle: Vehicle{
				Type:        "BMW X5 or Mercedes GLE",
				Capacity:    Capacity{Min: 1, Max: 4},
				Description: "Premium SUV with pet luxury amenities and professional pet handler driver",
				Images:      []string{"https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&h=600&fit=crop"},
			},
			Route: Route{
				From:     Endpoint{Type: "City", Description: "Seville City Hotels", Location: "Any Seville location"},
				To:       Endpoint{Type: "Resort", Description: "Costa del Sol Resort Hotels", Location: "Marbella, Torremolinos, Fuengirola"},
				Duration: "2.5-3 hours",
				Distance: "200-250 km",
			},
			Pricing: Pricing{Total: 280, Net: 260, Currency: "EUR", PerVehicle: true},
			PetPolicy: PetPolicy{
				Allowed: true,
				Fee:     0,
				Restrictions: []string{
					"All pet sizes welcome",
					"Professional pet care included",
					"Rest stops provided",
				},
				MaxPets: 4,
				Carrier: Carrier{Required: false, Provided: true, MaxSize: "Any size"},
			},
			Schedule: Schedule{PickupTime: "Flexible scheduling", WaitTime: 15, CheckPickupRequired: false, HoursBeforeConsult: 4},
			Amenities: []string{
				"Pet handler driver",
				"Luxury pet amenities",
				"Rest stops included",
				"Pet first aid kit",
				"Climate control",
				"Refreshments for pets",
				"Premium vehicle",
			},
			Rating:   4.9,
			Provider: "Luxury Pet Transport Spain",
			Remarks: []providers.TransferRemark{
				{Type: "luxury", Description: "Professional pet care specialist driver included", Mandatory: true},
				{Type: "info", Description: "Complimentary pet amenities and treats provided", Mandatory: false},
			},
			LastUpdated: now,
		},
	}
}
