package transfers

import (
	"fmt"
	"time"

	"github.com/maku-travel/inventory/internal/providers"
)

const (
	defaultTotal  = 50
	defaultNet    = 45
	defaultRating = 4.5
)

var (
	defaultVehicleImages = []string{"https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=800&h=600&fit=crop"}

	defaultAmenities = []string{"Professional driver", "Climate control", "Luggage assistance"}

	petNotAllowedRestrictions = []string{"Pets not allowed"}
)

// Normalize maps one availability record into the unified shape. The
// availability schema carries no pet signal, so pet policy is always "not
// allowed" for live data; pet-friendly transfers come from the fallback set.
func Normalize(r providers.TransferRecord, now time.Time) Transfer {
	fromDesc := r.FromDescription
	if fromDesc == "" {
		fromDesc = "Location"
	}
	toDesc := r.ToDescription
	if toDesc == "" {
		toDesc = "Destination"
	}

	transferType := r.Type
	if transferType == "" {
		transferType = "Transfer"
	}
	category := r.Category
	if category == "" {
		category = "Standard"
	}

	vehicleType := r.VehicleName
	if vehicleType == "" {
		vehicleType = "Standard Vehicle"
	}
	vehicleDesc := r.VehicleDescription
	if vehicleDesc == "" {
		vehicleDesc = "Comfortable vehicle with professional driver"
	}
	minPax := r.VehicleMinPax
	if minPax <= 0 {
		minPax = 1
	}
	maxPax := r.VehicleMaxPax
	if maxPax < minPax {
		maxPax = 4
	}

	total := r.TotalAmount
	if total <= 0 {
		total = defaultTotal
	}
	net := r.NetAmount
	if net <= 0 {
		net = defaultNet
	}
	currency := r.Currency
	if currency == "" {
		currency = "EUR"
	}

	pickupTime := r.PickupTime
	if pickupTime == "" {
		pickupTime = "Flexible"
	}
	waitTime := r.WaitTime
	if waitTime <= 0 {
		waitTime = 30
	}
	hoursBeforeConsult := r.HoursBeforeConsult
	if hoursBeforeConsult <= 0 {
		hoursBeforeConsult = 2
	}

	fromType := r.FromType
	if fromType == "" {
		fromType = "Location"
	}
	toType := r.ToType
	if toType == "" {
		toType = "Location"
	}
	pickupAddress := r.PickupAddress
	if pickupAddress == "" {
		pickupAddress = "Address provided"
	}

	remarks := r.Remarks
	if remarks == nil {
		remarks = []providers.TransferRemark{}
	}

	return Transfer{
		ID:       r.ID,
		Name:     fmt.Sprintf("%s to %s", fromDesc, toDesc),
		Type:     transferType,
		Category: category,
		Vehicle: Vehicle{
			Type:        vehicleType,
			Capacity:    Capacity{Min: minPax, Max: maxPax},
			Description: vehicleDesc,
			Images:      defaultList(r.VehicleImages, defaultVehicleImages),
		},
		Route: Route{
			From:     Endpoint{Type: fromType, Description: fromDesc, Location: pickupAddress},
			To:       Endpoint{Type: toType, Description: toDesc, Location: toDesc},
			Duration: "30-60 minutes",
			Distance: "Varies by route",
		},
		Pricing: Pricing{Total: total, Net: net, Currency: currency, PerVehicle: true},
		PetPolicy: PetPolicy{
			Allowed:      false,
			Fee:          0,
			Restrictions: petNotAllowedRestrictions,
			MaxPets:      0,
			Carrier:      Carrier{Required: true, Provided: false, MaxSize: "Medium (up to 15kg)"},
		},
		Schedule: Schedule{
			PickupTime:          pickupTime,
			WaitTime:            waitTime,
			CheckPickupRequired: r.MustCheckPickup,
			HoursBeforeConsult:  hoursBeforeConsult,
		},
		Amenities:   defaultAmenities,
		Rating:      defaultRating,
		Provider:    "Hotel Beds Transfer Network",
		Remarks:     remarks,
		LastUpdated: now,
	}
}

func defaultList(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
