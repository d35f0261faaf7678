package activities

import (
	"fmt"
	"time"

	"github.com/maku-travel/inventory/internal/providers"
	"github.com/maku-travel/inventory/internal/search/types"
)

const (
	defaultPrice    = 30
	defaultRating   = 4.5
	defaultDuration = 2
	defaultMaxPax   = 20
	defaultMinAge   = 18
	defaultMaxAge   = 99
)

var (
	dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	defaultImages    = []string{"https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800&h=600&fit=crop"}
	defaultLanguages = []string{"English", "Spanish"}

	petNotAllowedRestrictions = []string{"Pets not allowed"}
)

// Normalize maps one activity content record into the unified shape. The
// content schema carries no pet signal, so pet policy is always "not
// allowed" for live data; the fallback set is where pet-friendly activities
// come from until the upstream exposes one.
func Normalize(r providers.ActivityRecord, now time.Time) Activity {
	name := r.Name
	if name == "" {
		name = "Unknown Activity"
	}
	activityType := r.Type
	if activityType == "" {
		activityType = "Tour"
	}
	category := r.Category
	if category == "" {
		category = "Cultural"
	}
	destination := r.Destination
	if destination == "" {
		destination = "Unknown"
	}
	country := r.Country
	if country == "" {
		country = "Spain"
	}
	description := r.Description
	if description == "" {
		description = fmt.Sprintf("Experience %s in %s.", name, destination)
	}

	durationValue := int(r.DurationValue)
	if durationValue <= 0 {
		durationValue = defaultDuration
	}
	durationUnit := r.DurationUnit
	if durationUnit == "" {
		durationUnit = "hours"
	}

	from := r.AmountFrom
	if from <= 0 {
		from = defaultPrice
	}
	currency := r.Currency
	if currency == "" {
		currency = "EUR"
	}

	minPax := r.MinPax
	if minPax <= 0 {
		minPax = 1
	}
	maxPax := r.MaxPax
	if maxPax < minPax {
		maxPax = defaultMaxPax
	}

	minAge := r.AdultAgeFrom
	if minAge <= 0 {
		minAge = defaultMinAge
	}
	maxAge := r.AdultAgeTo
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}

	operatingDays := make([]string, 0, len(r.OperatingDays))
	for _, d := range r.OperatingDays {
		if d >= 0 && d < len(dayNames) {
			operatingDays = append(operatingDays, dayNames[d])
		}
	}
	if len(operatingDays) == 0 {
		operatingDays = []string{"Daily"}
	}

	modality := r.Modality
	if modality == "" {
		modality = "Guided"
	}

	return Activity{
		Code:        r.Code,
		Name:        name,
		Type:        activityType,
		Category:    category,
		Destination: destination,
		Country:     country,
		Description: description,
		Duration: Duration{
			Value:   durationValue,
			Unit:    durationUnit,
			Display: fmt.Sprintf("%d %s", durationValue, durationUnit),
		},
		Pricing: Pricing{From: from, Currency: currency, PerPerson: true},
		PetPolicy: types.PetPolicy{
			Allowed:      false,
			Fee:          0,
			Restrictions: petNotAllowedRestrictions,
			MaxPets:      0,
		},
		Capacity:        Capacity{Min: minPax, Max: maxPax},
		AgeRestrictions: AgeRestrictions{MinAge: minAge, MaxAge: maxAge},
		Schedule: Schedule{
			OperatingDays: operatingDays,
			Frequency:     "Multiple times daily",
		},
		Images:    defaultList(r.Images, defaultImages),
		Rating:    defaultRating,
		Languages: defaultList(r.Languages, defaultLanguages),
		Highlights: []string{
			fmt.Sprintf("%s experience", modality),
			fmt.Sprintf("Duration: %d %s", durationValue, durationUnit),
			"Professional guide included",
		},
		LastUpdated: now,
	}
}

func defaultList(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
