// Package activities serves pet-aware activity search backed by the
// Hotelbeds activity content API, with a hand-authored fallback set when the
// upstream yields nothing.
package activities

import (
	"time"

	"github.com/maku-travel/inventory/internal/search/types"
)

// Result sources reported in response metadata.
const (
	SourceAPI      = "hotelbeds_activities_api"
	SourceFallback = "fallback"
)

// Query carries the parsed activity search parameters. DateFrom/DateTo are
// echoed in response metadata; the content API is not date-scoped.
type Query struct {
	Destination string `json:"destination"`
	Language    string `json:"language"`
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	PetFriendly bool   `json:"petFriendly"`
}

// Duration is a display-friendly activity length.
type Duration struct {
	Value   int    `json:"value"`
	Unit    string `json:"unit"`
	Display string `json:"display"`
}

// Pricing is the per-person starting price.
type Pricing struct {
	From      float64 `json:"from"`
	Currency  string  `json:"currency"`
	PerPerson bool    `json:"perPerson"`
}

// Capacity bounds the group size per reservation.
type Capacity struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AgeRestrictions is the adult age band accepted for booking.
type AgeRestrictions struct {
	MinAge int `json:"minAge"`
	MaxAge int `json:"maxAge"`
}

// Schedule describes when the activity operates.
type Schedule struct {
	OperatingDays []string `json:"operatingDays"`
	Frequency     string   `json:"frequency"`
}

// Activity is the unified activity record produced by normalization.
type Activity struct {
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Destination     string          `json:"destination"`
	Country         string          `json:"country"`
	Description     string          `json:"description"`
	Duration        Duration        `json:"duration"`
	Pricing         Pricing         `json:"pricing"`
	PetPolicy       types.PetPolicy `json:"petPolicy"`
	Capacity        Capacity        `json:"capacity"`
	AgeRestrictions AgeRestrictions `json:"ageRestrictions"`
	Schedule        Schedule        `json:"schedule"`
	Images          []string        `json:"images"`
	Rating          float64         `json:"rating"`
	Languages       []string        `json:"languages"`
	Highlights      []string        `json:"highlights"`
	LastUpdated     time.Time       `json:"lastUpdated"`
}

// Result is a request-scoped activity search result.
type Result struct {
	Activities []Activity `json:"activities"`
	Source     string     `json:"source"`
}
