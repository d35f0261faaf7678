// Package transfers serves pet-aware ground transfer search backed by the
// Hotelbeds transfer availability API, with a hand-authored fallback set
// when the upstream yields nothing.
package transfers

import (
	"time"

	"github.com/maku-travel/inventory/internal/providers"
)

// Result sources reported in response metadata.
const (
	SourceAPI      = "hotelbeds_transfers_api"
	SourceFallback = "fallback"
)

// Query carries the parsed transfer search parameters.
type Query struct {
	From         string `json:"from"`
	To           string `json:"to"`
	TransferType string `json:"type"`
	Pax          int    `json:"pax"`
	PetFriendly  bool   `json:"petFriendly"`
}

// Capacity bounds the passenger count per vehicle.
type Capacity struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Vehicle describes the transfer vehicle.
type Vehicle struct {
	Type        string   `json:"type"`
	Capacity    Capacity `json:"capacity"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Endpoint is one leg terminus of a transfer route.
type Endpoint struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Route is the transfer's path and rough travel estimate.
type Route struct {
	From     Endpoint `json:"from"`
	To       Endpoint `json:"to"`
	Duration string   `json:"duration"`
	Distance string   `json:"distance"`
}

// Pricing is the per-vehicle or per-seat price.
type Pricing struct {
	Total      float64 `json:"total"`
	Net        float64 `json:"net"`
	Currency   string  `json:"currency"`
	PerVehicle bool    `json:"perVehicle"`
}

// Carrier describes pet carrier requirements for the ride.
type Carrier struct {
	Required bool   `json:"required"`
	Provided bool   `json:"provided"`
	MaxSize  string `json:"maxSize"`
}

// PetPolicy describes whether and how pets ride along. Invariant:
// Allowed=false implies Fee=0 and MaxPets=0.
type PetPolicy struct {
	Allowed      bool     `json:"allowed"`
	Fee          float64  `json:"fee"`
	Restrictions []string `json:"restrictions"`
	MaxPets      int      `json:"maxPets"`
	Carrier      Carrier  `json:"carrier"`
}

// Schedule describes pickup logistics.
type Schedule struct {
	PickupTime          string `json:"pickupTime"`
	WaitTime            int    `json:"waitTime"`
	CheckPickupRequired bool   `json:"checkPickupRequired"`
	HoursBeforeConsult  int    `json:"hoursBeforeConsult"`
}

// Transfer is the unified transfer record produced by normalization.
type Transfer struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Type        string                     `json:"type"`
	Category    string                     `json:"category"`
	Vehicle     Vehicle                    `json:"vehicle"`
	Route       Route                      `json:"route"`
	Pricing     Pricing                    `json:"pricing"`
	PetPolicy   PetPolicy                  `json:"petPolicy"`
	Schedule    Schedule                   `json:"schedule"`
	Amenities   []string                   `json:"amenities"`
	Rating      float64                    `json:"rating"`
	Provider    string                     `json:"provider"`
	Remarks     []providers.TransferRemark `json:"remarks"`
	LastUpdated time.Time                  `json:"lastUpdated"`
}

// Result is a request-scoped transfer search result.
type Result struct {
	Transfers []Transfer `json:"transfers"`
	Source    string     `json:"source"`
}
