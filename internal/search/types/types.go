package types

import "time"

// Provider tags. The tag is prefixed onto hotel IDs so records from
// different providers can never collide, even if native IDs overlap.
const (
	ProviderAmadeus   = "amadeus"
	ProviderHotelbeds = "hotelbeds"
)

// Result sources reported in response metadata so callers can tell live
// upstream data from synthesized data.
const (
	SourceMultiProvider = "multi_provider"
	SourceFallback      = "fallback"
)

// UrgencyLevel signals scarcity pressure on a hotel's remaining rooms.
type UrgencyLevel string

const (
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyLow    UrgencyLevel = "low"
)

// Hotel is the unified record produced by normalization, regardless of
// which provider the data came from.
type Hotel struct {
	ID           string       `json:"id"`
	Provider     string       `json:"provider"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Destination  string       `json:"destination"`
	Location     Location     `json:"location"`
	Pricing      Pricing      `json:"pricing"`
	PetPolicy    PetPolicy    `json:"petPolicy"`
	Rating       float64      `json:"rating"`
	Amenities    []string     `json:"amenities"`
	Images       []string     `json:"images"`
	Availability Availability `json:"availability"`
	LastUpdated  time.Time    `json:"lastUpdated"`
}

// Location holds coordinates and an optional display address. Coordinates
// default to 0,0 when the source omits them.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Pricing is a per-night price band. From is always <= To.
type Pricing struct {
	From     float64 `json:"from"`
	To       float64 `json:"to"`
	Currency string  `json:"currency"`
	PerNight bool    `json:"perNight"`
}

// PetPolicy describes whether and how pets are accommodated.
// Invariant: Allowed=false implies Fee=0 and MaxPets=0.
type PetPolicy struct {
	Allowed      bool     `json:"allowed"`
	Fee          float64  `json:"fee"`
	Restrictions []string `json:"restrictions"`
	MaxPets      int      `json:"maxPets"`
}

// Availability reports remaining inventory.
type Availability struct {
	RoomsLeft    int          `json:"roomsLeft"`
	UrgencyLevel UrgencyLevel `json:"urgencyLevel"`
}

// SearchQuery carries the parsed search parameters plus optional filters.
type SearchQuery struct {
	Destination string   `json:"destination"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut"`
	Adults      int      `json:"adults"`
	Children    int      `json:"children"`
	Rooms       int      `json:"rooms"`
	PetFriendly bool     `json:"petFriendly"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	MinRating   *float64 `json:"minRating,omitempty"`
}

// Filtered reports whether the caller requested any explicit filter. When no
// filter was requested, an empty merged result means both providers failed
// and the fallback set is substituted; when a filter was requested, an empty
// result is a legitimate "no hotels match" answer.
func (q SearchQuery) Filtered() bool {
	return q.PetFriendly || q.MaxPrice != nil || q.MinRating != nil
}

// ProviderCounts is the per-provider record breakdown.
type ProviderCounts struct {
	Amadeus   int `json:"amadeus"`
	Hotelbeds int `json:"hotelbeds"`
}

// PriceRange is the min/max of pricing.from across a result set.
// Both are 0 for an empty set; that is not an error state.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Stats summarizes an aggregated result.
type Stats struct {
	TotalHotels      int            `json:"totalHotels"`
	PetFriendlyCount int            `json:"petFriendlyCount"`
	AveragePrice     float64        `json:"averagePrice"`
	Providers        ProviderCounts `json:"providers"`
	PriceRange       PriceRange     `json:"priceRange"`
}

// Result is an aggregated, request-scoped search result. It is never
// persisted; it lives from aggregation to serialization and is discarded.
type Result struct {
	Hotels []Hotel `json:"hotels"`
	Stats  Stats   `json:"stats"`
	Source string  `json:"source"`

	ProvidersFailed int `json:"-"`
}

// AlertType classifies a derived inventory alert.
type AlertType string

const (
	AlertLowAvailability AlertType = "low_availability"
	AlertPriceDrop       AlertType = "price_drop"
)

// Alert is derived post-hoc from a result; it is never stored.
type Alert struct {
	ID        string       `json:"id"`
	HotelID   string       `json:"hotelId"`
	Provider  string       `json:"provider"`
	Type      AlertType    `json:"type"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
	Urgency   UrgencyLevel `json:"urgency"`
}
