// Package providers contains the upstream adapters. Each adapter issues
// exactly one HTTP call per invocation and returns provider-native records
// or an error; nothing is retried. The aggregator treats any error as
// "no data from this provider".
package providers

import "errors"

// Query holds the upstream search parameters shared by both adapters.
type Query struct {
	Destination string
	CheckIn     string // YYYY-MM-DD
	CheckOut    string // YYYY-MM-DD
	Adults      int
	Children    int
	Rooms       int
}

// ErrMalformedPayload is returned when an upstream responds 2xx but the body
// does not carry the expected envelope.
var ErrMalformedPayload = errors.New("malformed provider payload")

// AmadeusHotel is a provider-native record from the aggregator-side list
// endpoint. The upstream shape is loose; any field may be absent.
type AmadeusHotel struct {
	HotelID     string   `json:"hotelId"`
	Name        string   `json:"name"`
	PriceRange  string   `json:"priceRange"`
	Price       float64  `json:"price"`
	OrigPrice   float64  `json:"originalPrice"`
	Currency    string   `json:"currency"`
	Rating      float64  `json:"rating"`
	PetFriendly *bool    `json:"petFriendly"`
	PetFee      float64  `json:"petFee"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Address     struct {
		Lines    []string `json:"lines"`
		CityName string   `json:"cityName"`
	} `json:"address"`
	GeoCode struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"geoCode"`
	Availability struct {
		RoomsAvailable int    `json:"roomsAvailable"`
		UrgencyLevel   string `json:"urgencyLevel"`
	} `json:"availability"`
}

// HotelbedsHotel is the typed intermediate extracted from the Hotelbeds
// availability response. Numeric fields arrive as strings or numbers
// depending on the upstream version, so extraction is done with gjson and
// the parsed values land here.
type HotelbedsHotel struct {
	Code        string
	Name        string
	Category    string
	Destination string
	Zone        string
	Latitude    float64
	Longitude   float64
	MinRate     float64
	MaxRate     float64
	Currency    string
	RoomNames   []string
}
