package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strings"
)

// MockAmadeus serves an Amadeus-shaped hotel list endpoint with a fixed
// catalogue, filtered to the requested hotel IDs.
type MockAmadeus struct {
	logger *slog.Logger
}

// NewMockAmadeus creates a MockAmadeus.
func NewMockAmadeus() *MockAmadeus {
	return &MockAmadeus{
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

type mockAmadeusHotel struct {
	HotelID     string   `json:"hotelId"`
	Name        string   `json:"name"`
	PriceRange  string   `json:"priceRange"`
	Price       float64  `json:"price"`
	OrigPrice   float64  `json:"originalPrice"`
	Currency    string   `json:"currency"`
	Rating      float64  `json:"rating"`
	PetFriendly bool     `json:"petFriendly"`
	PetFee      float64  `json:"petFee"`
	Amenities   []string `json:"amenities"`
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

func (p *MockAmadeus) catalogue() []mockAmadeusHotel {
	le := mockAmadeusHotel{
		HotelID:     "ACPAR419",
		Name:        "Le Notre Dame",
		PriceRange:  "Premium",
		Price:       185,
		OrigPrice:   220,
		Currency:    "EUR",
		Rating:      4.2,
		PetFriendly: true,
		PetFee:      20,
		Amenities:   []string{"Free WiFi", "Restaurant", "Pet Beds Available"},
	}
	le.Address.Lines = []string{"1 Rue Saint-Jacques"}
	le.Address.CityName = "Paris"
	le.GeoCode.Latitude = 48.8530
	le.GeoCode.Longitude = 2.3499
	le.Availability.RoomsAvailable = 7
	le.Availability.UrgencyLevel = "medium"

	mc := mockAmadeusHotel{
		HotelID:     "MCLONGHM",
		Name:        "Pet Paradise Hotel London",
		PriceRange:  "Premium",
		Price:       150,
		OrigPrice:   180,
		Currency:    "EUR",
		Rating:      4.5,
		PetFriendly: true,
		PetFee:      25,
		Amenities:   []string{"Pet Beds Available", "Dog Walking", "Veterinary Services Nearby"},
	}
	mc.Address.CityName = "London"
	mc.GeoCode.Latitude = 51.5074
	mc.GeoCode.Longitude = -0.1278
	mc.Availability.RoomsAvailable = 4
	mc.Availability.UrgencyLevel = "high"

	pp := mockAmadeusHotel{
		HotelID:    "PARPET01",
		Name:       "Budget Paws Paris",
		PriceRange: "Economy",
		Price:      95,
		Currency:   "EUR",
		Rating:     3.9,
		Amenities:  []string{"Free WiFi"},
	}
	pp.Address.CityName = "Paris"
	pp.GeoCode.Latitude = 48.8566
	pp.GeoCode.Longitude = 2.3522
	pp.Availability.RoomsAvailable = 15
	pp.Availability.UrgencyLevel = "low"

	return []mockAmadeusHotel{le, mc, pp}
}

// ServeHTTP handles hotel list requests.
func (p *MockAmadeus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requested := map[string]bool{}
	for _, id := range strings.Split(r.URL.Query().Get("hotelIds"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			requested[id] = true
		}
	}

	var data []mockAmadeusHotel
	for _, h := range p.catalogue() {
		if len(requested) == 0 || requested[h.HotelID] {
			data = append(data, h)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"meta": map[string]any{"count": len(data), "source": "amadeus_mock"},
		"data": data,
	}); err != nil {
		p.logger.Error("failed to encode response", "error", err)
	}
}
