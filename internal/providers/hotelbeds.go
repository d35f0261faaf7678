package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/maku-travel/inventory/internal/auth"
)

// Hotelbeds queries the bed-bank availability API. Every request is signed;
// the signature embeds the current timestamp, so headers are rebuilt per call.
type Hotelbeds struct {
	baseURL    string
	signer     *auth.Signer
	httpClient *http.Client
}

// NewHotelbeds creates a Hotelbeds adapter.
func NewHotelbeds(baseURL string, signer *auth.Signer, timeout time.Duration) *Hotelbeds {
	return &Hotelbeds{
		baseURL: baseURL,
		signer:  signer,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type hotelbedsSearchRequest struct {
	Stay struct {
		CheckIn  string `json:"checkIn"`
		CheckOut string `json:"checkOut"`
	} `json:"stay"`
	Occupancies []hotelbedsOccupancy `json:"occupancies"`
	Destination struct {
		Code string `json:"code"`
	} `json:"destination"`
}

type hotelbedsOccupancy struct {
	Rooms    int `json:"rooms"`
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// Search issues one signed POST to the availability endpoint and extracts
// the hotels.hotels array into typed intermediates.
func (h *Hotelbeds) Search(ctx context.Context, q Query) ([]HotelbedsHotel, error) {
	var payload hotelbedsSearchRequest
	payload.Stay.CheckIn = q.CheckIn
	payload.Stay.CheckOut = q.CheckOut
	payload.Destination.Code = q.Destination
	payload.Occupancies = []hotelbedsOccupancy{{
		Rooms:    q.Rooms,
		Adults:   q.Adults,
		Children: q.Children,
	}}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/hotel-api/1.0/hotels", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range h.signer.Headers() {
		req.Header.Set(k, v)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hotelbeds returned status %d: %s", resp.StatusCode, string(raw))
	}

	return parseHotelbedsResponse(raw)
}

// parseHotelbedsResponse extracts typed records from the availability
// payload. Hotelbeds serializes latitude/longitude and sometimes rates as
// strings, and omits whole subtrees for unavailable hotels, so each field is
// read by path with a defaulted conversion.
func parseHotelbedsResponse(raw []byte) ([]HotelbedsHotel, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedPayload)
	}

	envelope := gjson.GetBytes(raw, "hotels")
	if !envelope.Exists() {
		return nil, fmt.Errorf("%w: missing hotels envelope", ErrMalformedPayload)
	}

	currency := envelope.Get("currency").String()
	list := envelope.Get("hotels")
	if !list.IsArray() {
		// A valid response with zero availability carries no hotel array.
		return nil, nil
	}

	var hotels []HotelbedsHotel
	list.ForEach(func(_, item gjson.Result) bool {
		code := item.Get("code").String()
		if code == "" {
			return true
		}
		rec := HotelbedsHotel{
			Code:        code,
			Name:        item.Get("name").String(),
			Category:    item.Get("categoryName").String(),
			Destination: item.Get("destinationCode").String(),
			Zone:        item.Get("zoneName").String(),
			Latitude:    item.Get("latitude").Float(),
			Longitude:   item.Get("longitude").Float(),
			MinRate:     item.Get("minRate").Float(),
			MaxRate:     item.Get("maxRate").Float(),
			Currency:    currency,
		}
		item.Get("rooms.#.name").ForEach(func(_, name gjson.Result) bool {
			if n := name.String(); n != "" {
				rec.RoomNames = append(rec.RoomNames, n)
			}
			return true
		})
		hotels = append(hotels, rec)
		return true
	})

	return hotels, nil
}
