package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmadeusSearch(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/hotels/list", r.URL.Path)
		gotQuery = map[string]string{
			"hotelIds":     r.URL.Query().Get("hotelIds"),
			"checkInDate":  r.URL.Query().Get("checkInDate"),
			"checkOutDate": r.URL.Query().Get("checkOutDate"),
			"adults":       r.URL.Query().Get("adults"),
			"roomQuantity": r.URL.Query().Get("roomQuantity"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"meta": {"count": 2},
			"data": [
				{
					"hotelId": "ACPAR419",
					"name": "Le Notre Dame",
					"price": 185,
					"originalPrice": 220,
					"currency": "EUR",
					"rating": 4.2,
					"petFriendly": true,
					"petFee": 20,
					"address": {"lines": ["1 Rue Saint-Jacques"], "cityName": "Paris"},
					"geoCode": {"latitude": 48.853, "longitude": 2.3499},
					"availability": {"roomsAvailable": 7, "urgencyLevel": "medium"}
				},
				{"hotelId": "MCLONGHM", "name": "Pet Paradise"}
			]
		}`))
	}))
	defer srv.Close()

	a := NewAmadeus(srv.URL, []string{"ACPAR419", "MCLONGHM"}, time.Second)
	hotels, err := a.Search(context.Background(), Query{
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		Adults:   2,
		Rooms:    1,
	})
	require.NoError(t, err)
	require.Len(t, hotels, 2)

	assert.Equal(t, "ACPAR419", hotels[0].HotelID)
	assert.Equal(t, 185.0, hotels[0].Price)
	assert.Equal(t, 220.0, hotels[0].OrigPrice)
	require.NotNil(t, hotels[0].PetFriendly)
	assert.True(t, *hotels[0].PetFriendly)
	assert.Equal(t, "Paris", hotels[0].Address.CityName)
	assert.Equal(t, 7, hotels[0].Availability.RoomsAvailable)

	// Sparse second record decodes with zero values, no error.
	assert.Equal(t, "MCLONGHM", hotels[1].HotelID)
	assert.Nil(t, hotels[1].PetFriendly)

	assert.Equal(t, map[string]string{
		"hotelIds":     "ACPAR419,MCLONGHM",
		"checkInDate":  "2026-09-10",
		"checkOutDate": "2026-09-12",
		"adults":       "2",
		"roomQuantity": "1",
	}, gotQuery)
}

func TestAmadeusSearch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	a := NewAmadeus(srv.URL, []string{"ACPAR419"}, time.Second)
	hotels, err := a.Search(context.Background(), Query{})
	assert.Nil(t, hotels)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestAmadeusSearch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": not json`))
	}))
	defer srv.Close()

	a := NewAmadeus(srv.URL, []string{"ACPAR419"}, time.Second)
	_, err := a.Search(context.Background(), Query{})
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestAmadeusSearch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	a := NewAmadeus(srv.URL, []string{"ACPAR419"}, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Search(ctx, Query{})
	assert.Error(t, err)
}
