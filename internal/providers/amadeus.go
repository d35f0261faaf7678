package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Amadeus queries the aggregator-side hotel list endpoint for a configured
// set of hotel identifiers.
type Amadeus struct {
	baseURL    string
	hotelIDs   []string
	httpClient *http.Client
}

// NewAmadeus creates an Amadeus adapter. hotelIDs is the identifier set
// requested on every search; the timeout bounds each upstream call.
func NewAmadeus(baseURL string, hotelIDs []string, timeout time.Duration) *Amadeus {
	return &Amadeus{
		baseURL:  baseURL,
		hotelIDs: hotelIDs,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search issues one GET against the list endpoint and decodes the
// {meta, data} envelope.
func (a *Amadeus) Search(ctx context.Context, q Query) ([]AmadeusHotel, error) {
	u, err := url.Parse(a.baseURL + "/api/hotels/list")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	qs := u.Query()
	qs.Set("hotelIds", strings.Join(a.hotelIDs, ","))
	qs.Set("checkInDate", q.CheckIn)
	qs.Set("checkOutDate", q.CheckOut)
	qs.Set("adults", strconv.Itoa(q.Adults))
	qs.Set("roomQuantity", strconv.Itoa(q.Rooms))
	u.RawQuery = qs.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("amadeus returned status %d: %s", resp.StatusCode, string(body))
	}

	var envelope struct {
		Data []AmadeusHotel `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return envelope.Data, nil
}
