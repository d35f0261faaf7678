package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/maku-travel/inventory/internal/auth"
)

// ActivityQuery holds the activity-content search parameters.
type ActivityQuery struct {
	Destination string
	Language    string
}

// ActivityRecord is the typed intermediate extracted from the activity
// content response. The upstream nests almost every field one level deep and
// omits whole subtrees, so extraction is done by path with gjson.
type ActivityRecord struct {
	Code          string
	Name          string
	Type          string
	Category      string
	Destination   string
	Country       string
	Description   string
	Modality      string
	DurationValue float64
	DurationUnit  string
	AmountFrom    float64
	Currency      string
	MinPax        int
	MaxPax        int
	AdultAgeFrom  int
	AdultAgeTo    int
	OperatingDays []int
	Languages     []string
	Images        []string
}

// ActivitiesClient queries the Hotelbeds activity content API.
type ActivitiesClient struct {
	baseURL    string
	signer     *auth.Signer
	httpClient *http.Client
}

// NewActivitiesClient creates an activities adapter. The signer must carry
// the activities service credentials; the hotels key pair is rejected
// upstream.
func NewActivitiesClient(baseURL string, signer *auth.Signer, timeout time.Duration) *ActivitiesClient {
	return &ActivitiesClient{
		baseURL: baseURL,
		signer:  signer,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search issues one signed GET against the activity content endpoint.
func (c *ActivitiesClient) Search(ctx context.Context, q ActivityQuery) ([]ActivityRecord, error) {
	u, err := url.Parse(c.baseURL + "/activity-content-api/3.0/activities")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	qs := u.Query()
	qs.Set("destinationCode", q.Destination)
	qs.Set("language", q.Language)
	u.RawQuery = qs.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range c.signer.Headers() {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
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
		return nil, fmt.Errorf("hotelbeds activities returned status %d: %s", resp.StatusCode, string(raw))
	}

	return parseActivitiesResponse(raw)
}

func parseActivitiesResponse(raw []byte) ([]ActivityRecord, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedPayload)
	}

	list := gjson.GetBytes(raw, "activities")
	if !list.Exists() {
		return nil, fmt.Errorf("%w: missing activities array", ErrMalformedPayload)
	}

	var records []ActivityRecord
	list.ForEach(func(_, item gjson.Result) bool {
		code := item.Get("code").String()
		if code == "" {
			return true
		}
		rec := ActivityRecord{
			Code:          code,
			Name:          item.Get("name").String(),
			Type:          item.Get("type").String(),
			Category:      item.Get("category.name").String(),
			Destination:   item.Get("destination.name").String(),
			Country:       item.Get("country.name").String(),
			Description:   item.Get("description").String(),
			Modality:      item.Get("modality.name").String(),
			DurationValue: item.Get("duration.value").Float(),
			DurationUnit:  item.Get("duration.metric").String(),
			AmountFrom:    item.Get("amountsFrom.0.amount").Float(),
			Currency:      item.Get("amountsFrom.0.currencyId").String(),
			MinPax:        int(item.Get("minPaxForReservation").Int()),
			MaxPax:        int(item.Get("maxPaxForReservation").Int()),
		}

		// Age bounds come from the adult pax band, not the first entry.
		item.Get("amountsFrom").ForEach(func(_, band gjson.Result) bool {
			if band.Get("paxType").String() != "ADULT" {
				return true
			}
			rec.AdultAgeFrom = int(band.Get("ageFrom").Int())
			rec.AdultAgeTo = int(band.Get("ageTo").Int())
			return false
		})

		item.Get("operatingDays.#.dayOfTheWeek").ForEach(func(_, day gjson.Result) bool {
			rec.OperatingDays = append(rec.OperatingDays, int(day.Int()))
			return true
		})
		item.Get("languages.#.name").ForEach(func(_, name gjson.Result) bool {
			if n := name.String(); n != "" {
				rec.Languages = append(rec.Languages, n)
			}
			return true
		})
		item.Get("content.images.#.imageUrl").ForEach(func(_, img gjson.Result) bool {
			if u := img.String(); u != "" {
				rec.Images = append(rec.Images, u)
			}
			return true
		})

		records = append(records, rec)
		return true
	})

	return records, nil
}
