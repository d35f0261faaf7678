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

// TransferQuery holds the transfer availability search parameters.
type TransferQuery struct {
	From         string
	To           string
	TransferType string
	Pax          int
}

// TransferRemark is a free-text note attached to a transfer offer.
type TransferRemark struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Mandatory   bool   `json:"mandatory"`
}

// TransferRecord is the typed intermediate extracted from the transfer
// availability response.
type TransferRecord struct {
	ID                 string
	Type               string
	Category           string
	VehicleName        string
	VehicleMinPax      int
	VehicleMaxPax      int
	VehicleDescription string
	VehicleImages      []string
	FromType           string
	FromDescription    string
	ToType             string
	ToDescription      string
	PickupAddress      string
	TotalAmount        float64
	NetAmount          float64
	Currency           string
	PickupTime         string
	WaitTime           int
	MustCheckPickup    bool
	HoursBeforeConsult int
	Remarks            []TransferRemark
}

// TransfersClient queries the Hotelbeds transfer availability API.
type TransfersClient struct {
	baseURL    string
	signer     *auth.Signer
	httpClient *http.Client
}

// NewTransfersClient creates a transfers adapter. The signer must carry the
// transfers service credentials.
func NewTransfersClient(baseURL string, signer *auth.Signer, timeout time.Duration) *TransfersClient {
	return &TransfersClient{
		baseURL: baseURL,
		signer:  signer,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type transferSearchRequest struct {
	Language     string            `json:"language"`
	From         transferEndpoint  `json:"from"`
	To           transferEndpoint  `json:"to"`
	Occupancy    transferOccupancy `json:"occupancy"`
	TransferType string            `json:"transferType"`
}

type transferEndpoint struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

type transferOccupancy struct {
	Paxes int `json:"paxes"`
}

// Search issues one signed POST against the availability endpoint. Endpoints
// are addressed by ATLAS code on both legs.
func (c *TransfersClient) Search(ctx context.Context, q TransferQuery) ([]TransferRecord, error) {
	payload := transferSearchRequest{
		Language:     "ENG",
		From:         transferEndpoint{Type: "ATLAS", Code: q.From},
		To:           transferEndpoint{Type: "ATLAS", Code: q.To},
		Occupancy:    transferOccupancy{Paxes: q.Pax},
		TransferType: q.TransferType,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transfer-api/1.0/availability", bytes.NewReader(body))
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
		return nil, fmt.Errorf("hotelbeds transfers returned status %d: %s", resp.StatusCode, string(raw))
	}

	return parseTransfersResponse(raw)
}

func parseTransfersResponse(raw []byte) ([]TransferRecord, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedPayload)
	}

	list := gjson.GetBytes(raw, "transfers")
	if !list.Exists() {
		return nil, fmt.Errorf("%w: missing transfers array", ErrMalformedPayload)
	}

	var records []TransferRecord
	list.ForEach(func(_, item gjson.Result) bool {
		id := item.Get("id").String()
		if id == "" {
			return true
		}
		rec := TransferRecord{
			ID:                 id,
			Type:               item.Get("transferType").String(),
			Category:           item.Get("category.name").String(),
			VehicleName:        item.Get("vehicle.name").String(),
			VehicleMinPax:      int(item.Get("vehicle.minPaxCapacity").Int()),
			VehicleMaxPax:      int(item.Get("vehicle.maxPaxCapacity").Int()),
			VehicleDescription: item.Get("content.vehicle.description").String(),
			FromType:           item.Get("pickupInformation.from.type").String(),
			FromDescription:    item.Get("pickupInformation.from.description").String(),
			ToType:             item.Get("pickupInformation.to.type").String(),
			ToDescription:      item.Get("pickupInformation.to.description").String(),
			PickupAddress:      item.Get("pickupInformation.pickup.address").String(),
			TotalAmount:        item.Get("price.totalAmount").Float(),
			NetAmount:          item.Get("price.netAmount").Float(),
			Currency:           item.Get("price.currencyId").String(),
			PickupTime:         item.Get("pickupInformation.pickup.pickupTime").String(),
			WaitTime:           int(item.Get("pickupInformation.pickup.waitTime").Int()),
			MustCheckPickup:    item.Get("pickupInformation.pickup.checkPickup.mustCheckPickupTime").Bool(),
			HoursBeforeConsult: int(item.Get("pickupInformation.pickup.checkPickup.hoursBeforeConsult").Int()),
		}

		item.Get("content.vehicle.images.#.imageUrl").ForEach(func(_, img gjson.Result) bool {
			if u := img.String(); u != "" {
				rec.VehicleImages = append(rec.VehicleImages, u)
			}
			return true
		})
		item.Get("content.transferRemarks").ForEach(func(_, remark gjson.Result) bool {
			rec.Remarks = append(rec.Remarks, TransferRemark{
				Type:        remark.Get("type").String(),
				Description: remark.Get("description").String(),
				Mandatory:   remark.Get("mandatory").Bool(),
			})
			return true
		})

		records = append(records, rec)
		return true
	})

	return records, nil
}
