// Package payments wraps payment-intent creation with the external
// processor. One call per intent; there is no retry and no idempotency key
// in the current design.
package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// ErrNotConfigured is returned when no processor key was supplied.
var ErrNotConfigured = errors.New("payment processor not configured")

// Intent is the opaque handle returned to callers.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Status       string `json:"status"`
}

// Client creates payment intents. A zero-value client (no key) reports
// itself unconfigured instead of failing at startup.
type Client struct {
	api *client.API
}

// New creates a Client. An empty key yields an unconfigured client.
func New(secretKey string) *Client {
	if secretKey == "" {
		return &Client{}
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

// Configured reports whether a processor key was supplied.
func (c *Client) Configured() bool {
	return c.api != nil
}

// CreateIntent creates one payment intent for amount in major currency
// units. Currency defaults to usd.
func (c *Client) CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error) {
	if c.api == nil {
		return nil, ErrNotConfigured
	}
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("integration_check", "accept_a_payment")

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}
