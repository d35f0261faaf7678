// Package auth implements the Hotelbeds request signature scheme: each call
// carries an X-Signature header containing the SHA-256 hex digest of
// apiKey + secret + current Unix timestamp.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// Hotelbeds service names. Each service carries its own API key pair; a
// signature minted for one service is invalid for the others.
const (
	ServiceHotels     = "hotels"
	ServiceActivities = "activities"
	ServiceTransfers  = "transfers"
)

// Credentials is one service's API key pair.
type Credentials struct {
	APIKey string
	Secret string
}

// Registry holds per-service credentials and issues signers by service name.
type Registry struct {
	creds map[string]Credentials
	now   func() time.Time
}

// NewRegistry creates a Registry over the given service credentials.
func NewRegistry(creds map[string]Credentials) *Registry {
	return &Registry{creds: creds, now: time.Now}
}

// NewRegistryWithClock creates a Registry with an injected clock, for tests.
func NewRegistryWithClock(creds map[string]Credentials, now func() time.Time) *Registry {
	return &Registry{creds: creds, now: now}
}

// Signer returns a signer bound to the named service's credentials.
func (r *Registry) Signer(service string) (*Signer, error) {
	c, ok := r.creds[service]
	if !ok {
		return nil, fmt.Errorf("unknown hotelbeds service %q", service)
	}
	return &Signer{apiKey: c.APIKey, secret: c.Secret, now: r.now}, nil
}

// Signer produces time-boxed auth headers for Hotelbeds API calls.
type Signer struct {
	apiKey string
	secret string
	now    func() time.Time
}

// NewSigner creates a Signer for the given credentials.
func NewSigner(apiKey, secret string) *Signer {
	return &Signer{
		apiKey: apiKey,
		secret: secret,
		now:    time.Now,
	}
}

// NewSignerWithClock creates a Signer with an injected clock, for tests.
func NewSignerWithClock(apiKey, secret string, now func() time.Time) *Signer {
	return &Signer{apiKey: apiKey, secret: secret, now: now}
}

// Signature returns the SHA-256 hex digest of apiKey + secret + timestamp.
func Signature(apiKey, secret string, timestamp int64) string {
	sum := sha256.Sum256([]byte(apiKey + secret + strconv.FormatInt(timestamp, 10)))
	return hex.EncodeToString(sum[:])
}

// Headers returns the auth headers for one request. The timestamp is part of
// the signed material, so headers must be regenerated per call and never
// cached across requests.
func (s *Signer) Headers() map[string]string {
	ts := s.now().Unix()
	return map[string]string{
		"Api-key":      s.apiKey,
		"X-Signature":  Signature(s.apiKey, s.secret, ts),
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}
