package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_KnownVector(t *testing.T) {
	// sha256("demo-key" + "demo-secret" + "1700000000")
	got := Signature("demo-key", "demo-secret", 1700000000)
	assert.Equal(t, "06b81f9cfdd5530394c5f7dce379e0f0fc2b13eddd1b452dfc6fd40282a06ded", got)
}

func TestSigner_Headers(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	s := NewSignerWithClock("demo-key", "demo-secret", func() time.Time { return fixed })

	h := s.Headers()
	require.Equal(t, "demo-key", h["Api-key"])
	assert.Equal(t, Signature("demo-key", "demo-secret", 1700000000), h["X-Signature"])
	assert.Equal(t, "application/json", h["Content-Type"])
	assert.Equal(t, "application/json", h["Accept"])
}

func TestRegistry_Signer(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	r := NewRegistryWithClock(map[string]Credentials{
		ServiceHotels:     {APIKey: "hotels-key", Secret: "hotels-secret"},
		ServiceActivities: {APIKey: "activities-key", Secret: "activities-secret"},
		ServiceTransfers:  {APIKey: "transfers-key", Secret: "transfers-secret"},
	}, func() time.Time { return fixed })

	hotels, err := r.Signer(ServiceHotels)
	require.NoError(t, err)
	activities, err := r.Signer(ServiceActivities)
	require.NoError(t, err)

	hh := hotels.Headers()
	ah := activities.Headers()
	assert.Equal(t, "hotels-key", hh["Api-key"])
	assert.Equal(t, "activities-key", ah["Api-key"])
	assert.Equal(t, Signature("hotels-key", "hotels-secret", 1700000000), hh["X-Signature"])

	// Same timestamp, different credentials: signatures must not cross over.
	assert.NotEqual(t, hh["X-Signature"], ah["X-Signature"])
}

func TestRegistry_UnknownService(t *testing.T) {
	r := NewRegistry(map[string]Credentials{
		ServiceHotels: {APIKey: "k", Secret: "s"},
	})

	s, err := r.Signer("flights")
	assert.Nil(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flights")
}

func TestSigner_HeadersChangeWithClock(t *testing.T) {
	now := time.Unix(1700000000, 0)
	s := NewSignerWithClock("demo-key", "demo-secret", func() time.Time { return now })

	first := s.Headers()["X-Signature"]
	now = now.Add(time.Second)
	second := s.Headers()["X-Signature"]

	// The timestamp is signed material; signatures must not be reusable
	// across calls issued at different times.
	assert.NotEqual(t, first, second)
}
