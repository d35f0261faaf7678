package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Unconfigured(t *testing.T) {
	c := New("")

	assert.False(t, c.Configured())

	intent, err := c.CreateIntent(context.Background(), 150, "eur")
	assert.Nil(t, intent)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_Configured(t *testing.T) {
	c := New("sk_test_123")
	assert.True(t, c.Configured())
}
