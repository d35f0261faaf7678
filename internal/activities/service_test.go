package activities

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maku-travel/inventory/internal/obs"
	"github.com/maku-travel/inventory/internal/providers"
)

type stubClient struct {
	records []providers.ActivityRecord
	err     error
	gotQ    providers.ActivityQuery
}

func (s *stubClient) Search(_ context.Context, q providers.ActivityQuery) ([]providers.ActivityRecord, error) {
	s.gotQ = q
	return s.records, s.err
}

func newTestService(client Client) (*Service, *obs.Metrics) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := obs.NewMetrics(logger)
	return NewService(client, metrics, logger), metrics
}

func TestServiceSearchLiveContent(t *testing.T) {
	client := &stubClient{records: []providers.ActivityRecord{
		{Code: "MAD-1", Name: "Palace Visit"},
		{Code: "MAD-2", Name: "Tapas Evening"},
	}}
	svc, metrics := newTestService(client)

	res, err := svc.Search(context.Background(), Query{Destination: "MAD", Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, providers.ActivityQuery{Destination: "MAD", Language: "en"}, client.gotQ)
	assert.Equal(t, SourceAPI, res.Source)
	require.Len(t, res.Activities, 2)
	assert.Equal(t, "Palace Visit", res.Activities[0].Name)
	assert.Zero(t, metrics.Snapshot().Fallbacks)
}

func TestServiceSearchUpstreamErrorServesFallback(t *testing.T) {
	client := &stubClient{err: errors.New("upstream down")}
	svc, metrics := newTestService(client)

	res, err := svc.Search(context.Background(), Query{Destination: "MAD", Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Len(t, res.Activities, 3)
	snap := metrics.Snapshot()
	assert.EqualValues(t, 1, snap.ProviderErrors)
	assert.EqualValues(t, 1, snap.Fallbacks)
}

func TestServiceSearchEmptyContentServesFallback(t *testing.T) {
	svc, metrics := newTestService(&stubClient{})

	res, err := svc.Search(context.Background(), Query{Destination: "XXX", Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Len(t, res.Activities, 3)
	snap := metrics.Snapshot()
	assert.Zero(t, snap.ProviderErrors)
	assert.EqualValues(t, 1, snap.Fallbacks)
}

// Live content normalizes to pets-disallowed, so the pet filter first swaps
// in nothing and then empties the live list. Fallback data is only
// substituted for an empty fetch, not for a filtered-empty result.
func TestServiceSearchPetFriendlyFiltersLiveContent(t *testing.T) {
	client := &stubClient{records: []providers.ActivityRecord{{Code: "MAD-1"}}}
	svc, _ := newTestService(client)

	res, err := svc.Search(context.Background(), Query{Destination: "MAD", Language: "en", PetFriendly: true})
	require.NoError(t, err)

	assert.Equal(t, SourceAPI, res.Source)
	assert.Empty(t, res.Activities)
}

func TestServiceSearchPetFriendlyKeepsFallback(t *testing.T) {
	svc, _ := newTestService(&stubClient{})

	res, err := svc.Search(context.Background(), Query{Destination: "MAD", Language: "en", PetFriendly: true})
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, res.Source)
	require.Len(t, res.Activities, 3)
	for _, a := range res.Activities {
		assert.True(t, a.PetPolicy.Allowed)
	}
}

func TestServiceSearchCancelledContext(t *testing.T) {
	svc, _ := newTestService(&stubClient{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Search(ctx, Query{Destination: "MAD", Language: "en"})
	require.ErrorIs(t, err, context.Canceled)
}
