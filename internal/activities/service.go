package activities

import (
	"context"
	"log/slog"
	"time"

	"github.com/maku-travel/inventory/internal/obs"
	"github.com/maku-travel/inventory/internal/providers"
)

// Client fetches provider-native activity records.
type Client interface {
	Search(ctx context.Context, q providers.ActivityQuery) ([]providers.ActivityRecord, error)
}

// Service runs activity searches: fetch, normalize, fall back, filter.
type Service struct {
	client  Client
	metrics *obs.Metrics
	logger  *slog.Logger
}

// NewService creates a Service over the activities adapter.
func NewService(client Client, metrics *obs.Metrics, logger *slog.Logger) *Service {
	return &Service{client: client, metrics: metrics, logger: logger}
}

// Search runs one activity search. An upstream failure or an empty content
// set both yield the fallback records; the pet-friendly filter applies to
// fallback data too, unlike hotel search where a filtered-empty result is
// final.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, context.Cause(ctx)
	}

	records, err := s.client.Search(ctx, providers.ActivityQuery{
		Destination: q.Destination,
		Language:    q.Language,
	})
	if err != nil {
		s.logger.Warn("activities search failed", "destination", q.Destination, "error", err)
		s.metrics.IncProviderErrors()
	}

	now := time.Now().UTC()
	source := SourceAPI
	list := make([]Activity, 0, len(records))
	for _, r := range records {
		list = append(list, Normalize(r, now))
	}
	if len(list) == 0 {
		list = FallbackActivities(now)
		source = SourceFallback
		s.metrics.IncFallbacks()
	}

	if q.PetFriendly {
		filtered := list[:0]
		for _, a := range list {
			if a.PetPolicy.Allowed {
				filtered = append(filtered, a)
			}
		}
		list = filtered
	}

	return &Result{Activities: list, Source: source}, nil
}
