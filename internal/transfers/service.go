package transfers

import (
	"context"
	"log/slog"
	"time"

	"github.com/maku-travel/inventory/internal/obs"
	"github.com/maku-travel/inventory/internal/providers"
)

// Client fetches provider-native transfer availability records.
type Client interface {
	Search(ctx context.Context, q providers.TransferQuery) ([]providers.TransferRecord, error)
}

// Service runs transfer searches: fetch, normalize, fall back, filter.
type Service struct {
	client  Client
	metrics *obs.Metrics
	logger  *slog.Logger
}

// NewService creates a Service over the transfers adapter.
func NewService(client Client, metrics *obs.Metrics, logger *slog.Logger) *Service {
	return &Service{client: client, metrics: metrics, logger: logger}
}

// Search runs one transfer availability search. An upstream failure or an
// empty availability set both yield the fallback records; the pet-friendly
// filter applies to fallback data too.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, context.Cause(ctx)
	}

	records, err := s.client.Search(ctx, providers.TransferQuery{
		From:         q.From,
		To:           q.To,
		TransferType: q.TransferType,
		Pax:          q.Pax,
	})
	if err != nil {
		s.logger.Warn("transfers search failed", "from", q.From, "to", q.To, "error", err)
		s.metrics.IncProviderErrors()
	}

	now := time.Now().UTC()
	source := SourceAPI
	list := make([]Transfer, 0, len(records))
	for _, r := range records {
		list = append(list, Normalize(r, now))
	}
	if len(list) == 0 {
		list = FallbackTransfers(now)
		source = SourceFallback
		s.metrics.IncFallbacks()
	}

	if q.PetFriendly {
		filtered := list[:0]
		for _, t := range list {
			if t.PetPolicy.Allowed {
				filtered = append(filtered, t)
			}
		}
		list = filtered
	}

	return &Result{Transfers: list, Source: source}, nil
}
