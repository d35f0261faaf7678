package search

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/maku-travel/inventory/internal/obs"
	"github.com/maku-travel/inventory/internal/providers"
	"github.com/maku-travel/inventory/internal/search/types"
)

// AmadeusClient fetches provider-native records from the Amadeus side.
type AmadeusClient interface {
	Search(ctx context.Context, q providers.Query) ([]providers.AmadeusHotel, error)
}

// HotelbedsClient fetches provider-native records from the bed bank.
type HotelbedsClient interface {
	Search(ctx context.Context, q providers.Query) ([]providers.HotelbedsHotel, error)
}

// Aggregator fans a search out to both providers, normalizes each side,
// merges, filters, sorts and summarizes the combined set.
type Aggregator struct {
	amadeus   AmadeusClient
	hotelbeds HotelbedsClient
	timeout   time.Duration
	metrics   *obs.Metrics
	logger    *slog.Logger
}

// NewAggregator creates an Aggregator over the two provider adapters.
func NewAggregator(amadeus AmadeusClient, hotelbeds HotelbedsClient, timeout time.Duration, metrics *obs.Metrics, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		amadeus:   amadeus,
		hotelbeds: hotelbeds,
		timeout:   timeout,
		metrics:   metrics,
		logger:    logger,
	}
}

// Search runs one aggregation pass. Provider failures are isolated: one
// adapter failing contributes an empty list and never cancels the other.
// The returned error is reserved for a request that was dead on arrival;
// every upstream failure mode is recovered into a well-formed result.
func (a *Aggregator) Search(ctx context.Context, q types.SearchQuery) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, context.Cause(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	pq := providers.Query{
		Destination: q.Destination,
		CheckIn:     q.CheckIn,
		CheckOut:    q.CheckOut,
		Adults:      q.Adults,
		Children:    q.Children,
		Rooms:       q.Rooms,
	}

	var (
		mu              sync.Mutex
		wg              sync.WaitGroup
		amadeusHotels   []types.Hotel
		hotelbedsHotels []types.Hotel
		failed          int
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		recs, err := a.amadeus.Search(ctx, pq)
		if err != nil {
			a.logger.Warn("amadeus search failed", "destination", q.Destination, "error", err)
			a.metrics.IncProviderErrors()
			mu.Lock()
			failed++
			mu.Unlock()
			return
		}
		now := time.Now().UTC()
		list := make([]types.Hotel, 0, len(recs))
		for _, r := range recs {
			list = append(list, NormalizeAmadeus(r, now))
		}
		mu.Lock()
		amadeusHotels = list
		mu.Unlock()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		recs, err := a.hotelbeds.Search(ctx, pq)
		if err != nil {
			a.logger.Warn("hotelbeds search failed", "destination", q.Destination, "error", err)
			a.metrics.IncProviderErrors()
			mu.Lock()
			failed++
			mu.Unlock()
			return
		}
		now := time.Now().UTC()
		list := make([]types.Hotel, 0, len(recs))
		for _, r := range recs {
			list = append(list, NormalizeHotelbeds(r, now))
		}
		mu.Lock()
		hotelbedsHotels = list
		mu.Unlock()
	}()

	wg.Wait()

	// Concatenation order matters: Amadeus first, then Hotelbeds. The sort
	// below is stable, so this order breaks full ties.
	hotels := make([]types.Hotel, 0, len(amadeusHotels)+len(hotelbedsHotels))
	hotels = append(hotels, amadeusHotels...)
	hotels = append(hotels, hotelbedsHotels...)

	counts := types.ProviderCounts{
		Amadeus:   len(amadeusHotels),
		Hotelbeds: len(hotelbedsHotels),
	}

	hotels = applyFilters(hotels, q)

	sort.SliceStable(hotels, func(i, j int) bool {
		if hotels[i].Pricing.From != hotels[j].Pricing.From {
			return hotels[i].Pricing.From < hotels[j].Pricing.From
		}
		return hotels[i].Rating > hotels[j].Rating
	})

	source := types.SourceMultiProvider
	if len(hotels) == 0 && !q.Filtered() {
		// Both providers yielded nothing and no filter explains it. Serve
		// the synthetic set so the caller never silently receives an empty
		// provider-failure response; the source tag marks it.
		hotels = FallbackHotels(time.Now().UTC())
		counts = countProviders(hotels)
		source = types.SourceFallback
		a.metrics.IncFallbacks()
		a.logger.Info("serving fallback inventory", "destination", q.Destination, "providers_failed", failed)
	}

	return &types.Result{
		Hotels:          hotels,
		Stats:           computeStats(hotels, counts),
		Source:          source,
		ProvidersFailed: failed,
	}, nil
}

func applyFilters(hotels []types.Hotel, q types.SearchQuery) []types.Hotel {
	out := hotels[:0]
	for _, h := range hotels {
		if q.PetFriendly && !h.PetPolicy.Allowed {
			continue
		}
		if q.MaxPrice != nil && h.Pricing.From > *q.MaxPrice {
			continue
		}
		if q.MinRating != nil && h.Rating < *q.MinRating {
			continue
		}
		out = append(out, h)
	}
	return out
}

func countProviders(hotels []types.Hotel) types.ProviderCounts {
	var counts types.ProviderCounts
	for _, h := range hotels {
		switch h.Provider {
		case types.ProviderAmadeus:
			counts.Amadeus++
		case types.ProviderHotelbeds:
			counts.Hotelbeds++
		}
	}
	return counts
}

func computeStats(hotels []types.Hotel, counts types.ProviderCounts) types.Stats {
	stats := types.Stats{
		TotalHotels: len(hotels),
		Providers:   counts,
	}
	if len(hotels) == 0 {
		return stats
	}

	var sum float64
	stats.PriceRange = types.PriceRange{Min: hotels[0].Pricing.From, Max: hotels[0].Pricing.From}
	for _, h := range hotels {
		if h.PetPolicy.Allowed {
			stats.PetFriendlyCount++
		}
		sum += h.Pricing.From
		if h.Pricing.From < stats.PriceRange.Min {
			stats.PriceRange.Min = h.Pricing.From
		}
		if h.Pricing.From > stats.PriceRange.Max {
			stats.PriceRange.Max = h.Pricing.From
		}
	}
	stats.AveragePrice = sum / float64(len(hotels))
	return stats
}
