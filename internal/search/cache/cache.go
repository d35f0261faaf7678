// Package cache provides an in-memory TTL cache for aggregated search
// results, with concurrent requests for the same key collapsed into a
// single aggregation pass.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/maku-travel/inventory/internal/search/types"
)

// Cache caches aggregated results by search query.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
	group   singleflight.Group
	done    chan struct{}
}

type cacheEntry struct {
	result    *types.Result
	expiresAt time.Time
}

// NewCache creates a Cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}

	go c.cleanup()

	return c
}

// Close stops the background cleanup goroutine.
func (c *Cache) Close() {
	close(c.done)
}

// Key derives a cache key from the full search query, filters included.
func (c *Cache) Key(q types.SearchQuery) string {
	maxPrice := "-"
	if q.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%g", *q.MaxPrice)
	}
	minRating := "-"
	if q.MinRating != nil {
		minRating = fmt.Sprintf("%g", *q.MinRating)
	}
	return fmt.Sprintf("%s:%s:%s:%d:%d:%d:%t:%s:%s",
		q.Destination, q.CheckIn, q.CheckOut, q.Adults, q.Children, q.Rooms,
		q.PetFriendly, maxPrice, minRating)
}

// GetOrFetch returns the cached result for key, or runs fetch and caches its
// result. Concurrent callers with the same key share one fetch. The boolean
// reports a cache hit.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch func() (*types.Result, error)) (*types.Result, bool, error) {
	c.mu.RLock()
	if entry, ok := c.entries[key]; ok && time.Now().Before(entry.expiresAt) {
		c.mu.RUnlock()
		return entry.result, true, nil
	}
	c.mu.RUnlock()

	ch := c.group.DoChan(key, func() (any, error) {
		result, err := fetch()
		if err == nil && result != nil {
			c.mu.Lock()
			c.entries[key] = &cacheEntry{
				result:    result,
				expiresAt: time.Now().Add(c.ttl),
			}
			c.mu.Unlock()
		}
		return result, err
	})

	select {
	case res := <-ch:
		result, _ := res.Val.(*types.Result)
		return result, false, res.Err
	case <-ctx.Done():
		return nil, false, context.Cause(ctx)
	}
}

// Invalidate removes a specific key from the cache.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// cleanup periodically removes expired entries.
func (c *Cache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}
