package collector

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"EconScout/internal/cache"
	"EconScout/internal/model"
)

// DefaultCacheTTL matches the upstream refresh cadence: FRED data rarely
// changes more than hourly.
const DefaultCacheTTL = time.Hour

// CachedFetcher wraps another Fetcher with a response cache. Cache failures
// are logged and fall through to the underlying fetcher; they never fail a
// query on their own.
type CachedFetcher struct {
	inner Fetcher
	store cache.Store
	ttl   time.Duration
}

// NewCachedFetcher wraps inner with the given store. A non-positive ttl uses
// DefaultCacheTTL.
func NewCachedFetcher(inner Fetcher, store cache.Store, ttl time.Duration) *CachedFetcher {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{inner: inner, store: store, ttl: ttl}
}

func (c *CachedFetcher) Name() string { return c.inner.Name() + "+cache" }

// lookup fills out from the cache and reports whether it hit.
func (c *CachedFetcher) lookup(key string, out any) bool {
	payload, ok, err := c.store.Get(key)
	if err != nil {
		log.Printf("[WARN] cache get %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		log.Printf("[WARN] cache decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *CachedFetcher) save(key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARN] cache encode %s: %v", key, err)
		return
	}
	if err := c.store.Put(key, payload, c.ttl); err != nil {
		log.Printf("[WARN] cache put %s: %v", key, err)
	}
}

func (c *CachedFetcher) SearchSeries(text string, limit int) ([]model.SeriesInfo, error) {
	key := fmt.Sprintf("search:%d:%s", limit, text)
	var cached []model.SeriesInfo
	if c.lookup(key, &cached) {
		return cached, nil
	}
	results, err := c.inner.SearchSeries(text, limit)
	if err != nil {
		return nil, err
	}
	c.save(key, results)
	return results, nil
}

func (c *CachedFetcher) SeriesInfo(id string) (*model.SeriesInfo, error) {
	key := "info:" + id
	var cached model.SeriesInfo
	if c.lookup(key, &cached) {
		return &cached, nil
	}
	info, err := c.inner.SeriesInfo(id)
	if err != nil {
		return nil, err
	}
	c.save(key, info)
	return info, nil
}

func (c *CachedFetcher) Observations(id, startDate, endDate string) ([]model.DataPoint, error) {
	key := fmt.Sprintf("obs:%s:%s:%s", id, startDate, endDate)
	var cached []model.DataPoint
	if c.lookup(key, &cached) {
		return cached, nil
	}
	points, err := c.inner.Observations(id, startDate, endDate)
	if err != nil {
		return nil, err
	}
	c.save(key, points)
	return points, nil
}
