package collector

import (
	"errors"
	"sync"
	"testing"
	"time"

	"EconScout/internal/model"
)

// memStore is an in-memory cache.Store for tests.
type memStore struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
}

func newMemStore() *memStore { return &memStore{entries: make(map[string][]byte)} }

func (m *memStore) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	payload, ok := m.entries[key]
	return payload, ok, nil
}

func (m *memStore) Put(key string, payload []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = payload
	return nil
}

func (m *memStore) Prune() (int64, error) { return 0, nil }
func (m *memStore) Close() error          { return nil }

// countingFetcher counts calls that reach the inner fetcher.
type countingFetcher struct {
	MockFetcher
	infoCalls int
	obsCalls  int
}

func (c *countingFetcher) SeriesInfo(id string) (*model.SeriesInfo, error) {
	c.infoCalls++
	return c.MockFetcher.SeriesInfo(id)
}

func (c *countingFetcher) Observations(id, startDate, endDate string) ([]model.DataPoint, error) {
	c.obsCalls++
	return c.MockFetcher.Observations(id, startDate, endDate)
}

func TestCachedFetcher_SecondReadHitsCache(t *testing.T) {
	inner := &countingFetcher{MockFetcher: MockFetcher{
		Infos: map[string]model.SeriesInfo{
			"UNRATE": {ID: "UNRATE", Title: "Unemployment Rate", Units: "Percent"},
		},
	}}
	cf := NewCachedFetcher(inner, newMemStore(), time.Hour)

	for i := 0; i < 2; i++ {
		info, err := cf.SeriesInfo("UNRATE")
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if info.Title != "Unemployment Rate" {
			t.Errorf("call %d: unexpected title %q", i, info.Title)
		}
	}
	if inner.infoCalls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.infoCalls)
	}
}

func TestCachedFetcher_WindowIsPartOfKey(t *testing.T) {
	v := 5.0
	inner := &countingFetcher{MockFetcher: MockFetcher{
		Points: map[string][]model.DataPoint{
			"UNRATE": {{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Value: &v}},
		},
	}}
	cf := NewCachedFetcher(inner, newMemStore(), time.Hour)

	if _, err := cf.Observations("UNRATE", "2020-01-01", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := cf.Observations("UNRATE", "2021-01-01", ""); err != nil {
		t.Fatal(err)
	}
	if inner.obsCalls != 2 {
		t.Errorf("different windows must not share a cache entry, got %d inner calls", inner.obsCalls)
	}
}

func TestCachedFetcher_StoreFailureFallsThrough(t *testing.T) {
	inner := &countingFetcher{MockFetcher: MockFetcher{
		Infos: map[string]model.SeriesInfo{"GDP": {ID: "GDP", Title: "Gross Domestic Product"}},
	}}
	store := newMemStore()
	store.getErr = errors.New("disk full")
	cf := NewCachedFetcher(inner, store, time.Hour)

	info, err := cf.SeriesInfo("GDP")
	if err != nil {
		t.Fatalf("cache trouble must not fail the fetch: %v", err)
	}
	if info.ID != "GDP" {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestCachedFetcher_InnerErrorNotCached(t *testing.T) {
	inner := &countingFetcher{MockFetcher: MockFetcher{SearchErr: errors.New("upstream down")}}
	cf := NewCachedFetcher(inner, newMemStore(), time.Hour)

	if _, err := cf.SearchSeries("gdp", 5); err == nil {
		t.Fatal("expected the upstream error to surface")
	}

	// Once the upstream recovers, the next call must succeed.
	inner.SearchErr = nil
	inner.Results = map[string][]model.SeriesInfo{"gdp": {{ID: "GDP"}}}
	results, err := cf.SearchSeries("gdp", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != "GDP" {
		t.Errorf("unexpected results: %+v", results)
	}
}
