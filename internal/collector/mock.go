package collector

import (
	"fmt"

	"EconScout/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	// Results maps a search text to its ranked results. Missing keys yield
	// an empty result list, like an upstream miss.
	Results map[string][]model.SeriesInfo
	// Infos maps series ids to metadata.
	Infos map[string]model.SeriesInfo
	// Points maps series ids to their observations.
	Points map[string][]model.DataPoint
	// SearchErr, if set, is returned by every search call.
	SearchErr error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) SearchSeries(text string, limit int) ([]model.SeriesInfo, error) {
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	results := m.Results[text]
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (m *MockFetcher) SeriesInfo(id string) (*model.SeriesInfo, error) {
	info, ok := m.Infos[id]
	if !ok {
		return nil, fmt.Errorf("mock: no series info for %s", id)
	}
	return &info, nil
}

func (m *MockFetcher) Observations(id, startDate, endDate string) ([]model.DataPoint, error) {
	return m.Points[id], nil
}
