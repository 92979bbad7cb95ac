package collector

import "EconScout/internal/model"

// Fetcher defines the interface for the remote economic-data source.
type Fetcher interface {
	// SearchSeries returns series metadata ranked by relevance, best first.
	SearchSeries(text string, limit int) ([]model.SeriesInfo, error)
	// SeriesInfo returns metadata for one series id.
	SeriesInfo(id string) (*model.SeriesInfo, error)
	// Observations returns dated values for a series, optionally bounded by
	// start/end dates in YYYY-MM-DD form (empty means unbounded). Missing
	// observations are dropped, not returned as absent points.
	Observations(id, startDate, endDate string) ([]model.DataPoint, error)
	Name() string
}
