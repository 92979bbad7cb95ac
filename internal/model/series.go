package model

import "time"

// SeriesInfo is an immutable metadata snapshot for one economic series.
type SeriesInfo struct {
	ID                      string
	Title                   string
	Units                   string
	Frequency               string
	SeasonalAdjustment      string
	SeasonalAdjustmentShort string
	Notes                   string
	Popularity              int
	ObservationStart        string
	ObservationEnd          string
	LastUpdated             string
}

// DataPoint is one dated observation. A nil Value means no observation
// exists for that date.
type DataPoint struct {
	Date  time.Time
	Value *float64
}

// SeriesData holds one fetched series. Points are sorted ascending by date
// with no duplicate dates; the struct is never mutated after construction.
type SeriesData struct {
	SeriesID string
	Info     SeriesInfo
	Points   []DataPoint
}
