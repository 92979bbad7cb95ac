package model

// QueryType classifies what a user question is asking for.
type QueryType string

const (
	TypeSingleDatapoint     QueryType = "single_datapoint"
	TypeTrendOverTime       QueryType = "trend_over_time"
	TypeGeoComparison       QueryType = "geographical_comparison"
	TypeIndicatorComparison QueryType = "indicator_comparison"
	TypeTimeComparison      QueryType = "time_comparison"
	TypeComparisonGeneric   QueryType = "comparison_generic"
	TypeSeriesSearch        QueryType = "series_search"
	TypeDataRetrieval       QueryType = "data_retrieval"
	TypeUnknown             QueryType = "unknown"
)

// ChartKind is the chart-intent hint inferred from a query.
type ChartKind string

const (
	ChartNone     ChartKind = ""
	ChartLine     ChartKind = "line_chart"
	ChartCompBar  ChartKind = "comparison_bar_chart"
	ChartSnapshot ChartKind = "snapshot_value_display"
	ChartGeneric  ChartKind = "generic_chart_request"
)

// QueryDetails is the structured form of one user question, produced once by
// the parser and read-only afterward. TimePeriods is ordered; the first entry
// is the primary period used for date windowing.
type QueryDetails struct {
	RawQuery    string
	Type        QueryType
	Indicators  []string
	Locations   []string
	TimePeriods []string
	Normalize   bool
	ChartKind   ChartKind
}
