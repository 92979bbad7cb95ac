package model

// ProcessedDataset is one (possibly transformed) series prepared for
// presentation. Metadata carries provenance such as the original units and
// the normalization base value/date/status.
type ProcessedDataset struct {
	ID       string
	Name     string
	Points   []DataPoint
	Metadata map[string]any
}

// GrowthMetric summarizes growth over a series' valid span.
type GrowthMetric struct {
	TotalGrowthPct float64
	CAGRPct        float64
	Years          float64
	StartDate      string
	EndDate        string
	StartValue     float64
	EndValue       float64
	Notes          string
}

// ChartOptions are the rendering toggles handed to the chart collaborator.
type ChartOptions struct {
	RecessionShading bool
	SourceCaption    bool
	Normalized       bool
}

// ChartSpec describes one requested chart. The core only assembles and hands
// off the spec; rendering happens elsewhere.
type ChartSpec struct {
	Kind       ChartKind
	Title      string
	DataIDs    []string
	XAxisLabel string
	YAxisLabel string
	Options    ChartOptions
}

// Response is the terminal output of one query-handling cycle. Failures are
// carried in ErrorMessage, never as a bare error to the caller.
type Response struct {
	RequestID    string
	Query        QueryDetails
	Datasets     []ProcessedDataset
	Summary      string
	Chart        *ChartSpec
	ErrorMessage string
}
