// Package orchestrator sequences the query pipeline: parse, resolve, fetch,
// analyze, and assemble one structured response per question. It holds no
// state between queries.
package orchestrator

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"EconScout/internal/analytics"
	"EconScout/internal/chart"
	"EconScout/internal/collector"
	"EconScout/internal/model"
	"EconScout/internal/parser"
	"EconScout/internal/resolver"
)

const (
	searchLimit       = 5
	normalizationBase = 100.0
)

// Orchestrator coordinates the pipeline stages for one query at a time.
type Orchestrator struct {
	parser   *parser.Parser
	resolver *resolver.Resolver
	fetcher  collector.Fetcher
	renderer chart.Renderer
}

// New creates an Orchestrator over the given collaborators.
func New(p *parser.Parser, r *resolver.Resolver, f collector.Fetcher, cr chart.Renderer) *Orchestrator {
	return &Orchestrator{parser: p, resolver: r, fetcher: f, renderer: cr}
}

// HandleQuery processes one raw question and always returns a complete
// response; failures are carried in the ErrorMessage field, and unexpected
// internal failures are caught at this boundary rather than propagated.
func (o *Orchestrator) HandleQuery(raw string) (resp *model.Response) {
	reqID := uuid.NewString()
	details := model.QueryDetails{RawQuery: raw, Type: model.TypeUnknown}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] query %s: unexpected failure: %v", reqID, r)
			resp = &model.Response{
				RequestID:    reqID,
				Query:        details,
				Summary:      "I'm sorry, but I encountered an unexpected error while processing your request.",
				ErrorMessage: fmt.Sprintf("unexpected internal error: %v", r),
			}
		}
	}()

	details = o.parser.Parse(raw)
	log.Printf("[INFO] query %s type=%s indicators=%v locations=%v periods=%v",
		reqID, details.Type, details.Indicators, details.Locations, details.TimePeriods)

	switch details.Type {
	case model.TypeSeriesSearch:
		return o.handleSearch(reqID, details)
	case model.TypeGeoComparison, model.TypeTimeComparison, model.TypeTrendOverTime,
		model.TypeSingleDatapoint, model.TypeDataRetrieval:
		return o.handleData(reqID, details)
	default:
		return &model.Response{
			RequestID: reqID,
			Query:     details,
			Summary: "I'm not sure how to handle that query. You can try searching for series " +
				"(e.g. 'search for US GDP'), or asking for data for a specific indicator and " +
				"location (e.g. 'US GDP trend over last 5 years').",
			ErrorMessage: fmt.Sprintf("unsupported query type: %s", details.Type),
		}
	}
}

func (o *Orchestrator) handleSearch(reqID string, details model.QueryDetails) *model.Response {
	term := details.RawQuery
	if len(details.Indicators) > 0 {
		term = details.Indicators[0]
		if len(details.Locations) > 0 {
			term = fmt.Sprintf("%s for %s", details.Indicators[0], details.Locations[0])
		}
	}

	results, err := o.fetcher.SearchSeries(term, searchLimit)
	if err != nil {
		log.Printf("[WARN] query %s: search %q: %v", reqID, term, err)
		results = nil
	}
	return &model.Response{
		RequestID: reqID,
		Query:     details,
		Summary:   formatSearchListing(term, results),
	}
}

// seriesRequest is one (indicator, location) pair to resolve and fetch.
type seriesRequest struct {
	indicator string
	location  string
}

// buildRequests fans a geographical comparison out to one request per
// location; every other supported type uses the first indicator and first
// location only.
func buildRequests(details model.QueryDetails) ([]seriesRequest, string) {
	if details.Type == model.TypeGeoComparison && len(details.Locations) > 1 && len(details.Indicators) >= 1 {
		reqs := make([]seriesRequest, 0, len(details.Locations))
		for _, loc := range details.Locations {
			reqs = append(reqs, seriesRequest{indicator: details.Indicators[0], location: loc})
		}
		return reqs, ""
	}
	if len(details.Indicators) > 0 && len(details.Locations) > 0 {
		return []seriesRequest{{indicator: details.Indicators[0], location: details.Locations[0]}}, ""
	}

	msg := "I need an indicator (like 'GDP') and a location (like 'US' or a state name) to fetch data."
	if len(details.Indicators) == 0 {
		msg += " Indicator missing."
	}
	if len(details.Locations) == 0 {
		msg += " Location missing."
	}
	return nil, msg
}

func (o *Orchestrator) handleData(reqID string, details model.QueryDetails) *model.Response {
	requests, missing := buildRequests(details)
	if missing != "" {
		return &model.Response{
			RequestID:    reqID,
			Query:        details,
			Summary:      missing,
			ErrorMessage: "insufficient information for data retrieval",
		}
	}

	var startDate, endDate string
	if len(details.TimePeriods) > 0 {
		startDate, endDate = deriveWindow(details.TimePeriods[0])
	}

	var notes []string
	var fetched []model.SeriesData
	seen := make(map[string]bool)

	for _, req := range requests {
		id, ok := o.resolver.Resolve(req.indicator, req.location)
		if !ok {
			notes = append(notes, fmt.Sprintf("Could not find a series for '%s' in '%s'.", req.indicator, req.location))
			continue
		}
		if seen[id] {
			continue
		}

		data, err := o.fetchSeries(id, startDate, endDate)
		if err != nil || len(data.Points) == 0 {
			if err != nil {
				log.Printf("[WARN] query %s: fetch %s: %v", reqID, id, err)
			}
			notes = append(notes, fmt.Sprintf("No data found for '%s' in '%s' (series %s).", req.indicator, req.location, id))
			continue
		}

		seen[id] = true
		fetched = append(fetched, data)
		notes = append(notes, fmt.Sprintf("Successfully retrieved %d data points for '%s'.", len(data.Points), data.Info.Title))
	}

	if len(fetched) == 0 {
		msg := strings.Join(notes, "\n")
		if msg == "" {
			msg = "No data could be retrieved for any specified series."
		}
		return &model.Response{
			RequestID:    reqID,
			Query:        details,
			Summary:      msg,
			ErrorMessage: msg,
		}
	}

	datasets := make([]model.ProcessedDataset, 0, len(fetched))
	for _, sd := range fetched {
		name := sd.Info.Title
		if name == "" {
			name = sd.SeriesID
		}
		datasets = append(datasets, model.ProcessedDataset{
			ID:     sd.SeriesID,
			Name:   name,
			Points: sd.Points,
			Metadata: map[string]any{
				"series_id": sd.SeriesID,
				"units":     sd.Info.Units,
				"frequency": sd.Info.Frequency,
			},
		})
	}

	normalized := false
	if details.Normalize && len(fetched) > 1 {
		for i, sd := range fetched {
			nd := analytics.Normalize(sd, normalizationBase)
			if nd.Metadata["status"] == analytics.StatusSuccess {
				datasets[i] = nd
			} else {
				// Keep the original dataset rather than dropping the series.
				log.Printf("[WARN] query %s: normalization failed for %s, using original data", reqID, sd.SeriesID)
			}
		}
		notes = append(notes, "Data has been normalized for comparison plotting.")
		normalized = true
	}

	if len(fetched) == 1 {
		if line := o.growthSummary(fetched[0]); line != "" {
			notes = append(notes, line)
		}
	}

	resp := &model.Response{
		RequestID: reqID,
		Query:     details,
		Datasets:  datasets,
		Summary:   strings.Join(notes, "\n"),
	}

	if details.ChartKind != model.ChartNone && len(datasets) > 0 {
		spec := o.buildChartSpec(details, datasets, normalized)
		resp.Chart = &spec
		if err := o.renderer.Render(spec, datasets); err != nil {
			log.Printf("[WARN] query %s: chart render: %v", reqID, err)
		} else {
			resp.Summary += "\nA chart has been generated and is available for display."
		}
	}

	return resp
}

// fetchSeries assembles one immutable SeriesData from the fetch collaborator.
func (o *Orchestrator) fetchSeries(id, startDate, endDate string) (model.SeriesData, error) {
	info, err := o.fetcher.SeriesInfo(id)
	if err != nil {
		return model.SeriesData{}, fmt.Errorf("series info %s: %w", id, err)
	}
	points, err := o.fetcher.Observations(id, startDate, endDate)
	if err != nil {
		return model.SeriesData{}, fmt.Errorf("observations %s: %w", id, err)
	}
	return model.SeriesData{SeriesID: id, Info: *info, Points: points}, nil
}

// growthSummary computes presentation growth statistics for one series.
// Undefined cases simply drop out of the summary.
func (o *Orchestrator) growthSummary(sd model.SeriesData) string {
	total, terr := analytics.TotalGrowth(sd)
	cagr, cerr := analytics.CAGR(sd)
	if terr != nil {
		total = nil
	}
	if cerr != nil {
		cagr = nil
	}
	return formatGrowthSummary(total, cagr)
}

func (o *Orchestrator) buildChartSpec(details model.QueryDetails, datasets []model.ProcessedDataset, normalized bool) model.ChartSpec {
	yLabel := "Value"
	meta := datasets[0].Metadata
	if u, ok := meta["units"].(string); ok && u != "" {
		yLabel = u
	}
	if normalized {
		if nu, ok := meta["normalized_units"].(string); ok && nu != "" {
			yLabel = nu
		}
	}

	ids := make([]string, 0, len(datasets))
	for _, ds := range datasets {
		ids = append(ids, ds.ID)
	}

	return model.ChartSpec{
		Kind:       details.ChartKind,
		Title:      chartTitle(details, normalized),
		DataIDs:    ids,
		XAxisLabel: "Date",
		YAxisLabel: yLabel,
		Options: model.ChartOptions{
			RecessionShading: true,
			SourceCaption:    true,
			Normalized:       normalized,
		},
	}
}
