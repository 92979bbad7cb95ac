// Package parser turns free-text economic questions into structured
// QueryDetails using a deterministic keyword-and-regex rule engine.
package parser

import (
	"strings"

	"EconScout/internal/lexicon"
	"EconScout/internal/model"
)

// Parser extracts entities and classifies query intent against a fixed
// lexicon. It holds no per-query state and is safe for reuse.
type Parser struct {
	lex *lexicon.Lexicon
}

// New creates a Parser over the given lexicon.
func New(lex *lexicon.Lexicon) *Parser {
	return &Parser{lex: lex}
}

// Parse produces the structured form of one raw question. It never fails:
// absent matches yield empty collections and the unknown type.
func (p *Parser) Parse(raw string) model.QueryDetails {
	text := strings.ToLower(raw)

	in := ruleInput{
		text:        text,
		indicators:  extractKeys(text, p.lex.Indicators),
		locations:   extractKeys(text, p.lex.Locations),
		timePeriods: extractTimePeriods(text),
	}

	qt := classify(in)

	// Data-shaped queries with no explicit period default to the latest
	// observation.
	periods := in.timePeriods
	if len(periods) == 0 && qt != model.TypeSeriesSearch && qt != model.TypeUnknown && qt != model.TypeComparisonGeneric {
		periods = []string{"latest"}
	}

	// A non-empty query with no recognizable entities at all is treated as a
	// bare search term.
	if qt == model.TypeUnknown &&
		len(in.indicators) == 0 && len(in.locations) == 0 && len(periods) == 0 &&
		strings.TrimSpace(text) != "" {
		qt = model.TypeSeriesSearch
	}

	details := model.QueryDetails{
		RawQuery:    raw,
		Type:        qt,
		Indicators:  in.indicators,
		Locations:   in.locations,
		TimePeriods: periods,
		Normalize:   strings.Contains(text, "normalize"),
	}
	details.ChartKind = inferChartKind(in, details)
	return details
}

// inferChartKind maps a classified query to a chart-kind hint when the text
// asks for a visualization. No visualization keyword means no chart.
func inferChartKind(in ruleInput, d model.QueryDetails) model.ChartKind {
	if !containsAny(in.text, vizWords) {
		return model.ChartNone
	}
	hasNationalSignal := false
	for _, ind := range d.Indicators {
		if ind == "US" {
			hasNationalSignal = true
		}
	}
	switch {
	case d.Type == model.TypeGeoComparison || d.Type == model.TypeIndicatorComparison:
		return model.ChartCompBar
	case d.Type == model.TypeTrendOverTime:
		return model.ChartLine
	case d.Type == model.TypeSingleDatapoint && len(d.Indicators) > 0 && len(d.Locations) > 0:
		return model.ChartSnapshot
	case d.Type == model.TypeDataRetrieval && len(d.Indicators) > 0 && (len(d.Locations) > 0 || hasNationalSignal):
		return model.ChartLine
	default:
		return model.ChartGeneric
	}
}
