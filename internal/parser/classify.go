package parser

import (
	"strings"

	"EconScout/internal/model"
)

var (
	comparisonWords = []string{"compare", "vs", "versus", "against", "vs."}
	trendWords      = []string{"trend", "history", "historical", "over time", "plot data for", "show me data for"}
	searchWords     = []string{"search for", "find series", "look up", "what series match"}
	valueWords      = []string{"what is the", "get the current", "show me the value", "current value of", "latest value for"}
	vizWords        = []string{"plot", "graph", "chart", "visualize", "draw", "show a graph of"}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// ruleInput carries the lowercased text and extracted entities into the
// classification rules.
type ruleInput struct {
	text        string
	indicators  []string
	locations   []string
	timePeriods []string
}

// classifyRule is one (predicate, outcome) pair. Rules are evaluated in
// table order; the first rule that claims the query decides its type.
type classifyRule struct {
	name  string
	apply func(in ruleInput) (model.QueryType, bool)
}

var classifyRules = []classifyRule{
	{"comparison", classifyComparison},
	{"trend", classifyTrend},
	{"search", classifySearch},
	{"value-or-retrieval", classifyValueOrRetrieval},
	{"bare-entities", classifyBareEntities},
}

// classify runs the decision table and returns exactly one query type.
func classify(in ruleInput) model.QueryType {
	for _, r := range classifyRules {
		if t, ok := r.apply(in); ok {
			return t
		}
	}
	return model.TypeUnknown
}

func classifyComparison(in ruleInput) (model.QueryType, bool) {
	if !containsAny(in.text, comparisonWords) {
		return "", false
	}
	switch {
	case len(in.locations) > 1 && len(in.indicators) >= 1:
		return model.TypeGeoComparison, true
	case len(in.indicators) > 1:
		// No locations implies national scope.
		return model.TypeIndicatorComparison, true
	case len(in.timePeriods) > 1 && len(in.indicators) >= 1:
		return model.TypeTimeComparison, true
	default:
		return model.TypeComparisonGeneric, true
	}
}

func classifyTrend(in ruleInput) (model.QueryType, bool) {
	if containsAny(in.text, trendWords) {
		return model.TypeTrendOverTime, true
	}
	return "", false
}

func classifySearch(in ruleInput) (model.QueryType, bool) {
	if containsAny(in.text, searchWords) {
		return model.TypeSeriesSearch, true
	}
	return "", false
}

func classifyValueOrRetrieval(in ruleInput) (model.QueryType, bool) {
	hasNationalSignal := false
	for _, ind := range in.indicators {
		if ind == "US" {
			hasNationalSignal = true
		}
	}
	if len(in.indicators) == 0 || (len(in.locations) == 0 && !hasNationalSignal) {
		return "", false
	}
	soleLatest := len(in.timePeriods) == 1 && in.timePeriods[0] == "latest"
	if containsAny(in.text, valueWords) || soleLatest {
		return model.TypeSingleDatapoint, true
	}
	return model.TypeDataRetrieval, true
}

func classifyBareEntities(in ruleInput) (model.QueryType, bool) {
	if len(in.indicators) > 0 || len(in.locations) > 0 {
		return model.TypeDataRetrieval, true
	}
	return "", false
}
