// Package resolver maps an (indicator, location) pair to a concrete series
// identifier, preferring well-known ids over a search fallback.
package resolver

import (
	"fmt"
	"log"
	"strings"

	"EconScout/internal/lexicon"
	"EconScout/internal/model"
)

// Searcher is the search slice of the fetch collaborator.
type Searcher interface {
	SearchSeries(text string, limit int) ([]model.SeriesInfo, error)
}

// nationalSeries maps common US indicator phrasings to their series ids.
// Evaluated in order; the first match wins, so real GDP must precede the
// bare GDP rule.
var nationalSeries = []struct {
	match func(indicator string) bool
	id    string
}{
	{func(s string) bool {
		return strings.Contains(s, "gdp") && (strings.Contains(s, "real") || strings.Contains(s, "rgdp"))
	}, "GDPC1"},
	{func(s string) bool { return strings.Contains(s, "gdp") }, "GDP"},
	{func(s string) bool { return strings.Contains(s, "cpi") || strings.Contains(s, "inflation") }, "CPIAUCSL"},
	{func(s string) bool { return strings.Contains(s, "unemployment") }, "UNRATE"},
	{func(s string) bool { return strings.Contains(s, "nonfarm payrolls") || strings.Contains(s, "nfp") }, "PAYEMS"},
}

// statePatterns build state-level series ids from the 2-letter state code.
var statePatterns = []struct {
	match   func(indicator string) bool
	pattern string
}{
	{func(s string) bool { return strings.Contains(s, "gdp") }, "%sRGSP"},
	{func(s string) bool { return strings.Contains(s, "unemployment") }, "%sUR"},
	{func(s string) bool { return strings.Contains(s, "housing") || strings.Contains(s, "hpi") }, "%sHPI"},
	{func(s string) bool { return strings.Contains(s, "nonfarm payrolls") || strings.Contains(s, "payrolls") || strings.Contains(s, "nfp") }, "%sNF"},
}

// Resolver picks one series id for an indicator/location pair.
type Resolver struct {
	searcher Searcher
}

// New creates a Resolver over the given search collaborator.
func New(searcher Searcher) *Resolver {
	return &Resolver{searcher: searcher}
}

// Resolve returns a series id for the pair, or ok=false when every heuristic
// missed. Search failures count as misses; the caller treats a miss as a
// soft failure.
func (r *Resolver) Resolve(indicator, location string) (id string, ok bool) {
	ind := strings.ToLower(strings.TrimSpace(indicator))
	loc := strings.ToUpper(strings.TrimSpace(location))

	if loc == "US" {
		for _, e := range nationalSeries {
			if e.match(ind) {
				return e.id, true
			}
		}
	} else if code := lexicon.StateCode(location); code != "" {
		for _, e := range statePatterns {
			if e.match(ind) {
				return fmt.Sprintf(e.pattern, code), true
			}
		}
	}

	if id, ok := r.searchTop(fmt.Sprintf("%s %s", indicator, location)); ok {
		return id, true
	}

	// For national queries a location-qualified search sometimes misses
	// series titled without "US"; retry with the indicator alone.
	if loc == "US" {
		if id, ok := r.searchTop(indicator); ok {
			return id, true
		}
	}

	return "", false
}

func (r *Resolver) searchTop(text string) (string, bool) {
	results, err := r.searcher.SearchSeries(text, 1)
	if err != nil {
		log.Printf("[WARN] resolver search %q: %v", text, err)
		return "", false
	}
	if len(results) == 0 {
		return "", false
	}
	return results[0].ID, true
}
