package orchestrator

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"EconScout/internal/model"
)

// formatSearchListing renders bounded search results for the user.
func formatSearchListing(term string, results []model.SeriesInfo) string {
	if len(results) == 0 {
		return fmt.Sprintf("No series found matching your search term: %q.", term)
	}
	var b strings.Builder
	b.WriteString("Found the following series based on your search:\n")
	for _, info := range results {
		b.WriteString(fmt.Sprintf("- ID: %s, Title: %s (Popularity: %d)\n", info.ID, info.Title, info.Popularity))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatValue renders an observation value with comma grouping.
func formatValue(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// formatPct renders a growth percentage, spelling out the signed-infinity
// conventions instead of printing bare float sentinels.
func formatPct(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf%"
	case math.IsInf(v, -1):
		return "-Inf%"
	default:
		return fmt.Sprintf("%+.2f%%", v)
	}
}

// formatGrowthSummary renders total growth and CAGR for a single series.
// Either metric may be nil when the engine reported no result.
func formatGrowthSummary(total, cagr *model.GrowthMetric) string {
	var parts []string
	if total != nil {
		line := fmt.Sprintf("Total growth: %s (%s on %s to %s on %s)",
			formatPct(total.TotalGrowthPct),
			formatValue(total.StartValue), total.StartDate,
			formatValue(total.EndValue), total.EndDate)
		if total.Notes != "" {
			line += fmt.Sprintf(" [%s]", total.Notes)
		}
		parts = append(parts, line)
	}
	if cagr != nil {
		line := fmt.Sprintf("CAGR: %s over %.2f years", formatPct(cagr.CAGRPct), cagr.Years)
		if cagr.Notes != "" {
			line += fmt.Sprintf(" [%s]", cagr.Notes)
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, ". ")
}

// chartTitle assembles a display title from the query entities.
func chartTitle(details model.QueryDetails, normalized bool) string {
	title := "Economic Data"
	if len(details.Indicators) > 0 {
		title = details.Indicators[0]
	}
	if len(details.Locations) > 0 {
		title += " for " + strings.Join(details.Locations, ", ")
	}
	if normalized {
		title += " (Normalized)"
	}
	return title
}
