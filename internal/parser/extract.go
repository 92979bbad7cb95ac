package parser

import (
	"fmt"
	"regexp"
	"sort"

	"EconScout/internal/lexicon"
)

var (
	yearRe  = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	lastNRe = regexp.MustCompile(`last (\d+) (year|month|day|quarter)s?`)
	rangeRe = regexp.MustCompile(`(?:from|between)\s+(19\d{2}|20\d{2})\s+(?:to|and)\s+(19\d{2}|20\d{2})`)
)

// extractKeys returns the canonical keys of all lexicon entries whose surface
// forms appear in the lowercased text, ordered by first occurrence. Ties keep
// table order.
func extractKeys(text string, entries []lexicon.Entry) []string {
	type hit struct {
		key string
		idx int
	}
	var hits []hit
	for _, e := range entries {
		if idx := e.MatchIndex(text); idx >= 0 {
			hits = append(hits, hit{key: e.Key, idx: idx})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].idx < hits[j].idx })
	keys := make([]string, 0, len(hits))
	for _, h := range hits {
		keys = append(keys, h.key)
	}
	return keys
}

// extractTimePeriods pulls every recognized time expression out of the text:
// bare 4-digit years, "last N <unit>s", the latest/current/recent tokens, and
// "from Y1 to Y2" / "between Y1 and Y2" ranges. Duplicates are dropped with
// first-seen order preserved.
func extractTimePeriods(text string) []string {
	var periods []string

	for _, m := range yearRe.FindAllString(text, -1) {
		periods = append(periods, m)
	}

	for _, m := range lastNRe.FindAllStringSubmatch(text, -1) {
		periods = append(periods, fmt.Sprintf("last %s %ss", m[1], m[2]))
	}

	if containsAny(text, []string{"latest", "current", "recent"}) {
		periods = append(periods, "latest")
	}

	for _, m := range rangeRe.FindAllStringSubmatch(text, -1) {
		periods = append(periods, fmt.Sprintf("%s to %s", m[1], m[2]))
	}

	seen := make(map[string]bool, len(periods))
	unique := periods[:0]
	for _, p := range periods {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	return unique
}
