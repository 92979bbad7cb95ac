package orchestrator

import "strings"

// isBareYear reports whether s is a 4-digit year token.
func isBareYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// deriveWindow turns the primary time-period expression into a fetch window.
// A bare year expands to Jan 1..Dec 31 of that year; an "X to Y" range splits
// into its endpoints; "latest" leaves the window open; anything else passes
// through as a literal start date for the upstream source to interpret.
func deriveWindow(period string) (startDate, endDate string) {
	if period == "" || period == "latest" {
		return "", ""
	}
	if isBareYear(period) {
		return period + "-01-01", period + "-12-31"
	}
	if strings.Contains(period, " to ") {
		parts := strings.SplitN(period, " to ", 2)
		start := strings.TrimSpace(parts[0])
		end := strings.TrimSpace(parts[1])
		if isBareYear(start) {
			start += "-01-01"
		}
		if isBareYear(end) {
			end += "-12-31"
		}
		return start, end
	}
	return period, ""
}
