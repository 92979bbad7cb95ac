package lexicon

import (
	"regexp"
	"strings"
)

// pattern is one surface form. Multi-word forms match by substring; single
// words carry a word-boundary regexp so "us" cannot match inside "house".
type pattern struct {
	text string
	re   *regexp.Regexp
}

// Entry maps a canonical key (indicator key or location code) to its
// surface forms.
type Entry struct {
	Key      string
	patterns []pattern
}

// MatchIndex returns the earliest index in text at which any surface form of
// the entry matches, or -1 if none match. Text must already be lowercased.
func (e Entry) MatchIndex(text string) int {
	best := -1
	for _, p := range e.patterns {
		idx := -1
		if p.re != nil {
			if loc := p.re.FindStringIndex(text); loc != nil {
				idx = loc[0]
			}
		} else {
			idx = strings.Index(text, p.text)
		}
		if idx >= 0 && (best < 0 || idx < best) {
			best = idx
		}
	}
	return best
}

// Lexicon holds the static indicator and location tables. It is built once
// at process start and treated as read-only; entry order is significant
// because it breaks ties when two entries match at the same text position.
type Lexicon struct {
	Indicators []Entry
	Locations  []Entry
}

func newEntry(key string, forms ...string) Entry {
	e := Entry{Key: key}
	for _, f := range forms {
		p := pattern{text: f}
		if !strings.Contains(f, " ") {
			p.re = regexp.MustCompile(`\b` + regexp.QuoteMeta(f) + `\b`)
		}
		e.patterns = append(e.patterns, p)
	}
	return e
}

// stateNames maps full state names to their 2-letter codes, in the order the
// location table is built.
var stateNames = []struct {
	name string
	code string
}{
	{"alabama", "AL"}, {"alaska", "AK"}, {"arizona", "AZ"}, {"arkansas", "AR"},
	{"california", "CA"}, {"colorado", "CO"}, {"connecticut", "CT"}, {"delaware", "DE"},
	{"florida", "FL"}, {"georgia", "GA"}, {"hawaii", "HI"}, {"idaho", "ID"},
	{"illinois", "IL"}, {"indiana", "IN"}, {"iowa", "IA"}, {"kansas", "KS"},
	{"kentucky", "KY"}, {"louisiana", "LA"}, {"maine", "ME"}, {"maryland", "MD"},
	{"massachusetts", "MA"}, {"michigan", "MI"}, {"minnesota", "MN"}, {"mississippi", "MS"},
	{"missouri", "MO"}, {"montana", "MT"}, {"nebraska", "NE"}, {"nevada", "NV"},
	{"new hampshire", "NH"}, {"new jersey", "NJ"}, {"new mexico", "NM"}, {"new york", "NY"},
	{"north carolina", "NC"}, {"north dakota", "ND"}, {"ohio", "OH"}, {"oklahoma", "OK"},
	{"oregon", "OR"}, {"pennsylvania", "PA"}, {"rhode island", "RI"}, {"south carolina", "SC"},
	{"south dakota", "SD"}, {"tennessee", "TN"}, {"texas", "TX"}, {"utah", "UT"},
	{"vermont", "VT"}, {"virginia", "VA"}, {"washington", "WA"}, {"west virginia", "WV"},
	{"wisconsin", "WI"}, {"wyoming", "WY"}, {"district of columbia", "DC"}, {"puerto rico", "PR"},
}

// StateCode returns the 2-letter code for a full state name, or the input
// uppercased if it already looks like a code, or "" if unrecognized.
func StateCode(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, s := range stateNames {
		if s.name == lower || strings.ToLower(s.code) == lower {
			return s.code
		}
	}
	return ""
}

// Default builds the standard lexicon.
func Default() *Lexicon {
	l := &Lexicon{
		Indicators: []Entry{
			newEntry("gdp", "gdp", "gross domestic product"),
			newEntry("unemployment", "unemployment rate", "unemployment", "jobless rate"),
			newEntry("inflation", "inflation", "cpi", "consumer price index"),
			newEntry("housing", "housing price", "hpi", "house price index", "home price index"),
			newEntry("population", "population", "pop"),
			newEntry("interest rate", "interest rate", "federal funds rate", "fed rate"),
			newEntry("nonfarm payrolls", "nonfarm payrolls", "payrolls", "nfp"),
		},
		Locations: []Entry{
			newEntry("US", "us", "usa", "united states", "national", "federal"),
		},
	}
	for _, s := range stateNames {
		l.Locations = append(l.Locations, newEntry(s.code, s.name, strings.ToLower(s.code)))
	}
	return l
}
