package resolver

import (
	"errors"
	"testing"

	"EconScout/internal/model"
)

// stubSearcher records every search term and replays canned results.
type stubSearcher struct {
	calls   []string
	results map[string][]model.SeriesInfo
	err     error
}

func (s *stubSearcher) SearchSeries(text string, limit int) ([]model.SeriesInfo, error) {
	s.calls = append(s.calls, text)
	if s.err != nil {
		return nil, s.err
	}
	return s.results[text], nil
}

func TestResolve_NationalTable(t *testing.T) {
	stub := &stubSearcher{}
	r := New(stub)

	tests := []struct {
		indicator string
		want      string
	}{
		{"real gdp", "GDPC1"},
		{"gdp", "GDP"},
		{"rgdp growth", "GDPC1"},
		{"inflation", "CPIAUCSL"},
		{"cpi", "CPIAUCSL"},
		{"unemployment", "UNRATE"},
		{"nonfarm payrolls", "PAYEMS"},
		{"nfp", "PAYEMS"},
	}
	for _, tt := range tests {
		id, ok := r.Resolve(tt.indicator, "US")
		if !ok || id != tt.want {
			t.Errorf("%q: expected %s, got %s (ok=%v)", tt.indicator, tt.want, id, ok)
		}
	}
	if len(stub.calls) != 0 {
		t.Errorf("table hits must not reach search, got calls %v", stub.calls)
	}
}

func TestResolve_StatePatterns(t *testing.T) {
	r := New(&stubSearcher{})

	tests := []struct {
		indicator string
		location  string
		want      string
	}{
		{"gdp", "CA", "CARGSP"},
		{"gdp", "california", "CARGSP"},
		{"unemployment", "TX", "TXUR"},
		{"housing", "New York", "NYHPI"},
		{"nonfarm payrolls", "FL", "FLNF"},
	}
	for _, tt := range tests {
		id, ok := r.Resolve(tt.indicator, tt.location)
		if !ok || id != tt.want {
			t.Errorf("%q/%q: expected %s, got %s (ok=%v)", tt.indicator, tt.location, tt.want, id, ok)
		}
	}
}

func TestResolve_SearchFallback(t *testing.T) {
	stub := &stubSearcher{results: map[string][]model.SeriesInfo{
		"population CA": {{ID: "CAPOP"}, {ID: "CANPOP"}},
	}}
	r := New(stub)

	id, ok := r.Resolve("population", "CA")
	if !ok || id != "CAPOP" {
		t.Fatalf("expected CAPOP, got %s (ok=%v)", id, ok)
	}
}

func TestResolve_NationalIndicatorRetry(t *testing.T) {
	stub := &stubSearcher{results: map[string][]model.SeriesInfo{
		"median household income": {{ID: "MEHOINUSA672N"}},
	}}
	r := New(stub)

	id, ok := r.Resolve("median household income", "US")
	if !ok || id != "MEHOINUSA672N" {
		t.Fatalf("expected retry hit, got %s (ok=%v)", id, ok)
	}
	want := []string{"median household income US", "median household income"}
	if len(stub.calls) != 2 || stub.calls[0] != want[0] || stub.calls[1] != want[1] {
		t.Errorf("unexpected search calls: %v", stub.calls)
	}
}

func TestResolve_SearchErrorIsMiss(t *testing.T) {
	stub := &stubSearcher{err: errors.New("upstream down")}
	r := New(stub)

	if id, ok := r.Resolve("obscure indicator", "CA"); ok {
		t.Fatalf("expected miss, got %s", id)
	}
}

func TestResolve_NothingFound(t *testing.T) {
	r := New(&stubSearcher{})
	if _, ok := r.Resolve("nothing", "CA"); ok {
		t.Fatal("expected miss")
	}
}
