package parser

import (
	"reflect"
	"testing"

	"EconScout/internal/lexicon"
	"EconScout/internal/model"
)

func newTestParser() *Parser {
	return New(lexicon.Default())
}

func TestParse_GeoComparisonWithRange(t *testing.T) {
	p := newTestParser()
	d := p.Parse("Compare GDP for California vs New York from 2020 to 2023, normalize the data")

	if d.Type != model.TypeGeoComparison {
		t.Fatalf("expected geographical_comparison, got %s", d.Type)
	}
	if !reflect.DeepEqual(d.Indicators, []string{"gdp"}) {
		t.Errorf("unexpected indicators: %v", d.Indicators)
	}
	if !reflect.DeepEqual(d.Locations, []string{"CA", "NY"}) {
		t.Errorf("unexpected locations: %v", d.Locations)
	}
	found := false
	for _, tp := range d.TimePeriods {
		if tp == "2020 to 2023" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a '2020 to 2023' period, got %v", d.TimePeriods)
	}
	if !d.Normalize {
		t.Error("expected normalize flag to be set")
	}
}

func TestParse_LatestSingleDatapoint(t *testing.T) {
	p := newTestParser()
	d := p.Parse("What is the latest GDP for US?")

	if d.Type != model.TypeSingleDatapoint {
		t.Fatalf("expected single_datapoint, got %s", d.Type)
	}
	if !reflect.DeepEqual(d.Indicators, []string{"gdp"}) {
		t.Errorf("unexpected indicators: %v", d.Indicators)
	}
	if !reflect.DeepEqual(d.Locations, []string{"US"}) {
		t.Errorf("unexpected locations: %v", d.Locations)
	}
	if !reflect.DeepEqual(d.TimePeriods, []string{"latest"}) {
		t.Errorf("unexpected periods: %v", d.TimePeriods)
	}
	if d.Normalize {
		t.Error("normalize flag should not be set")
	}
}

func TestParse_BareEntitiesDefaultToRetrieval(t *testing.T) {
	p := newTestParser()
	d := p.Parse("GDP for CA")

	if d.Type != model.TypeDataRetrieval {
		t.Fatalf("expected data_retrieval, got %s", d.Type)
	}
	if !reflect.DeepEqual(d.Locations, []string{"CA"}) {
		t.Errorf("unexpected locations: %v", d.Locations)
	}
	// No explicit period defaults to the latest observation.
	if !reflect.DeepEqual(d.TimePeriods, []string{"latest"}) {
		t.Errorf("unexpected periods: %v", d.TimePeriods)
	}
}

func TestParse_TrendQuery(t *testing.T) {
	p := newTestParser()
	d := p.Parse("Plot the unemployment trend for Texas over the last 5 years")

	if d.Type != model.TypeTrendOverTime {
		t.Fatalf("expected trend_over_time, got %s", d.Type)
	}
	if !reflect.DeepEqual(d.Indicators, []string{"unemployment"}) {
		t.Errorf("unexpected indicators: %v", d.Indicators)
	}
	if !reflect.DeepEqual(d.Locations, []string{"TX"}) {
		t.Errorf("unexpected locations: %v", d.Locations)
	}
	if !reflect.DeepEqual(d.TimePeriods, []string{"last 5 years"}) {
		t.Errorf("unexpected periods: %v", d.TimePeriods)
	}
	if d.ChartKind != model.ChartLine {
		t.Errorf("expected line chart, got %s", d.ChartKind)
	}
}

func TestParse_SearchKeyword(t *testing.T) {
	p := newTestParser()
	d := p.Parse("Search for housing affordability")

	if d.Type != model.TypeSeriesSearch {
		t.Fatalf("expected series_search, got %s", d.Type)
	}
	// Search queries keep an empty period list.
	if len(d.TimePeriods) != 0 {
		t.Errorf("expected no periods, got %v", d.TimePeriods)
	}
}

func TestParse_EntityFreeTextFallsBackToSearch(t *testing.T) {
	p := newTestParser()
	d := p.Parse("semiconductor shipments worldwide")

	if d.Type != model.TypeSeriesSearch {
		t.Fatalf("expected series_search fallback, got %s", d.Type)
	}
}

func TestParse_EmptyQueryIsUnknown(t *testing.T) {
	p := newTestParser()
	d := p.Parse("   ")
	if d.Type != model.TypeUnknown {
		t.Fatalf("expected unknown, got %s", d.Type)
	}
}

func TestParse_IndicatorComparisonChart(t *testing.T) {
	p := newTestParser()
	d := p.Parse("Chart inflation vs unemployment")

	if d.Type != model.TypeIndicatorComparison {
		t.Fatalf("expected indicator_comparison, got %s", d.Type)
	}
	if d.ChartKind != model.ChartCompBar {
		t.Errorf("expected comparison bar chart, got %s", d.ChartKind)
	}
}

func TestParse_GenericComparisonNeedsMoreInfo(t *testing.T) {
	p := newTestParser()
	d := p.Parse("compare stuff")

	if d.Type != model.TypeComparisonGeneric {
		t.Fatalf("expected generic comparison, got %s", d.Type)
	}
	if len(d.TimePeriods) != 0 {
		t.Errorf("generic comparison should not default periods, got %v", d.TimePeriods)
	}
}

func TestParse_NoVizKeywordMeansNoChart(t *testing.T) {
	p := newTestParser()
	d := p.Parse("GDP history for California")
	if d.ChartKind != model.ChartNone {
		t.Errorf("expected no chart, got %s", d.ChartKind)
	}
}

func TestExtractTimePeriods_Order(t *testing.T) {
	got := extractTimePeriods("gdp between 2010 and 2015, latest figures for the last 3 quarters")
	want := []string{"2010", "2015", "last 3 quarters", "latest", "2010 to 2015"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractKeys_OrderedByOccurrence(t *testing.T) {
	lex := lexicon.Default()
	got := extractKeys("unemployment and gdp for new york", lex.Indicators)
	want := []string{"unemployment", "gdp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractKeys_WordBoundary(t *testing.T) {
	lex := lexicon.Default()
	// "us" must not match inside "house".
	got := extractKeys("house prices are rising", lex.Locations)
	if len(got) != 0 {
		t.Errorf("expected no locations, got %v", got)
	}
}
