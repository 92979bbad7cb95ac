package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"EconScout/internal/model"
)

// DefaultFredBaseURL is the public FRED API root.
const DefaultFredBaseURL = "https://api.stlouisfed.org/fred"

// FredFetcher implements Fetcher against the St. Louis Fed FRED REST API.
type FredFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewFredFetcher creates a FRED fetcher with optional proxy support.
func NewFredFetcher(baseURL, apiKey, proxyURL string) *FredFetcher {
	if baseURL == "" {
		baseURL = DefaultFredBaseURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FredFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *FredFetcher) Name() string { return "fred" }

// fredSeries is the series record shape shared by the series and search
// endpoints.
type fredSeries struct {
	ID                      string `json:"id"`
	Title                   string `json:"title"`
	Units                   string `json:"units"`
	Frequency               string `json:"frequency"`
	SeasonalAdjustment      string `json:"seasonal_adjustment"`
	SeasonalAdjustmentShort string `json:"seasonal_adjustment_short"`
	Notes                   string `json:"notes"`
	Popularity              int    `json:"popularity"`
	ObservationStart        string `json:"observation_start"`
	ObservationEnd          string `json:"observation_end"`
	LastUpdated             string `json:"last_updated"`
}

func (s fredSeries) toInfo() model.SeriesInfo {
	return model.SeriesInfo{
		ID:                      s.ID,
		Title:                   s.Title,
		Units:                   s.Units,
		Frequency:               s.Frequency,
		SeasonalAdjustment:      s.SeasonalAdjustment,
		SeasonalAdjustmentShort: s.SeasonalAdjustmentShort,
		Notes:                   s.Notes,
		Popularity:              s.Popularity,
		ObservationStart:        s.ObservationStart,
		ObservationEnd:          s.ObservationEnd,
		LastUpdated:             s.LastUpdated,
	}
}

func (f *FredFetcher) get(path string, params url.Values, out any) error {
	params.Set("api_key", f.APIKey)
	params.Set("file_type", "json")
	u := fmt.Sprintf("%s/%s?%s", f.BaseURL, path, params.Encode())

	resp, err := f.Client.Get(u)
	if err != nil {
		return fmt.Errorf("fred fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("fred read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fred %s: status %d, body: %s", path, resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("fred decode %s: %w", path, err)
	}
	return nil
}

func (f *FredFetcher) SearchSeries(text string, limit int) ([]model.SeriesInfo, error) {
	params := url.Values{}
	params.Set("search_text", text)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("order_by", "search_rank")

	var result struct {
		Seriess []fredSeries `json:"seriess"`
	}
	if err := f.get("series/search", params, &result); err != nil {
		return nil, err
	}

	infos := make([]model.SeriesInfo, 0, len(result.Seriess))
	for _, s := range result.Seriess {
		infos = append(infos, s.toInfo())
	}
	return infos, nil
}

func (f *FredFetcher) SeriesInfo(id string) (*model.SeriesInfo, error) {
	params := url.Values{}
	params.Set("series_id", id)

	var result struct {
		Seriess []fredSeries `json:"seriess"`
	}
	if err := f.get("series", params, &result); err != nil {
		return nil, err
	}
	if len(result.Seriess) == 0 {
		return nil, fmt.Errorf("fred: no series info for %s", id)
	}
	info := result.Seriess[0].toInfo()
	return &info, nil
}

func (f *FredFetcher) Observations(id, startDate, endDate string) ([]model.DataPoint, error) {
	params := url.Values{}
	params.Set("series_id", id)
	if startDate != "" {
		params.Set("observation_start", startDate)
	}
	if endDate != "" {
		params.Set("observation_end", endDate)
	}

	var result struct {
		Observations []struct {
			Date  string `json:"date"`
			Value string `json:"value"`
		} `json:"observations"`
	}
	if err := f.get("series/observations", params, &result); err != nil {
		return nil, err
	}

	points := make([]model.DataPoint, 0, len(result.Observations))
	for _, obs := range result.Observations {
		if obs.Value == "." {
			continue // FRED marks missing observations with "."
		}
		date, err := time.Parse("2006-01-02", obs.Date)
		if err != nil {
			log.Printf("[WARN] fred: skipping observation with bad date %q for %s", obs.Date, id)
			continue
		}
		v, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			log.Printf("[WARN] fred: skipping non-numeric observation %q for %s", obs.Value, id)
			continue
		}
		points = append(points, model.DataPoint{Date: date, Value: &v})
	}
	return points, nil
}
