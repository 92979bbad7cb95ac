package analytics

import (
	"fmt"

	"EconScout/internal/model"
)

const dateLayout = "2006-01-02"

// Normalize rescales every value so the first valid point equals base
// (typically 100). Failures are soft: the returned dataset carries a status
// flag in its metadata and, when normalization is impossible, the original
// points unchanged. Division by zero is never attempted.
func Normalize(series model.SeriesData, base float64) model.ProcessedDataset {
	if len(series.Points) == 0 {
		return model.ProcessedDataset{
			ID:     series.SeriesID + "_normalized_empty",
			Name:   fmt.Sprintf("%s (Normalized - Empty)", series.Info.Title),
			Points: nil,
			Metadata: map[string]any{
				"original_series_id": series.SeriesID,
				"normalization_base": base,
				"status":             StatusEmptySeries,
			},
		}
	}

	fv := firstValid(series.Points)
	if fv == nil || *fv.Value == 0 {
		points := make([]model.DataPoint, len(series.Points))
		copy(points, series.Points)
		return model.ProcessedDataset{
			ID:     series.SeriesID + "_normalization_failed",
			Name:   fmt.Sprintf("%s (Normalization Failed)", series.Info.Title),
			Points: points,
			Metadata: map[string]any{
				"original_series_id": series.SeriesID,
				"normalization_base": base,
				"status":             StatusFailed,
				"reason":             "no valid first point or first point value is zero",
			},
		}
	}

	baseValue := *fv.Value
	baseDate := fv.Date.Format(dateLayout)
	points := make([]model.DataPoint, len(series.Points))
	for i, p := range series.Points {
		points[i] = model.DataPoint{Date: p.Date}
		if p.Value != nil {
			v := *p.Value / baseValue * base
			points[i].Value = &v
		}
	}

	return model.ProcessedDataset{
		ID:     series.SeriesID + "_normalized",
		Name:   fmt.Sprintf("%s (Normalized to %g at %s)", series.Info.Title, base, baseDate),
		Points: points,
		Metadata: map[string]any{
			"original_series_id":       series.SeriesID,
			"original_units":           series.Info.Units,
			"normalized_units":         fmt.Sprintf("Index (Base %g = %s)", base, baseDate),
			"normalization_base_value": baseValue,
			"normalization_base_date":  baseDate,
			"status":                   StatusSuccess,
		},
	}
}
