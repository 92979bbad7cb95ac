package analytics

import (
	"math"

	"EconScout/internal/model"
)

const daysPerYear = 365.25

// signedInf follows the zero-start convention: +Inf when the other endpoint
// is positive, -Inf when negative, 0 when it is also zero.
func signedInf(endValue float64) float64 {
	switch {
	case endValue > 0:
		return math.Inf(1)
	case endValue < 0:
		return math.Inf(-1)
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalGrowth computes growth between the first and last valid points as a
// percentage. It reports ErrInsufficientData when fewer than two distinct
// valid points exist. A zero start value yields a signed infinity with an
// explanatory note rather than a division by zero.
func TotalGrowth(series model.SeriesData) (*model.GrowthMetric, error) {
	fv := firstValid(series.Points)
	lv := lastValid(series.Points)
	if fv == nil || lv == nil || fv.Date.Equal(lv.Date) {
		return nil, ErrInsufficientData
	}

	start, end := *fv.Value, *lv.Value
	m := &model.GrowthMetric{
		StartDate:  fv.Date.Format(dateLayout),
		EndDate:    lv.Date.Format(dateLayout),
		StartValue: start,
		EndValue:   end,
	}

	if start == 0 {
		m.TotalGrowthPct = signedInf(end)
		m.Notes = "start value is 0"
		return m, nil
	}

	m.TotalGrowthPct = (end/start - 1) * 100
	return m, nil
}

// CAGR computes the compound annual growth rate between the first and last
// valid points. Elapsed years are (end-start) days / 365.25, rounded to two
// decimals in the result. Degenerate inputs (zero start, zero or negative
// duration, negative ratios with fractional exponents) follow the documented
// conventions and never panic.
func CAGR(series model.SeriesData) (*model.GrowthMetric, error) {
	fv := firstValid(series.Points)
	lv := lastValid(series.Points)
	if fv == nil || lv == nil {
		return nil, ErrInsufficientData
	}

	start, end := *fv.Value, *lv.Value
	years := lv.Date.Sub(fv.Date).Hours() / 24 / daysPerYear

	m := &model.GrowthMetric{
		StartDate:  fv.Date.Format(dateLayout),
		EndDate:    lv.Date.Format(dateLayout),
		StartValue: start,
		EndValue:   end,
	}

	if start == 0 {
		m.CAGRPct = signedInf(end)
		m.Years = round2(math.Max(years, 0))
		m.Notes = "start value is 0"
		return m, nil
	}

	if years <= 0 {
		m.Years = round2(years)
		if start == end {
			m.CAGRPct = 0
			m.Notes = "zero or negative duration, same start and end value"
		} else if end > start {
			m.CAGRPct = math.Inf(1)
			m.Notes = "zero or negative duration, different start and end values"
		} else {
			m.CAGRPct = math.Inf(-1)
			m.Notes = "zero or negative duration, different start and end values"
		}
		return m, nil
	}

	ratio := end / start
	exponent := 1 / years
	if ratio < 0 {
		// A negative base raised to a fractional power has no real result.
		// Only an integer exponent is well-defined (e.g. half a year gives
		// exponent 2); math.Pow handles negative bases correctly for those.
		if exponent != math.Trunc(exponent) {
			return nil, ErrUndefinedExponent
		}
	}

	m.CAGRPct = (math.Pow(ratio, exponent) - 1) * 100
	m.Years = round2(years)
	return m, nil
}
