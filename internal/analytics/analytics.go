// Package analytics computes normalization and growth statistics over a
// fetched series. All operations are pure functions of the input points and
// report undefined cases as tagged soft failures, never as panics or
// sentinel floats smuggled through a success path.
package analytics

import (
	"errors"

	"EconScout/internal/model"
)

// Normalization status values recorded in dataset metadata.
const (
	StatusSuccess     = "success"
	StatusEmptySeries = "empty_series"
	StatusFailed      = "normalization_failed"
)

var (
	// ErrInsufficientData means the series lacks two distinct valid points.
	ErrInsufficientData = errors.New("not enough valid data points")
	// ErrUndefinedExponent means the growth ratio is negative and the
	// exponent is fractional, which has no real-valued result.
	ErrUndefinedExponent = errors.New("negative ratio with non-integer exponent")
)

// firstValid returns the earliest point with a present value, or nil.
func firstValid(points []model.DataPoint) *model.DataPoint {
	for i := range points {
		if points[i].Value != nil {
			return &points[i]
		}
	}
	return nil
}

// lastValid returns the latest point with a present value, or nil.
func lastValid(points []model.DataPoint) *model.DataPoint {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Value != nil {
			return &points[i]
		}
	}
	return nil
}
