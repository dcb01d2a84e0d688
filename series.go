// Package etchmap turns a line of etch-rate measurements across a wafer
// diameter into a radially symmetric 2D field ("bullseye" map) over the wafer
// disk, with summary statistics and a contour rendering in package render.
package etchmap

import (
	"fmt"
	"math"
)

// SampleSeries is an ordered line of measurements across a wafer diameter,
// assumed symmetric about Center().
type SampleSeries []float64

// RIELab6 is the etch-rate line (Å/s) measured in the RIE lab run.
// The center sample is index 9 (9.01).
var RIELab6 = SampleSeries{
	8.85, 8.90, 8.92, 8.95, 8.97, 8.99, 8.99, 9.00, 8.99, 9.01,
	8.99, 8.98, 8.98, 8.97, 8.96, 8.96, 8.94, 8.92, 8.92,
}

// Center returns the center index, floor(L/2).
func (s SampleSeries) Center() int { return len(s) / 2 }

// Validate checks that the series can produce a radial profile:
// at least 2 samples, all finite.
func (s SampleSeries) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("series: need at least 2 samples, got %d", len(s))
	}
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("series: sample %d is not finite (%g)", i, v)
		}
	}
	return nil
}

// Asymmetry returns the largest |s[c-k] - s[c+k]| over all mirrored pairs
// around the center index. Zero means the series is symmetric, which is the
// assumption behind the first-half profile.
func (s SampleSeries) Asymmetry() float64 {
	c := s.Center()
	worst := 0.0
	for k := 1; c-k >= 0 && c+k < len(s); k++ {
		if d := math.Abs(s[c-k] - s[c+k]); d > worst {
			worst = d
		}
	}
	return worst
}

// Clone returns an independent copy of the series.
func (s SampleSeries) Clone() SampleSeries {
	out := make(SampleSeries, len(s))
	copy(out, s)
	return out
}
