package etchmap

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises a set of etch-rate values.
type Stats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	// NonUniformity is (max-min)/(2*mean) in percent.
	NonUniformity float64 `json:"nonuniformity_pct"`
}

func computeStats(vals []float64) (Stats, error) {
	if len(vals) == 0 {
		return Stats{}, fmt.Errorf("stats: no values")
	}
	s := Stats{
		Count: len(vals),
		Min:   floats.Min(vals),
		Max:   floats.Max(vals),
		Mean:  stat.Mean(vals, nil),
	}
	if len(vals) > 1 {
		s.StdDev = stat.StdDev(vals, nil)
	}
	if s.Mean != 0 {
		s.NonUniformity = (s.Max - s.Min) / (2 * s.Mean) * 100
	}
	return s, nil
}

// SeriesStats summarises the raw samples.
func SeriesStats(s SampleSeries) (Stats, error) {
	return computeStats(s)
}
