package etchmap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// ProfileMode selects how a SampleSeries is folded into a radial profile.
type ProfileMode string

const (
	// FirstHalf uses s[c], s[c-1], ..., s[0] and ignores the second half.
	FirstHalf ProfileMode = "first-half"
	// Mirrored averages s[c-k] and s[c+k] wherever both exist.
	Mirrored ProfileMode = "mirrored"
)

// ParseProfileMode maps a flag or config string to a ProfileMode.
// The empty string selects FirstHalf.
func ParseProfileMode(s string) (ProfileMode, error) {
	switch ProfileMode(s) {
	case "", FirstHalf:
		return FirstHalf, nil
	case Mirrored:
		return Mirrored, nil
	}
	return "", fmt.Errorf("unknown profile mode %q (supported: %s, %s)", s, FirstHalf, Mirrored)
}

// RadialProfile maps distance from the wafer center to a value.
// Radii are strictly increasing from 0 to the wafer radius.
type RadialProfile struct {
	Radii  []float64
	Values []float64

	pl interp.PiecewiseLinear
}

// NewRadialProfile folds series into floor(L/2)+1 evenly spaced points on
// [0, radius], center value first.
func NewRadialProfile(series SampleSeries, radius float64, mode ProfileMode) (*RadialProfile, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("profile: radius must be positive and finite, got %g", radius)
	}

	if mode != FirstHalf && mode != Mirrored {
		return nil, fmt.Errorf("profile: unknown mode %q", mode)
	}

	c := series.Center()
	vals := make([]float64, c+1)
	for k := 0; k <= c; k++ {
		v := series[c-k]
		if mode == Mirrored && k > 0 && c+k < len(series) {
			v = v/2 + series[c+k]/2
		}
		vals[k] = v
	}
	radii := floats.Span(make([]float64, c+1), 0, radius)
	// Span may land an ulp off the end; a point at exactly radius must hit
	// the last value.
	radii[c] = radius

	p := &RadialProfile{Radii: radii, Values: vals}
	if err := p.fit(); err != nil {
		return nil, err
	}
	return p, nil
}

// fit checks strict monotonicity before handing the table to gonum, whose
// Fit panics on unsorted or short input.
func (p *RadialProfile) fit() error {
	if len(p.Radii) != len(p.Values) {
		return fmt.Errorf("profile: %d radii but %d values", len(p.Radii), len(p.Values))
	}
	if len(p.Radii) < 2 {
		return fmt.Errorf("profile: need at least 2 points, got %d", len(p.Radii))
	}
	for i := 1; i < len(p.Radii); i++ {
		if !(p.Radii[i] > p.Radii[i-1]) {
			return fmt.Errorf("profile: radii not strictly increasing at %d (%g after %g)",
				i, p.Radii[i], p.Radii[i-1])
		}
	}
	return p.pl.Fit(p.Radii, p.Values)
}

// Eval returns the piecewise-linear value at distance d, clamped to the
// first value below Radii[0] and the last value beyond the outermost radius.
func (p *RadialProfile) Eval(d float64) float64 {
	return p.pl.Predict(d)
}

// MaxRadius returns the outermost profile radius.
func (p *RadialProfile) MaxRadius() float64 { return p.Radii[len(p.Radii)-1] }

// Len returns the number of profile points.
func (p *RadialProfile) Len() int { return len(p.Radii) }
