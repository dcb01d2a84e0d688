package etchmap

import (
	"fmt"
	"math"
)

// RadialFieldBuilder evaluates a RadialProfile over a Grid, masking every
// point farther than Radius from the center.
type RadialFieldBuilder struct {
	Profile *RadialProfile
	Grid    Grid
	Radius  float64
}

// NewRadialFieldBuilder builds the profile for series and an n×n grid over
// [-radius, radius]².
func NewRadialFieldBuilder(series SampleSeries, n int, radius float64, mode ProfileMode) (*RadialFieldBuilder, error) {
	prof, err := NewRadialProfile(series, radius, mode)
	if err != nil {
		return nil, err
	}
	g, err := NewGrid(n, radius)
	if err != nil {
		return nil, err
	}
	return &RadialFieldBuilder{Profile: prof, Grid: g, Radius: radius}, nil
}

// ValueAt evaluates the profile at an arbitrary position (mm). ok is false
// outside the wafer disk.
func (b *RadialFieldBuilder) ValueAt(x, y float64) (v float64, ok bool) {
	d := math.Hypot(x, y)
	if !(d <= b.Radius) {
		return 0, false
	}
	return b.Profile.Eval(d), true
}

// Build evaluates every grid point.
func (b *RadialFieldBuilder) Build() *Field {
	n := b.Grid.N
	f := &Field{
		Grid: b.Grid,
		vals: make([]float64, b.Grid.Points()),
		mask: newMask(b.Grid.Points()),
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			d := b.Grid.Dist(i, j)
			if !(d <= b.Radius) {
				continue
			}
			idx := j*n + i
			f.vals[idx] = b.Profile.Eval(d)
			f.mask.set(idx)
		}
	}
	return f
}

// BuildField is the one-shot form: cfg's series, resolution, radius and
// profile mode straight to a Field. The builder is returned as well for
// exact point queries and the profile table.
func BuildField(cfg Config) (*RadialFieldBuilder, *Field, error) {
	mode, err := ParseProfileMode(cfg.Mode)
	if err != nil {
		return nil, nil, err
	}
	b, err := NewRadialFieldBuilder(cfg.Samples, cfg.Points, cfg.Radius, mode)
	if err != nil {
		return nil, nil, fmt.Errorf("build field: %w", err)
	}
	return b, b.Build(), nil
}
