package etchmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geal-ai/etchmap"
)

// rieProfileValues is RIELab6[9], RIELab6[8], ..., RIELab6[0].
var rieProfileValues = []float64{9.01, 8.99, 9.00, 8.99, 8.99, 8.97, 8.95, 8.92, 8.90, 8.85}

func TestNewRadialProfileRIE(t *testing.T) {
	p, err := etchmap.NewRadialProfile(etchmap.RIELab6, 150, etchmap.FirstHalf)
	require.NoError(t, err)

	assert.Equal(t, 10, p.Len())
	assert.Equal(t, rieProfileValues, p.Values)
	assert.Equal(t, 0.0, p.Radii[0])
	assert.Equal(t, 150.0, p.MaxRadius())
	for i := 1; i < len(p.Radii); i++ {
		assert.Greater(t, p.Radii[i], p.Radii[i-1], "radii must be strictly increasing at %d", i)
		assert.InDelta(t, 150.0/9, p.Radii[i]-p.Radii[i-1], 1e-9, "uneven spacing at %d", i)
	}
}

func TestRadialProfileEval(t *testing.T) {
	p, err := etchmap.NewRadialProfile(etchmap.RIELab6, 150, etchmap.FirstHalf)
	require.NoError(t, err)
	step := 150.0 / 9

	tests := []struct {
		name string
		d    float64
		want float64
	}{
		{"center", 0, 9.01},
		{"below zero clamps", -10, 9.01},
		{"edge", 150, 8.85},
		{"beyond edge clamps", 1000, 8.85},
		{"first midpoint", step / 2, 9.00},
		{"knot 2", 2 * step, 9.00},
		{"inside flat segment", 3.5 * step, 8.99},
		{"last segment midpoint", 8.5 * step, 8.875},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, p.Eval(tc.d), 1e-9)
		})
	}
	// Exact, not approximate, at both ends.
	assert.Equal(t, 9.01, p.Eval(0))
	assert.Equal(t, 8.85, p.Eval(150))
}

func TestRadialProfileMirrored(t *testing.T) {
	p, err := etchmap.NewRadialProfile(etchmap.RIELab6, 150, etchmap.Mirrored)
	require.NoError(t, err)
	assert.Equal(t, 9.01, p.Values[0], "center is never averaged")
	assert.InDelta(t, 8.99, p.Values[1], 1e-12)
	assert.InDelta(t, 8.99, p.Values[2], 1e-12) // (9.00 + 8.98) / 2
	assert.InDelta(t, 8.885, p.Values[9], 1e-12)

	// Even length: the outermost point on the short side has no partner.
	p, err = etchmap.NewRadialProfile(etchmap.SampleSeries{1, 2, 3, 4}, 10, etchmap.Mirrored)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 1}, p.Values)
}

func TestRadialProfileTwoSamples(t *testing.T) {
	p, err := etchmap.NewRadialProfile(etchmap.SampleSeries{4, 6}, 10, etchmap.FirstHalf)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10}, p.Radii)
	assert.Equal(t, []float64{6, 4}, p.Values)
	assert.InDelta(t, 5.0, p.Eval(5), 1e-12)
}

// TestRadialProfileIgnoresSecondHalf: in first-half mode only s[0..c] matter.
func TestRadialProfileIgnoresSecondHalf(t *testing.T) {
	alt := etchmap.RIELab6.Clone()
	for i := alt.Center() + 1; i < len(alt); i++ {
		alt[i] = 100 + float64(i)
	}
	a, err := etchmap.NewRadialProfile(etchmap.RIELab6, 150, etchmap.FirstHalf)
	require.NoError(t, err)
	b, err := etchmap.NewRadialProfile(alt, 150, etchmap.FirstHalf)
	require.NoError(t, err)
	assert.Equal(t, a.Values, b.Values)
	assert.Equal(t, a.Radii, b.Radii)
}

func TestNewRadialProfileErrors(t *testing.T) {
	tests := []struct {
		name   string
		s      etchmap.SampleSeries
		radius float64
		mode   etchmap.ProfileMode
	}{
		{"empty series", nil, 150, etchmap.FirstHalf},
		{"one sample", etchmap.SampleSeries{9}, 150, etchmap.FirstHalf},
		{"NaN sample", etchmap.SampleSeries{1, math.NaN(), 3}, 150, etchmap.FirstHalf},
		{"zero radius", etchmap.RIELab6, 0, etchmap.FirstHalf},
		{"negative radius", etchmap.RIELab6, -1, etchmap.FirstHalf},
		{"NaN radius", etchmap.RIELab6, math.NaN(), etchmap.FirstHalf},
		{"Inf radius", etchmap.RIELab6, math.Inf(1), etchmap.FirstHalf},
		{"radius too small to space", etchmap.RIELab6, 5e-324, etchmap.FirstHalf},
		{"unknown mode", etchmap.RIELab6, 150, etchmap.ProfileMode("spline")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := etchmap.NewRadialProfile(tc.s, tc.radius, tc.mode)
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestParseProfileMode(t *testing.T) {
	tests := []struct {
		in   string
		want etchmap.ProfileMode
	}{
		{"", etchmap.FirstHalf},
		{"first-half", etchmap.FirstHalf},
		{"mirrored", etchmap.Mirrored},
	}
	for _, tc := range tests {
		got, err := etchmap.ParseProfileMode(tc.in)
		require.NoError(t, err, "ParseProfileMode(%q)", tc.in)
		assert.Equal(t, tc.want, got)
	}
	_, err := etchmap.ParseProfileMode("Mirrored")
	assert.ErrorContains(t, err, "unknown profile mode")
}
