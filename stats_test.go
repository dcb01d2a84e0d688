package etchmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geal-ai/etchmap"
)

func TestSeriesStatsRIE(t *testing.T) {
	s, err := etchmap.SeriesStats(etchmap.RIELab6)
	require.NoError(t, err)
	assert.Equal(t, 19, s.Count)
	assert.Equal(t, 8.85, s.Min)
	assert.Equal(t, 9.01, s.Max)
	assert.InDelta(t, 170.19/19, s.Mean, 1e-9)
	assert.InDelta(t, 0.16/(2*s.Mean)*100, s.NonUniformity, 1e-9)
	assert.InDelta(t, 0.893, s.NonUniformity, 1e-3)
	assert.Greater(t, s.StdDev, 0.0)
}

func TestStatsSingleValue(t *testing.T) {
	s, err := etchmap.SeriesStats(etchmap.SampleSeries{4.2})
	require.NoError(t, err)
	assert.Equal(t, etchmap.Stats{Count: 1, Min: 4.2, Max: 4.2, Mean: 4.2}, s)
}

func TestStatsZeroMean(t *testing.T) {
	s, err := etchmap.SeriesStats(etchmap.SampleSeries{-1, 1})
	require.NoError(t, err)
	assert.Zero(t, s.NonUniformity, "non-uniformity is undefined for a zero mean")
}

func TestStatsEmpty(t *testing.T) {
	_, err := etchmap.SeriesStats(nil)
	assert.ErrorContains(t, err, "no values")
}

func TestFieldStats(t *testing.T) {
	_, f := buildRIE(t, 101)
	s, err := f.Stats()
	require.NoError(t, err)
	assert.Equal(t, f.Valid(), s.Count)
	assert.Equal(t, 8.85, s.Min)
	assert.Equal(t, 9.01, s.Max)
	// Area weighting pulls the mean toward the outer rings.
	assert.Less(t, s.Mean, 8.99)
	assert.Greater(t, s.Mean, 8.85)
}
