package etchmap_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geal-ai/etchmap"
)

// goldenPoint mirrors the "points" entries in testdata/golden_rie.json.
type goldenPoint struct {
	Name   string  `json:"name"`
	I      int     `json:"i"`
	J      int     `json:"j"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Value  float64 `json:"value"`
	Masked bool    `json:"masked"`
}

// goldenFile mirrors the top-level structure of testdata/golden_rie.json.
type goldenFile struct {
	Source    string        `json:"source"`
	Config    string        `json:"config"`
	Tolerance float64       `json:"tolerance"`
	Points    []goldenPoint `json:"points"`
}

const goldenPath = "testdata/golden_rie.json"

// TestGoldenField builds the field from the committed config and checks
// selected grid points against hand-computed values.
func TestGoldenField(t *testing.T) {
	raw, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	var golden goldenFile
	require.NoError(t, json.Unmarshal(raw, &golden))

	cfg, err := etchmap.LoadConfig(golden.Config)
	require.NoError(t, err)
	_, field, err := etchmap.BuildField(cfg)
	require.NoError(t, err)

	tol := golden.Tolerance
	if tol == 0 {
		tol = 1e-9
	}
	for _, ref := range golden.Points {
		t.Run(ref.Name, func(t *testing.T) {
			x, y := field.Grid.IJToXY(ref.I, ref.J)
			assert.InDelta(t, ref.X, x, 1e-9, "x of (%d,%d)", ref.I, ref.J)
			assert.InDelta(t, ref.Y, y, 1e-9, "y of (%d,%d)", ref.I, ref.J)

			got, ok := field.At(ref.I, ref.J)
			if ref.Masked {
				assert.False(t, ok, "want masked, got %g", got)
				return
			}
			require.True(t, ok, "want %g, got masked", ref.Value)
			assert.InDelta(t, ref.Value, got, tol)
		})
	}
}
