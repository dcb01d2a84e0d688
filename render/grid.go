package render

import (
	"math"
	"sort"

	"github.com/geal-ai/etchmap"
)

// fieldGrid adapts a Field to plotter.GridXYZ. Masked points come back as
// fill.
type fieldGrid struct {
	f        *etchmap.Field
	min, max float64
	fill     float64
}

// newFieldGrid spans the colour scale over both the data and the contour
// levels so level colours stay fixed across datasets. Masked points read
// as NaN, which the heat map leaves unpainted.
func newFieldGrid(f *etchmap.Field, levels []float64) *fieldGrid {
	lo, hi, _ := f.Range()
	if len(levels) > 0 {
		lo = math.Min(lo, levels[0])
		hi = math.Max(hi, levels[len(levels)-1])
	}
	if !(hi > lo) {
		// A flat field still needs a non-empty scale.
		hi = lo + 1
	}
	return &fieldGrid{f: f, min: lo, max: hi, fill: math.NaN()}
}

// sunk returns a copy of g whose masked points sit below every level.
// The contour tracer has no NaN handling, so it gets a finite floor and
// draws the lowest level along the wafer rim at worst.
func (g *fieldGrid) sunk() *fieldGrid {
	c := *g
	c.fill = g.min - (g.max - g.min)
	return &c
}

func (g *fieldGrid) Dims() (c, r int) { return g.f.Grid.N, g.f.Grid.N }

func (g *fieldGrid) Z(c, r int) float64 {
	v, ok := g.f.At(c, r)
	if !ok {
		return g.fill
	}
	return v
}

func (g *fieldGrid) X(c int) float64 { return g.f.Grid.X(c) }
func (g *fieldGrid) Y(r int) float64 { return g.f.Grid.Y(r) }

// Min and Max let plotter.NewHeatMap and NewContour skip their own scan.
func (g *fieldGrid) Min() float64 { return g.min }
func (g *fieldGrid) Max() float64 { return g.max }

// bandGrid reads a fieldGrid as level intervals: Z is k for
// levels[k] <= v < levels[k+1]. Values below the first level or at and
// above the last fall into the outermost bands. Masked points stay NaN.
type bandGrid struct {
	*fieldGrid
	levels []float64
}

// newBandGrid needs at least three sorted levels (two bands).
func newBandGrid(g *fieldGrid, levels []float64) *bandGrid {
	return &bandGrid{fieldGrid: g, levels: levels}
}

func (b *bandGrid) bands() int { return len(b.levels) - 1 }

func (b *bandGrid) Z(c, r int) float64 {
	v, ok := b.f.At(c, r)
	if !ok {
		return math.NaN()
	}
	return float64(band(b.levels, v))
}

func (b *bandGrid) Min() float64 { return 0 }
func (b *bandGrid) Max() float64 { return float64(b.bands() - 1) }

// band returns the interval of sorted levels holding v, clamped to
// [0, len(levels)-2].
func band(levels []float64, v float64) int {
	k := sort.Search(len(levels), func(i int) bool { return levels[i] > v }) - 1
	return max(0, min(len(levels)-2, k))
}
