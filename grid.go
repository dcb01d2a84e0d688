package etchmap

import (
	"fmt"
	"math"
)

// Grid is a square Cartesian lattice of N×N points over [-Radius, Radius]²,
// in wafer millimetres. Column i runs along x, row j along y; both axes
// share the same coordinates. Values on the grid are stored row-major:
// vals[j*N + i].
type Grid struct {
	N      int
	Radius float64

	axis []float64
}

// NewGrid returns an n×n grid over [-radius, radius]². The first and last
// axis coordinates are exactly -radius and +radius.
func NewGrid(n int, radius float64) (Grid, error) {
	if n < 2 {
		return Grid{}, fmt.Errorf("grid: need at least 2 points per axis, got %d", n)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Grid{}, fmt.Errorf("grid: radius must be positive and finite, got %g", radius)
	}
	// int64 product so a huge n cannot wrap on 32-bit platforms.
	if int64(n)*int64(n) > maxGridPoints {
		return Grid{}, fmt.Errorf("grid: %d×%d exceeds maximum of %d points", n, n, maxGridPoints)
	}
	// Scale a unit coordinate rather than stepping from -radius: the span
	// 2*radius overflows for radii above MaxFloat64/2.
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = radius * (2*float64(i)/float64(n-1) - 1)
	}
	axis[0], axis[n-1] = -radius, radius
	return Grid{N: n, Radius: radius, axis: axis}, nil
}

// maxGridPoints caps field allocation; a 4096² map is already far beyond
// what a contour plot can show.
const maxGridPoints = 1 << 24

// Points returns N*N.
func (g *Grid) Points() int { return g.N * g.N }

// X returns the x coordinate of column i.
func (g *Grid) X(i int) float64 { return g.axis[i] }

// Y returns the y coordinate of row j.
func (g *Grid) Y(j int) float64 { return g.axis[j] }

// Axis returns a copy of the shared axis coordinates.
func (g *Grid) Axis() []float64 {
	out := make([]float64, len(g.axis))
	copy(out, g.axis)
	return out
}

// Step returns the spacing between adjacent grid coordinates.
func (g *Grid) Step() float64 { return 2 * (g.Radius / float64(g.N-1)) }

// Contains reports whether (i, j) is a valid grid index.
func (g *Grid) Contains(i, j int) bool {
	return i >= 0 && i < g.N && j >= 0 && j < g.N
}

// Dist returns the distance of grid point (i, j) from the wafer center.
func (g *Grid) Dist(i, j int) float64 {
	return math.Hypot(g.axis[i], g.axis[j])
}

// XYToIJ maps a position (mm) to the nearest grid indices. The result may
// lie outside the grid; check with Contains.
func (g *Grid) XYToIJ(x, y float64) (i, j int) {
	half := float64(g.N-1) / 2
	i = int(math.Round((x/g.Radius + 1) * half))
	j = int(math.Round((y/g.Radius + 1) * half))
	return
}

// IJToXY maps grid indices to a position (mm).
func (g *Grid) IJToXY(i, j int) (x, y float64) {
	return g.axis[i], g.axis[j]
}
