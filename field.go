package etchmap

import "math"

// Field is a Grid plus one value per point inside the wafer disk.
// Points outside the disk carry no value; read them through At or Lookup,
// which report ok=false, rather than through a sentinel.
type Field struct {
	Grid Grid

	vals []float64 // row-major, len Grid.Points(); zero where masked
	mask Mask
}

// At returns the value at column i, row j. ok is false outside the wafer
// disk or outside the grid.
func (f *Field) At(i, j int) (v float64, ok bool) {
	if !f.Grid.Contains(i, j) {
		return 0, false
	}
	idx := j*f.Grid.N + i
	if !f.mask.Bit(idx) {
		return 0, false
	}
	return f.vals[idx], true
}

// Lookup returns the nearest-neighbour value at position (x, y) in mm.
func (f *Field) Lookup(x, y float64) (v float64, ok bool) {
	i, j := f.Grid.XYToIJ(x, y)
	return f.At(i, j)
}

// Valid returns the number of points inside the wafer disk.
func (f *Field) Valid() int { return f.mask.Count(f.Grid.Points()) }

// Mask returns the validity bitmap. The caller must not modify it.
func (f *Field) Mask() Mask { return f.mask }

// Packed returns the valid values in row-major order, one per set mask bit.
func (f *Field) Packed() []float64 {
	out := make([]float64, 0, f.Valid())
	for idx, v := range f.vals {
		if f.mask.Bit(idx) {
			out = append(out, v)
		}
	}
	return out
}

// Dense returns all N*N values row-major with masked points set to fill.
// Use math.NaN() as fill only when handing the grid to code that expects
// NaN holes, such as a plotting library.
func (f *Field) Dense(fill float64) []float64 {
	out := make([]float64, len(f.vals))
	for idx, v := range f.vals {
		if f.mask.Bit(idx) {
			out[idx] = v
		} else {
			out[idx] = fill
		}
	}
	return out
}

// Range returns the smallest and largest valid values. ok is false when the
// field has no valid points.
func (f *Field) Range() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for idx, v := range f.vals {
		if !f.mask.Bit(idx) {
			continue
		}
		ok = true
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return
}

// Stats summarises the valid points of the field.
func (f *Field) Stats() (Stats, error) {
	return computeStats(f.Packed())
}
