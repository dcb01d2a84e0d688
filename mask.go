package etchmap

// Mask is an MSB-first validity bitmap over grid points: bit 7 of byte 0 is
// point 0, bit 6 of byte 0 is point 1, and so on. A set bit means the point
// carries a value.
type Mask []byte

// newMask returns an all-clear mask for n points.
func newMask(n int) Mask { return make(Mask, (n+7)/8) }

// set marks point i as valid.
func (m Mask) set(i int) { m[i/8] |= 1 << uint(7-(i%8)) }

// Bit reports whether point i has data. Out-of-range points have none.
func (m Mask) Bit(i int) bool {
	byteIdx := i / 8
	if i < 0 || byteIdx >= len(m) {
		return false
	}
	return (m[byteIdx]>>uint(7-(i%8)))&1 == 1
}

// Count returns the number of set bits among the first n points.
func (m Mask) Count(n int) int {
	c := 0
	for i := 0; i < n; i++ {
		if m.Bit(i) {
			c++
		}
	}
	return c
}
