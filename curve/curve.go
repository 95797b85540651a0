// Package curve maps pairs of 16-bit coordinates onto [0, 1] along a Z-order curve, and back.
package curve

import "math"

// Map interleaves the bits of x (on even bits) and y (on odd bits) and scales the result to [0, 1].
func Map(x, y uint16) float64 {
	return float64(spread(x)|spread(y)<<1) / math.MaxUint32
}

// ReverseMap returns the coordinates n was mapped from.
func ReverseMap(n float64) (x, y uint16) {
	idx := uint32(math.Round(n * math.MaxUint32))
	return compact(idx), compact(idx >> 1)
}

// spread moves bit i of v to bit 2i.
func spread(v uint16) uint32 {
	x := uint32(v)
	x = (x | x<<8) & 0x00FF00FF
	x = (x | x<<4) & 0x0F0F0F0F
	x = (x | x<<2) & 0x33333333
	x = (x | x<<1) & 0x55555555
	return x
}

// compact moves bit 2i of v to bit i, dropping odd bits.
func compact(v uint32) uint16 {
	x := v & 0x55555555
	x = (x | x>>1) & 0x33333333
	x = (x | x>>2) & 0x0F0F0F0F
	x = (x | x>>4) & 0x00FF00FF
	x = (x | x>>8) & 0x0000FFFF
	return uint16(x)
}
