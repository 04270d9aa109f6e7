// Package utils implements various helper functions.
package utils

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the two inputs.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the two inputs.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// MaxSlice returns the maximum value of the input slice.
// It panics if the slice is empty.
func MaxSlice[V constraints.Ordered](slice []V) (max V) {
	max = slice[0]
	for _, c := range slice[1:] {
		max = Max(max, c)
	}
	return
}

// BitLen64 returns the number of bits needed to represent x.
// BitLen64(0) is 0.
func BitLen64[V constraints.Unsigned](x V) int {
	return bits.Len64(uint64(x))
}
