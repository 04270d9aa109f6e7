package utils

import (
	"golang.org/x/exp/constraints"
)

// IsStrictlyIncreasing returns true if every element of s is
// strictly larger than the previous one. Empty and single-element
// slices are strictly increasing.
func IsStrictlyIncreasing[V constraints.Ordered](s []V) bool {
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return false
		}
	}
	return true
}
