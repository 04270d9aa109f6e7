// Package ring implements arithmetic over polynomials with integer coefficients,
// optionally reduced modulo a small integer m, i.e. over Z[X] and (Z/mZ)[X].
//
// Polynomials are immutable values: every operation allocates and returns a
// new [Poly] and never modifies its operands.
package ring

import (
	"errors"
)

// MaxModulus is the largest coefficient modulus accepted by the modular
// operations. It guarantees that products of two reduced coefficients fit
// in an int64.
const MaxModulus = 1 << 31

// MaxCoefficients is the largest number of coefficients accepted when
// decoding a serialized [Poly].
const MaxCoefficients = 1 << 24

var (
	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("division by the zero polynomial")

	// ErrNonInvertibleLeadingCoefficient is returned when the leading
	// coefficient of the divisor has no inverse modulo m.
	ErrNonInvertibleLeadingCoefficient = errors.New("leading coefficient of the divisor is not invertible")

	// ErrInvalidModulus is returned for a coefficient modulus outside [2, MaxModulus].
	ErrInvalidModulus = errors.New("invalid coefficient modulus")
)

// checkModulus returns an error if m cannot be used as a coefficient modulus.
func checkModulus(m int64) error {
	if m < 2 || m > MaxModulus {
		return ErrInvalidModulus
	}
	return nil
}

// modCoeff returns the non-negative remainder of c mod m.
func modCoeff(c, m int64) int64 {
	if c %= m; c < 0 {
		c += m
	}
	return c
}

// modInverse returns the inverse of a modulo m, and false if it does not exist.
// a must be reduced modulo m.
func modInverse(a, m int64) (inv int64, ok bool) {
	r0, r1 := m, a
	t0, t1 := int64(0), int64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-q*t1
	}
	if r0 != 1 {
		return 0, false
	}
	return modCoeff(t0, m), true
}
