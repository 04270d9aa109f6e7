package ring

import (
	"fmt"

	"github.com/mathisbot/homomorph/utils"
)

// Add returns p + q.
func Add(p, q Poly) Poly {
	out := make([]int64, utils.Max(len(p.Coeffs), len(q.Coeffs)))
	for i := range out {
		out[i] = p.Coeff(i) + q.Coeff(i)
	}
	return Poly{Coeffs: out}.Trim()
}

// Sub returns p - q.
func Sub(p, q Poly) Poly {
	out := make([]int64, utils.Max(len(p.Coeffs), len(q.Coeffs)))
	for i := range out {
		out[i] = p.Coeff(i) - q.Coeff(i)
	}
	return Poly{Coeffs: out}.Trim()
}

// Neg returns -p.
func Neg(p Poly) Poly {
	return MulScalar(p, -1)
}

// MulScalar returns c * p.
func MulScalar(p Poly, c int64) Poly {
	out := make([]int64, len(p.Coeffs))
	for i := range out {
		out[i] = c * p.Coeffs[i]
	}
	return Poly{Coeffs: out}.Trim()
}

// Mul returns the product p * q as the full convolution of their
// coefficients. The result is exact: no truncation of the degree and no
// coefficient reduction is applied.
func Mul(p, q Poly) Poly {

	dp, dq := p.Degree(), q.Degree()

	if dp == -1 || dq == -1 {
		return Poly{}
	}

	out := make([]int64, dp+dq+1)
	for i, a := range p.Coeffs[:dp+1] {
		if a == 0 {
			continue
		}
		for j, b := range q.Coeffs[:dq+1] {
			out[i+j] += a * b
		}
	}

	return Poly{Coeffs: out}
}

// MulByMonomial returns p * X^k.
func MulByMonomial(p Poly, k int) Poly {

	if k < 0 {
		panic(fmt.Errorf("cannot MulByMonomial: negative degree %d", k))
	}

	deg := p.Degree()
	if deg == -1 {
		return Poly{}
	}

	out := make([]int64, deg+k+1)
	copy(out[k:], p.Coeffs[:deg+1])
	return Poly{Coeffs: out}
}

// Reduce returns the polynomial whose coefficients are the non-negative
// remainders of the coefficients of p modulo m.
// It panics if m is not positive.
func Reduce(p Poly, m int64) Poly {

	if m <= 0 {
		panic(fmt.Errorf("cannot Reduce: modulus must be positive but is %d", m))
	}

	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = modCoeff(c, m)
	}
	return Poly{Coeffs: out}.Trim()
}
