package ring

import (
	"fmt"
)

// QuoRem performs the Euclidean division of p by q in (Z/mZ)[X] and returns
// the quotient and the remainder, both with coefficients in [0, m), such that
// p = quo * q + rem (mod m) and deg(rem) < deg(q).
//
// Working modulo m keeps every intermediate coefficient bounded, which an
// exact division over Z does not. For a monic divisor, reducing an exact
// remainder over Z modulo m gives the same result.
//
// It returns an error if m is not in [2, MaxModulus], if q is zero modulo m
// or if the leading coefficient of q is not invertible modulo m.
func QuoRem(p, q Poly, m int64) (quo, rem Poly, err error) {

	if err = checkModulus(m); err != nil {
		return Poly{}, Poly{}, fmt.Errorf("cannot QuoRem: %w: %d", err, m)
	}

	qm := Reduce(q, m)

	dq := qm.Degree()
	if dq == -1 {
		return Poly{}, Poly{}, fmt.Errorf("cannot QuoRem: %w", ErrDivisionByZero)
	}

	inv, ok := modInverse(qm.Coeffs[dq], m)
	if !ok {
		return Poly{}, Poly{}, fmt.Errorf("cannot QuoRem: %w: %d mod %d", ErrNonInvertibleLeadingCoefficient, qm.Coeffs[dq], m)
	}

	r := Reduce(p, m).Coeffs

	dr := len(r) - 1
	if dr < dq {
		return Poly{}, Poly{Coeffs: r}, nil
	}

	qo := make([]int64, dr-dq+1)

	for i := dr; i >= dq; i-- {

		c := r[i]
		if c == 0 {
			continue
		}

		f := (c * inv) % m
		qo[i-dq] = f

		shift := i - dq
		for j, b := range qm.Coeffs[:dq+1] {
			r[shift+j] = modCoeff(r[shift+j]-f*b, m)
		}
	}

	return Poly{Coeffs: qo}.Trim(), Poly{Coeffs: r}.Trim(), nil
}

// Mod returns the remainder of the Euclidean division of p by q in (Z/mZ)[X].
// See [QuoRem].
func Mod(p, q Poly, m int64) (rem Poly, err error) {
	if _, rem, err = QuoRem(p, q, m); err != nil {
		return Poly{}, fmt.Errorf("cannot Mod: %w", err)
	}
	return
}
