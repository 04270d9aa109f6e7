package ring

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mathisbot/homomorph/utils"
	"github.com/mathisbot/homomorph/utils/buffer"
)

// Poly is a polynomial with integer coefficients.
// Coeffs[i] is the coefficient of X^i. Missing high-degree coefficients
// are zero, and trailing zero coefficients are allowed: two polynomials
// differing only by trailing zeros are equal.
type Poly struct {
	Coeffs []int64
}

// NewPoly returns a new polynomial with a copy of the given coefficients,
// the i-th being the coefficient of X^i.
func NewPoly(coeffs ...int64) Poly {
	c := make([]int64, len(coeffs))
	copy(c, coeffs)
	return Poly{Coeffs: c}
}

// Monomial returns the polynomial X^k.
func Monomial(k int) Poly {
	if k < 0 {
		panic(fmt.Errorf("cannot Monomial: negative degree %d", k))
	}
	c := make([]int64, k+1)
	c[k] = 1
	return Poly{Coeffs: c}
}

// Constant returns the polynomial of degree zero with value x.
func Constant(x int64) Poly {
	return Poly{Coeffs: []int64{x}}
}

// Degree returns the degree of the polynomial, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i] != 0 {
			return i
		}
	}
	return -1
}

// Coeff returns the coefficient of X^i, which is zero past the stored coefficients.
func (p Poly) Coeff(i int) int64 {
	if i < 0 || i >= len(p.Coeffs) {
		return 0
	}
	return p.Coeffs[i]
}

// IsZero returns true if all the coefficients are zero.
func (p Poly) IsZero() bool {
	return p.Degree() == -1
}

// Evaluate returns p(x), computed with Horner's method.
// Evaluate(0) is the constant coefficient.
// The computation wraps silently on int64 overflow.
func (p Poly) Evaluate(x int64) (y int64) {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}
	return
}

// Trim returns a copy of the polynomial without its trailing zero coefficients.
func (p Poly) Trim() Poly {
	return NewPoly(p.Coeffs[:p.Degree()+1]...)
}

// CopyNew creates an exact copy of the target polynomial.
func (p Poly) CopyNew() *Poly {
	cpy := NewPoly(p.Coeffs...)
	return &cpy
}

// Equal returns true if both polynomials have the same coefficients,
// ignoring trailing zeros.
func (p Poly) Equal(other *Poly) bool {
	if other == nil {
		return false
	}

	n := utils.Max(len(p.Coeffs), len(other.Coeffs))
	for i := 0; i < n; i++ {
		if p.Coeff(i) != other.Coeff(i) {
			return false
		}
	}
	return true
}

// String returns a human readable representation of the polynomial,
// starting from the highest degree term, e.g. "X^3 + 2*X - 1".
func (p Poly) String() string {

	deg := p.Degree()
	if deg == -1 {
		return "0"
	}

	var sb strings.Builder
	for i := deg; i >= 0; i-- {

		c := p.Coeffs[i]
		if c == 0 {
			continue
		}

		switch {
		case i == deg && c < 0:
			sb.WriteString("-")
		case i != deg && c < 0:
			sb.WriteString(" - ")
		case i != deg:
			sb.WriteString(" + ")
		}

		if c < 0 {
			c = -c
		}

		switch {
		case i == 0:
			fmt.Fprintf(&sb, "%d", c)
		case c != 1:
			fmt.Fprintf(&sb, "%d*", c)
		}

		switch {
		case i == 1:
			sb.WriteString("X")
		case i > 1:
			fmt.Fprintf(&sb, "X^%d", i)
		}
	}

	return sb.String()
}

// BinarySize returns the serialized size of the object in bytes.
func (p Poly) BinarySize() int {
	return 8 + 8*len(p.Coeffs)
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (p Poly) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64(w, len(p.Coeffs)); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = buffer.WriteAsUint64Slice(w, p.Coeffs); err != nil {
			return n + inc, err
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (p *Poly) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int
		if inc, err = buffer.ReadAsUint64(r, &size); err != nil {
			return n + inc, fmt.Errorf("cannot ReadFrom: size: %w", err)
		}

		n += inc

		if size < 0 || size > MaxCoefficients {
			return n, fmt.Errorf("cannot ReadFrom: invalid number of coefficients %d", size)
		}

		// the backing array is never reused: it may be shared with other values
		p.Coeffs = make([]int64, size)

		if inc, err = buffer.ReadAsUint64Slice(r, p.Coeffs); err != nil {
			return n + inc, fmt.Errorf("cannot ReadFrom: coefficients: %w", err)
		}

		return n + inc, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p Poly) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Poly) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}
