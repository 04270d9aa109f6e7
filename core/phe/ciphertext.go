package phe

import (
	"io"

	"github.com/mathisbot/homomorph/ring"
)

// Ciphertext is the encryption of a single bit.
type Ciphertext struct {
	Value ring.Poly
}

// NewCiphertext returns a new [Ciphertext] wrapping a copy of p.
func NewCiphertext(p ring.Poly) *Ciphertext {
	return &Ciphertext{Value: *p.CopyNew()}
}

// Degree returns the degree of the ciphertext polynomial.
func (ct Ciphertext) Degree() int {
	return ct.Value.Degree()
}

// CopyNew creates a deep copy of the receiver ciphertext and returns it.
func (ct Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Value: *ct.Value.CopyNew()}
}

// Equal performs a deep equal.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	return other != nil && ct.Value.Equal(&other.Value)
}

// BinarySize returns the serialized size of the object in bytes.
func (ct Ciphertext) BinarySize() int {
	return ct.Value.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (ct Ciphertext) WriteTo(w io.Writer) (n int64, err error) {
	return ct.Value.WriteTo(w)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (ct *Ciphertext) ReadFrom(r io.Reader) (n int64, err error) {
	return ct.Value.ReadFrom(r)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (ct Ciphertext) MarshalBinary() (p []byte, err error) {
	return ct.Value.MarshalBinary()
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (ct *Ciphertext) UnmarshalBinary(p []byte) (err error) {
	return ct.Value.UnmarshalBinary(p)
}
