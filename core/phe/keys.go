package phe

import (
	"io"

	"github.com/mathisbot/homomorph/ring"
	"github.com/mathisbot/homomorph/utils/structs"
)

// SecretKey is a type for secret keys: a polynomial S of degree d
// with coefficients in {0, 1}.
type SecretKey struct {
	Value ring.Poly
}

// Degree returns the degree of the secret key polynomial.
func (sk SecretKey) Degree() int {
	return sk.Value.Degree()
}

// CopyNew creates a deep copy of the receiver secret key and returns it.
func (sk SecretKey) CopyNew() *SecretKey {
	return &SecretKey{Value: *sk.Value.CopyNew()}
}

// Equal performs a deep equal.
func (sk SecretKey) Equal(other *SecretKey) bool {
	return other != nil && sk.Value.Equal(&other.Value)
}

// BinarySize returns the serialized size of the object in bytes.
func (sk SecretKey) BinarySize() int {
	return sk.Value.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (sk SecretKey) WriteTo(w io.Writer) (n int64, err error) {
	return sk.Value.WriteTo(w)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (sk *SecretKey) ReadFrom(r io.Reader) (n int64, err error) {
	return sk.Value.ReadFrom(r)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (sk SecretKey) MarshalBinary() (p []byte, err error) {
	return sk.Value.MarshalBinary()
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (sk *SecretKey) UnmarshalBinary(p []byte) (err error) {
	return sk.Value.UnmarshalBinary(p)
}

// PublicKey is a type for public keys: tau encryptions of zero
// r_i*S + e_i*X, with coefficients reduced mod 2.
type PublicKey struct {
	Value structs.Vector[ring.Poly]
}

// Len returns the number of polynomials of the public key.
func (pk PublicKey) Len() int {
	return len(pk.Value)
}

// CopyNew creates a deep copy of the receiver public key and returns it.
func (pk PublicKey) CopyNew() *PublicKey {
	return &PublicKey{Value: pk.Value.CopyNew()}
}

// Equal performs a deep equal.
func (pk PublicKey) Equal(other *PublicKey) bool {
	return other != nil && pk.Value.Equal(other.Value)
}

// BinarySize returns the serialized size of the object in bytes.
func (pk PublicKey) BinarySize() int {
	return pk.Value.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (pk PublicKey) WriteTo(w io.Writer) (n int64, err error) {
	return pk.Value.WriteTo(w)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (pk *PublicKey) ReadFrom(r io.Reader) (n int64, err error) {
	return pk.Value.ReadFrom(r)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (pk PublicKey) MarshalBinary() (p []byte, err error) {
	return pk.Value.MarshalBinary()
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (pk *PublicKey) UnmarshalBinary(p []byte) (err error) {
	return pk.Value.UnmarshalBinary(p)
}
