// Package heuint implements homomorphic encryption of fixed-width unsigned
// integers, as sequences of encrypted bits ordered from the most significant
// to the least significant.
package heuint

import (
	"errors"
	"fmt"
	"io"

	"github.com/mathisbot/homomorph/core/phe"
	"github.com/mathisbot/homomorph/utils/structs"
)

var (
	// ErrPlaintextOutOfRange is returned when encrypting an integer that
	// does not fit on N bits.
	ErrPlaintextOutOfRange = errors.New("plaintext out of range")

	// ErrWidthMismatch is returned when a ciphertext does not hold exactly
	// N encrypted bits.
	ErrWidthMismatch = errors.New("ciphertext width mismatch")
)

// Ciphertext is the encryption of an N-bit unsigned integer: Value[0]
// encrypts its most significant bit and Value[N-1] its least significant bit.
type Ciphertext struct {
	Value structs.Vector[phe.Ciphertext]
}

// NewCiphertext returns a new [Ciphertext] from the given bit ciphertexts,
// most significant first. The bit ciphertexts are copied.
func NewCiphertext(bits ...*phe.Ciphertext) *Ciphertext {
	ct := &Ciphertext{Value: make([]phe.Ciphertext, len(bits))}
	for i := range bits {
		ct.Value[i] = *bits[i].CopyNew()
	}
	return ct
}

// Len returns the number of encrypted bits.
func (ct Ciphertext) Len() int {
	return len(ct.Value)
}

// CheckWidth returns an error wrapping [ErrWidthMismatch] if the ciphertext
// does not hold exactly n encrypted bits.
func (ct Ciphertext) CheckWidth(n int) error {
	if ct.Len() != n {
		return fmt.Errorf("%w: ciphertext has %d bits but N=%d", ErrWidthMismatch, ct.Len(), n)
	}
	return nil
}

// CopyNew creates a deep copy of the receiver ciphertext and returns it.
func (ct Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Value: ct.Value.CopyNew()}
}

// Equal performs a deep equal.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	return other != nil && ct.Value.Equal(other.Value)
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

// BitDecompose returns the n least significant bits of x, most significant
// first. Bits of x above the n-th are ignored.
func BitDecompose(x uint64, n int) (bits []uint64) {
	bits = make([]uint64, n)
	for i := range bits {
		bits[i] = (x >> (n - 1 - i)) & 1
	}
	return
}

// BitRecompose returns sum(bits[i] * 2^(len(bits)-1-i)).
// It is the inverse of [BitDecompose] for n <= 64.
func BitRecompose(bits []uint64) (x uint64) {
	for _, b := range bits {
		x = x<<1 | b&1
	}
	return
}
