package heuint

import (
	"fmt"

	"github.com/mathisbot/homomorph/core/phe"
)

// Decryptor decrypts N-bit unsigned integers with a [phe.SecretKey].
type Decryptor struct {
	*phe.Decryptor
}

// NewDecryptor instantiates a new [Decryptor].
func NewDecryptor(params phe.Parameters, sk *phe.SecretKey) *Decryptor {
	return &Decryptor{Decryptor: phe.NewDecryptor(params, sk)}
}

// ShallowCopy creates a shallow copy of [Decryptor]. The receiver and the
// returned [Decryptor] can be used concurrently.
func (dec Decryptor) ShallowCopy() *Decryptor {
	return &Decryptor{Decryptor: dec.Decryptor.ShallowCopy()}
}

// WithKey creates a shallow copy of [Decryptor] with a new decryption key.
func (dec Decryptor) WithKey(sk *phe.SecretKey) *Decryptor {
	return &Decryptor{Decryptor: dec.Decryptor.WithKey(sk)}
}

// DecryptNew decrypts every bit of ct independently and returns
// sum(bit_i * 2^(N-1-i)).
//
// It returns an error wrapping [ErrWidthMismatch] if ct does not hold
// exactly N encrypted bits.
func (dec Decryptor) DecryptNew(ct *Ciphertext) (x uint64, err error) {

	if err = ct.CheckWidth(dec.GetParameters().N()); err != nil {
		return 0, fmt.Errorf("cannot DecryptNew: %w", err)
	}

	bits := make([]uint64, ct.Len())
	for i := range ct.Value {
		if bits[i], err = dec.DecryptBit(&ct.Value[i]); err != nil {
			return 0, fmt.Errorf("cannot DecryptNew: bit %d: %w", i, err)
		}
	}

	return BitRecompose(bits), nil
}
