package phe

import (
	"fmt"

	"github.com/mathisbot/homomorph/ring"
)

// Decryptor is a structure used to decrypt [Ciphertext]. It stores the secret-key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey

	// degree of the secret key mod 2
	skDegree int
}

// NewDecryptor instantiates a new [Decryptor].
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {

	if sk == nil {
		panic(fmt.Errorf("cannot NewDecryptor: secret key is nil"))
	}

	return &Decryptor{
		params:   params,
		sk:       sk,
		skDegree: ring.Reduce(sk.Value, CoefficientModulus).Degree(),
	}
}

// GetParameters returns the underlying [Parameters].
func (d Decryptor) GetParameters() *Parameters {
	return &d.params
}

// DecryptBit decrypts a [Ciphertext] as ((C mod S)(0)) mod 2, where the
// remainder is computed in (Z/2Z)[X].
//
// It returns an error wrapping [ErrDegenerateKey] if the secret key has a
// degree smaller than one modulo 2. A wrong bit is returned without error
// when the noise of the ciphertext has grown past the degree of the key.
func (d Decryptor) DecryptBit(ct *Ciphertext) (bit uint64, err error) {

	if d.skDegree < 1 {
		return 0, fmt.Errorf("cannot DecryptBit: %w", ErrDegenerateKey)
	}

	rem, err := ring.Mod(ct.Value, d.sk.Value, CoefficientModulus)
	if err != nil {
		return 0, fmt.Errorf("cannot DecryptBit: %w", err)
	}

	return uint64(rem.Evaluate(0) % CoefficientModulus), nil
}

// ShallowCopy creates a shallow copy of [Decryptor] in which all the read-only data-structures are
// shared with the receiver. The receiver and the returned [Decryptor] can be used concurrently.
func (d Decryptor) ShallowCopy() *Decryptor {
	return &Decryptor{
		params:   d.params,
		sk:       d.sk,
		skDegree: d.skDegree,
	}
}

// WithKey creates a shallow copy of [Decryptor] with a new decryption key.
// The receiver and the returned [Decryptor] can be used concurrently.
func (d Decryptor) WithKey(sk *SecretKey) *Decryptor {
	return NewDecryptor(d.params, sk)
}
