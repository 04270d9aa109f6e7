package heuint

import (
	"fmt"

	"github.com/mathisbot/homomorph/core/phe"
	"github.com/mathisbot/homomorph/utils"
	"github.com/mathisbot/homomorph/utils/sampling"
)

// Encryptor encrypts N-bit unsigned integers with a [phe.PublicKey].
//
// An Encryptor is not thread safe: use ShallowCopy to obtain instances
// that can be used concurrently.
type Encryptor struct {
	*phe.Encryptor
}

// NewEncryptor instantiates a new [Encryptor].
// It panics if the public key does not have exactly tau polynomials.
func NewEncryptor(params phe.Parameters, pk *phe.PublicKey) *Encryptor {
	return &Encryptor{Encryptor: phe.NewEncryptor(params, pk)}
}

// WithPRNG returns a new [Encryptor] sampling its subsets from prng.
func (enc Encryptor) WithPRNG(prng sampling.PRNG) *Encryptor {
	return &Encryptor{Encryptor: enc.Encryptor.WithPRNG(prng)}
}

// WithKey returns a new [Encryptor] encrypting under pk.
// It panics if the public key does not have exactly tau polynomials.
func (enc Encryptor) WithKey(pk *phe.PublicKey) *Encryptor {
	return &Encryptor{Encryptor: enc.Encryptor.WithKey(pk)}
}

// ShallowCopy creates a shallow copy of [Encryptor] in which the temporary
// buffers are reallocated. The receiver and the returned [Encryptor] can be
// used concurrently if the underlying PRNG is thread safe.
func (enc Encryptor) ShallowCopy() *Encryptor {
	return &Encryptor{Encryptor: enc.Encryptor.ShallowCopy()}
}

// EncryptNew encrypts x on N bits. A single subset of the public key is
// sampled and used for every bit of x.
//
// It returns an error wrapping [ErrPlaintextOutOfRange] if x >= 2^N: the
// integer is rejected rather than truncated.
func (enc Encryptor) EncryptNew(x uint64) (ct *Ciphertext, err error) {
	return enc.EncryptWithSubsetNew(x, enc.SampleSubset())
}

// EncryptWithSubsetNew encrypts x on N bits, encrypting every bit with the
// subset u of the public key. See [Encryptor.EncryptNew].
func (enc Encryptor) EncryptWithSubsetNew(x uint64, u phe.Subset) (ct *Ciphertext, err error) {

	params := enc.GetParameters()

	if utils.BitLen64(x) > params.N() {
		return nil, fmt.Errorf("cannot EncryptNew: %w: %d does not fit on N=%d bits", ErrPlaintextOutOfRange, x, params.N())
	}

	bits := BitDecompose(x, params.N())

	ct = &Ciphertext{Value: make([]phe.Ciphertext, len(bits))}

	for i, bit := range bits {

		var bitCt *phe.Ciphertext
		if bitCt, err = enc.EncryptBitNew(bit, u); err != nil {
			return nil, fmt.Errorf("cannot EncryptNew: bit %d: %w", i, err)
		}

		ct.Value[i] = *bitCt
	}

	return
}
