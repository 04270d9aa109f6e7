package phe

import (
	"fmt"

	"github.com/mathisbot/homomorph/ring"
	"github.com/mathisbot/homomorph/utils/sampling"
)

// Encryptor is a structure that encrypts bits with a [PublicKey].
//
// An Encryptor is not thread safe: use ShallowCopy to obtain instances
// that can be used concurrently.
type Encryptor struct {
	params        Parameters
	pk            *PublicKey
	prng          sampling.PRNG
	subsetSampler *SubsetSampler
}

// NewEncryptor creates a new [Encryptor] from the provided [PublicKey].
// It panics if the public key does not have exactly tau polynomials.
func NewEncryptor(params Parameters, pk *PublicKey) *Encryptor {

	if err := checkPk(params, pk); err != nil {
		panic(fmt.Errorf("cannot NewEncryptor: %w", err))
	}

	prng, err := sampling.NewPRNG()
	if err != nil {
		panic(err)
	}

	return newEncryptor(params, pk, prng)
}

func newEncryptor(params Parameters, pk *PublicKey, prng sampling.PRNG) *Encryptor {
	return &Encryptor{
		params:        params,
		pk:            pk,
		prng:          prng,
		subsetSampler: NewSubsetSampler(prng, params.Tau()),
	}
}

func checkPk(params Parameters, pk *PublicKey) error {
	if pk == nil {
		return fmt.Errorf("public key is nil")
	}
	if pk.Len() != params.Tau() {
		return fmt.Errorf("public key has %d polynomials but Tau=%d", pk.Len(), params.Tau())
	}
	return nil
}

// GetParameters returns the underlying [Parameters].
func (enc Encryptor) GetParameters() *Parameters {
	return &enc.params
}

// WithPRNG returns a new [Encryptor] sampling its subsets from prng.
func (enc Encryptor) WithPRNG(prng sampling.PRNG) *Encryptor {
	return newEncryptor(enc.params, enc.pk, prng)
}

// WithKey returns a new [Encryptor] encrypting under pk.
// It panics if the public key does not have exactly tau polynomials.
func (enc Encryptor) WithKey(pk *PublicKey) *Encryptor {
	if err := checkPk(enc.params, pk); err != nil {
		panic(fmt.Errorf("cannot WithKey: %w", err))
	}
	return newEncryptor(enc.params, pk, enc.prng)
}

// ShallowCopy creates a shallow copy of [Encryptor] in which all the
// read-only data-structures are shared with the receiver and the temporary
// buffers are reallocated. The receiver and the returned [Encryptor] can be
// used concurrently if the underlying PRNG is thread safe.
func (enc Encryptor) ShallowCopy() *Encryptor {
	return newEncryptor(enc.params, enc.pk, enc.prng)
}

// SampleSubset samples a new random subset of the public key indices.
func (enc Encryptor) SampleSubset() Subset {
	return enc.subsetSampler.ReadNew()
}

// EncryptBitNew encrypts a bit as bit + sum_{i in u} pk[i], reduced mod 2.
// It returns an error if bit is not 0 or 1 or if u is not a valid subset of
// the public key indices.
func (enc Encryptor) EncryptBitNew(bit uint64, u Subset) (ct *Ciphertext, err error) {

	if bit > 1 {
		return nil, fmt.Errorf("cannot EncryptBitNew: %w: %d is not a bit", ErrInvalidPlaintext, bit)
	}

	if err = u.Validate(enc.params.Tau()); err != nil {
		return nil, fmt.Errorf("cannot EncryptBitNew: %w", err)
	}

	acc := ring.Constant(int64(bit))
	for _, i := range u {
		acc = ring.Add(acc, enc.pk.Value[i])
	}

	return &Ciphertext{Value: ring.Reduce(acc, CoefficientModulus)}, nil
}

// EncryptBitFreshNew encrypts a bit with a freshly sampled subset.
// See [Encryptor.EncryptBitNew].
func (enc Encryptor) EncryptBitFreshNew(bit uint64) (ct *Ciphertext, err error) {
	return enc.EncryptBitNew(bit, enc.SampleSubset())
}
