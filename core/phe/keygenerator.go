package phe

import (
	"fmt"

	"github.com/mathisbot/homomorph/ring"
	"github.com/mathisbot/homomorph/utils/sampling"
)

// keyGeneratorLabel separates the keyed PRNG stream of the key generator
// from other streams derived from the same seed.
const keyGeneratorLabel = "homomorph/phe/keygenerator"

// KeyGenerator is a structure that stores the elements required to create
// new keys.
//
// A KeyGenerator is not thread safe: use ShallowCopy to obtain instances
// that can be used concurrently.
type KeyGenerator struct {
	params  Parameters
	prng    sampling.PRNG
	sampler *ring.BinarySampler
}

// NewKeyGenerator creates a new [KeyGenerator], from which the secret and
// public keys can be generated. Its randomness is read from the operating
// system's CSPRNG.
func NewKeyGenerator(params Parameters) *KeyGenerator {

	prng, err := sampling.NewPRNG()
	if err != nil {
		panic(err)
	}

	return newKeyGenerator(params, prng)
}

func newKeyGenerator(params Parameters, prng sampling.PRNG) *KeyGenerator {
	return &KeyGenerator{
		params:  params,
		prng:    prng,
		sampler: ring.NewBinarySampler(prng),
	}
}

// GetParameters returns the underlying [Parameters].
func (kgen KeyGenerator) GetParameters() *Parameters {
	return &kgen.params
}

// WithPRNG returns a new [KeyGenerator] reading its randomness from prng.
func (kgen KeyGenerator) WithPRNG(prng sampling.PRNG) *KeyGenerator {
	return newKeyGenerator(kgen.params, prng)
}

// WithSeed returns a new [KeyGenerator] whose keys are a deterministic
// function of the seed. Two generators created with the same parameters and
// seed generate the same sequence of keys.
func (kgen KeyGenerator) WithSeed(seed []byte) *KeyGenerator {

	prng, err := sampling.NewKeyedPRNG(sampling.DeriveKey(seed, keyGeneratorLabel))
	if err != nil {
		panic(err)
	}

	return kgen.WithPRNG(prng)
}

// ShallowCopy creates a shallow copy of [KeyGenerator] in which the
// temporary buffers are reallocated. The receiver and the returned
// [KeyGenerator] can be used concurrently if the underlying PRNG is thread
// safe, which is the case of the default PRNG.
func (kgen KeyGenerator) ShallowCopy() *KeyGenerator {
	return newKeyGenerator(kgen.params, kgen.prng)
}

// GenSecretKeyNew generates a new [SecretKey] X^d + s, where s has d-1
// coefficients uniformly distributed in {0, 1}.
func (kgen KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	d := kgen.params.D()
	return &SecretKey{Value: ring.Add(ring.Monomial(d), kgen.sampler.ReadNew(d-1))}
}

// GenPublicKeyNew generates a new [PublicKey] from the provided [SecretKey].
// Each of its tau polynomials is r*S + e*X reduced mod 2, for fresh
// randomizers r with dp coefficients and noises e with delta coefficients,
// uniformly distributed in {0, 1}.
func (kgen KeyGenerator) GenPublicKeyNew(sk *SecretKey) (pk *PublicKey) {

	if sk == nil {
		panic(fmt.Errorf("cannot GenPublicKeyNew: secret key is nil"))
	}

	pk = &PublicKey{Value: make([]ring.Poly, kgen.params.Tau())}

	for i := range pk.Value {
		r := kgen.sampler.ReadNew(kgen.params.DP())
		e := kgen.sampler.ReadNew(kgen.params.Delta())
		pk.Value[i] = ring.Reduce(ring.Add(ring.Mul(r, sk.Value), ring.MulByMonomial(e, 1)), CoefficientModulus)
	}

	return
}

// GenKeyPairNew generates a new [SecretKey] and a corresponding [PublicKey].
func (kgen KeyGenerator) GenKeyPairNew() (sk *SecretKey, pk *PublicKey) {
	sk = kgen.GenSecretKeyNew()
	return sk, kgen.GenPublicKeyNew(sk)
}
