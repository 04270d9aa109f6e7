package phe

import (
	"github.com/mathisbot/homomorph/utils"
)

// NoiseSimulator tracks an upper bound on the degree of the noise of
// ciphertexts through a circuit, without encrypting anything.
//
// The noise of a ciphertext C is the polynomial C mod S, with coefficients
// mod 2. A fresh ciphertext has noise x + X*e of degree at most delta. The
// noise of a sum is bounded by the largest noise of its operands and the
// noise of a product by the sum of their degrees. The exact zero has
// degree -1. A ciphertext decrypts correctly as long as the degree of its
// noise is smaller than d.
//
// The simulator is a debugging aid: nothing in the encryption, evaluation
// or decryption path depends on it.
type NoiseSimulator struct {
	params Parameters
}

var _ GateEvaluator[int] = NoiseSimulator{}

// NewNoiseSimulator instantiates a new [NoiseSimulator].
func NewNoiseSimulator(params Parameters) *NoiseSimulator {
	return &NoiseSimulator{params: params}
}

// Fresh returns the noise degree bound of a fresh ciphertext.
func (s NoiseSimulator) Fresh() int {
	return s.params.FreshNoiseDegree()
}

// Decryptable returns true if a ciphertext whose noise degree is bounded by
// deg is guaranteed to decrypt correctly.
func (s NoiseSimulator) Decryptable(deg int) bool {
	return deg < s.params.D()
}

// Zero returns -1, the degree of the noise of the unencrypted zero.
func (s NoiseSimulator) Zero() int {
	return -1
}

// AddNew returns the noise degree bound of a sum.
func (s NoiseSimulator) AddNew(a, b int) int {
	return utils.Max(a, b)
}

// MulNew returns the noise degree bound of a product.
func (s NoiseSimulator) MulNew(a, b int) int {
	if utils.Min(a, b) < 0 {
		return -1
	}
	return a + b
}

// ReduceNew returns a: the noise is already defined modulo 2.
func (s NoiseSimulator) ReduceNew(a int) int {
	return a
}

// OrNew returns the noise degree bound of the OR gate a + b + a*b.
func (s NoiseSimulator) OrNew(a, b int) int {
	return s.AddNew(s.AddNew(a, b), s.MulNew(a, b))
}
