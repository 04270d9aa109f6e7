// Package phe implements a toy symmetric homomorphic encryption scheme over
// single bits, with ciphertexts in (Z/2Z)[X].
//
// The secret key is a polynomial S of degree d. A public key is a list of
// tau encryptions of zero r_i*S + e_i*X, reduced mod 2. A bit x is
// encrypted as x plus the sum of a random subset of the public key, and
// decrypted as ((C mod S)(0)) mod 2. Sums and products of ciphertexts
// decrypt to the XOR and the AND of their bits as long as the degree of
// the accumulated noise stays below d.
//
// The scheme is not secure and is not meant to be used to protect data.
package phe

import (
	"errors"
)

// CoefficientModulus is the modulus of the coefficients of the keys and ciphertexts.
const CoefficientModulus = 2

var (
	// ErrInvalidParameters is returned when a parameter set is rejected.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrInvalidPlaintext is returned when a plaintext bit is neither 0 nor 1.
	ErrInvalidPlaintext = errors.New("invalid plaintext")

	// ErrInvalidSubset is returned when a subset of public key indices is malformed.
	ErrInvalidSubset = errors.New("invalid subset")

	// ErrDegenerateKey is returned when decrypting with a secret key of degree smaller than one.
	ErrDegenerateKey = errors.New("degenerate secret key")

	// ErrDepthExceeded is returned when a circuit is predicted to accumulate
	// more noise than the secret key can tolerate.
	ErrDepthExceeded = errors.New("circuit depth exceeds the noise budget")
)
