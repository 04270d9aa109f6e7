package phe

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

const (
	// MaxN is the largest supported plaintext bit-width.
	MaxN = 64

	// MaxDegree is the largest supported value for the degrees d, dp and delta.
	MaxDegree = 1 << 16

	// MaxPublicKeySize is the largest supported number of public key polynomials.
	MaxPublicKeySize = 1 << 12
)

// ParametersLiteral is a literal representation of the scheme parameters.
// It has public fields and is used to express unchecked user-defined
// parameters literally into Go programs. The [NewParametersFromLiteral]
// function is used to generate the actual checked parameters from the
// literal representation.
type ParametersLiteral struct {
	// N is the plaintext bit-width of the integer codec.
	N int
	// D is the degree of the secret key.
	D int
	// DP is the number of coefficients of the public key randomizers.
	DP int
	// Delta is the number of coefficients of the public key noise terms.
	Delta int
	// Tau is the number of polynomials in the public key.
	Tau int
}

// Parameters represents a set of scheme parameters. Its fields are private
// and immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	n     int
	d     int
	dp    int
	delta int
	tau   int
}

// NewParameters returns a new set of parameters. It returns the empty
// parameters [Parameters]{} and an error wrapping [ErrInvalidParameters]
// if the specified parameters are invalid.
func NewParameters(n, d, dp, delta, tau int) (params Parameters, err error) {

	switch {
	case n < 1 || n > MaxN:
		err = fmt.Errorf("N=%d must be in [1, %d]", n, MaxN)
	case d < 1 || d > MaxDegree:
		err = fmt.Errorf("D=%d must be in [1, %d]", d, MaxDegree)
	case dp < 1 || dp > MaxDegree:
		err = fmt.Errorf("DP=%d must be in [1, %d]", dp, MaxDegree)
	case delta < 1 || delta > MaxDegree:
		err = fmt.Errorf("Delta=%d must be in [1, %d]", delta, MaxDegree)
	case tau < 1 || tau > MaxPublicKeySize:
		err = fmt.Errorf("Tau=%d must be in [1, %d]", tau, MaxPublicKeySize)
	}

	if err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParameters: %w: %w", ErrInvalidParameters, err)
	}

	return Parameters{
		n:     n,
		d:     d,
		dp:    dp,
		delta: delta,
		tau:   tau,
	}, nil
}

// NewParametersFromLiteral instantiates a set of parameters from a [ParametersLiteral]
// specification. It returns the empty parameters [Parameters]{} and a non-nil
// error if the specified parameters are invalid.
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters, err error) {
	return NewParameters(paramDef.N, paramDef.D, paramDef.DP, paramDef.Delta, paramDef.Tau)
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:     p.n,
		D:     p.d,
		DP:    p.dp,
		Delta: p.delta,
		Tau:   p.tau,
	}
}

// N returns the plaintext bit-width.
func (p Parameters) N() int {
	return p.n
}

// D returns the degree of the secret key.
func (p Parameters) D() int {
	return p.d
}

// DP returns the number of coefficients of the public key randomizers.
func (p Parameters) DP() int {
	return p.dp
}

// Delta returns the number of coefficients of the public key noise terms.
func (p Parameters) Delta() int {
	return p.delta
}

// Tau returns the number of polynomials in the public key.
func (p Parameters) Tau() int {
	return p.tau
}

// MaxPlaintext returns the largest plaintext accepted by the integer codec, 2^N - 1.
func (p Parameters) MaxPlaintext() uint64 {
	return ^uint64(0) >> (64 - p.n)
}

// FreshNoiseDegree returns an upper bound on the degree of the noise of a
// fresh ciphertext, i.e. of x + X * sum(e_i).
func (p Parameters) FreshNoiseDegree() int {
	return p.delta
}

// Equal returns true if the receiver and other are the same parameter set.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// String returns a compact representation of the parameters.
func (p Parameters) String() string {
	return fmt.Sprintf("N=%d/d=%d/dp=%d/delta=%d/tau=%d", p.n, p.d, p.dp, p.delta, p.tau)
}

// MarshalBinary returns a []byte representation of the parameter set.
// This representation corresponds to the [Parameters.MarshalJSON] representation.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a slice of bytes on the target Parameters.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	return p.UnmarshalJSON(data)
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
