// Package adder implements a homomorphic ripple-carry adder over encrypted
// fixed-width unsigned integers.
package adder

import (
	"fmt"

	"github.com/mathisbot/homomorph/core/phe"
	"github.com/mathisbot/homomorph/he/heuint"
)

// Evaluator adds encrypted N-bit unsigned integers. It holds no key.
type Evaluator struct {
	params phe.Parameters
	gates  *phe.Evaluator
}

// NewEvaluator instantiates a new [Evaluator].
func NewEvaluator(params phe.Parameters) *Evaluator {
	return &Evaluator{
		params: params,
		gates:  phe.NewEvaluator(),
	}
}

// GetParameters returns the underlying [phe.Parameters].
func (eval Evaluator) GetParameters() *phe.Parameters {
	return &eval.params
}

// ShallowCopy creates a shallow copy of the receiver. The receiver and the
// returned [Evaluator] can be used concurrently.
func (eval Evaluator) ShallowCopy() *Evaluator {
	return &Evaluator{
		params: eval.params,
		gates:  eval.gates.ShallowCopy(),
	}
}

// FullAdder returns the sum bit (c1 + c2 + cin) mod 2 and the outgoing carry
// OR((c1 + c2) * cin, c1 * c2) of three encrypted bits.
func (eval Evaluator) FullAdder(c1, c2, cin *phe.Ciphertext) (sum, cout *phe.Ciphertext) {
	return fullAdder[*phe.Ciphertext](eval.gates, c1, c2, cin)
}

// AddNew returns the encryption of (x + y) mod 2^N, where op0 and op1 are
// encryptions of x and y. The carry out of the most significant bit is
// discarded: see [Evaluator.AddWithCarryNew] to retrieve it.
//
// It returns an error wrapping [heuint.ErrWidthMismatch] if an operand does
// not hold exactly N encrypted bits.
func (eval Evaluator) AddNew(op0, op1 *heuint.Ciphertext) (opOut *heuint.Ciphertext, err error) {
	if opOut, _, err = eval.AddWithCarryNew(op0, op1); err != nil {
		return nil, fmt.Errorf("cannot AddNew: %w", err)
	}
	return
}

// AddWithCarryNew returns the encryption of (x + y) mod 2^N together with
// the encryption of the carry out of the most significant bit, i.e. of
// (x + y) >> N.
//
// The carry accumulates more noise than the sum bits: see
// [SimulateNoiseDegree].
func (eval Evaluator) AddWithCarryNew(op0, op1 *heuint.Ciphertext) (opOut *heuint.Ciphertext, carry *phe.Ciphertext, err error) {

	n := eval.params.N()

	if err = op0.CheckWidth(n); err != nil {
		return nil, nil, fmt.Errorf("cannot AddWithCarryNew: op0: %w", err)
	}

	if err = op1.CheckWidth(n); err != nil {
		return nil, nil, fmt.Errorf("cannot AddWithCarryNew: op1: %w", err)
	}

	a := make([]*phe.Ciphertext, n)
	b := make([]*phe.Ciphertext, n)
	for i := 0; i < n; i++ {
		a[i], b[i] = &op0.Value[i], &op1.Value[i]
	}

	sum, carry := rippleCarry[*phe.Ciphertext](eval.gates, a, b)

	opOut = &heuint.Ciphertext{Value: make([]phe.Ciphertext, n)}
	for i := range sum {
		opOut.Value[i] = *sum[i]
	}

	return opOut, carry, nil
}

// fullAdder evaluates a full adder with the given gates.
func fullAdder[T any](gates phe.GateEvaluator[T], c1, c2, cin T) (sum, cout T) {
	c12 := gates.AddNew(c1, c2)
	sum = gates.ReduceNew(gates.AddNew(c12, cin))
	cout = gates.OrNew(gates.MulNew(c12, cin), gates.MulNew(c1, c2))
	return
}

// rippleCarry adds the two bit sequences a and b, most significant bit
// first, from the last index to the first. The carry into the least
// significant bit is gates.Zero(). It returns the sum bits, most
// significant first, and the carry out of the most significant bit.
// a and b must have the same length.
func rippleCarry[T any](gates phe.GateEvaluator[T], a, b []T) (sum []T, carry T) {

	sum = make([]T, len(a))
	carry = gates.Zero()

	for i := len(a) - 1; i >= 0; i-- {
		sum[i], carry = fullAdder(gates, a[i], b[i], carry)
	}

	return
}
