package phe

import (
	"github.com/mathisbot/homomorph/ring"
)

// GateEvaluator is the set of operations from which boolean circuits over
// encrypted bits are built. It is implemented by [Evaluator], which operates
// on ciphertexts, and by [NoiseSimulator], which operates on noise degrees,
// so that a circuit written once can be both evaluated and simulated.
type GateEvaluator[T any] interface {
	// Zero returns the unencrypted zero.
	Zero() T
	// AddNew returns the exact sum of a and b.
	AddNew(a, b T) T
	// MulNew returns the exact product of a and b.
	MulNew(a, b T) T
	// ReduceNew reduces a mod 2.
	ReduceNew(a T) T
	// OrNew returns the OR of a and b, reduced mod 2.
	OrNew(a, b T) T
}

// Evaluator evaluates boolean gates on ciphertexts. It holds no key:
// gates are public polynomial formulas.
//
// Over mod 2 coefficients, addition of ciphertexts is a XOR of their bits
// and multiplication is an AND. Every gate adds to the noise of its output,
// and multiplications add up the noise degrees of their operands.
type Evaluator struct{}

var _ GateEvaluator[*Ciphertext] = Evaluator{}

// NewEvaluator instantiates a new [Evaluator].
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// ShallowCopy returns a new [Evaluator]. The receiver and the returned
// [Evaluator] can be used concurrently.
func (eval Evaluator) ShallowCopy() *Evaluator {
	return &Evaluator{}
}

// Zero returns constant(0), a trivial encryption of zero that requires no key.
func (eval Evaluator) Zero() *Ciphertext {
	return &Ciphertext{}
}

// AddNew returns op0 + op1 without coefficient reduction.
func (eval Evaluator) AddNew(op0, op1 *Ciphertext) (opOut *Ciphertext) {
	return &Ciphertext{Value: ring.Add(op0.Value, op1.Value)}
}

// MulNew returns op0 * op1 without coefficient reduction.
func (eval Evaluator) MulNew(op0, op1 *Ciphertext) (opOut *Ciphertext) {
	return &Ciphertext{Value: ring.Mul(op0.Value, op1.Value)}
}

// ReduceNew returns op0 with its coefficients reduced mod 2.
func (eval Evaluator) ReduceNew(op0 *Ciphertext) (opOut *Ciphertext) {
	return &Ciphertext{Value: ring.Reduce(op0.Value, CoefficientModulus)}
}

// XorNew returns (op0 + op1) mod 2.
func (eval Evaluator) XorNew(op0, op1 *Ciphertext) (opOut *Ciphertext) {
	return eval.ReduceNew(eval.AddNew(op0, op1))
}

// AndNew returns (op0 * op1) mod 2.
func (eval Evaluator) AndNew(op0, op1 *Ciphertext) (opOut *Ciphertext) {
	return eval.ReduceNew(eval.MulNew(op0, op1))
}

// OrNew returns (op0 + op1 + op0 * op1) mod 2.
func (eval Evaluator) OrNew(op0, op1 *Ciphertext) (opOut *Ciphertext) {
	return eval.ReduceNew(eval.AddNew(eval.AddNew(op0, op1), eval.MulNew(op0, op1)))
}

// NotNew returns (op0 + 1) mod 2.
func (eval Evaluator) NotNew(op0 *Ciphertext) (opOut *Ciphertext) {
	return &Ciphertext{Value: ring.Reduce(ring.Add(op0.Value, ring.Constant(1)), CoefficientModulus)}
}
