package adder

import (
	"fmt"

	"github.com/mathisbot/homomorph/core/phe"
	"github.com/mathisbot/homomorph/utils"
)

// SimulateNoiseDegree runs the adder on noise degrees instead of ciphertexts
// and returns upper bounds on the noise degree of the sum bits and of the
// final carry of an N-bit addition of two fresh ciphertexts.
//
// With fresh noise degree f = delta, the bounds are 3fN - 4f for the sum
// (f if N = 1) and 3fN - f for the carry.
func SimulateNoiseDegree(params phe.Parameters) (sum, carry int) {

	sim := phe.NewNoiseSimulator(params)

	fresh := make([]int, params.N())
	for i := range fresh {
		fresh[i] = sim.Fresh()
	}

	sums, carry := rippleCarry[int](sim, fresh, fresh)

	return utils.MaxSlice(sums), carry
}

// CheckDepth returns an error wrapping [phe.ErrDepthExceeded] if the sum
// bits of an N-bit addition of fresh ciphertexts are not guaranteed to
// decrypt correctly under params.
//
// It is never called by the encryption, evaluation or decryption functions.
func CheckDepth(params phe.Parameters) (err error) {
	if sum, _ := SimulateNoiseDegree(params); !phe.NewNoiseSimulator(params).Decryptable(sum) {
		return fmt.Errorf("cannot CheckDepth: %w: noise degree of the sum %d >= D=%d", phe.ErrDepthExceeded, sum, params.D())
	}
	return nil
}
