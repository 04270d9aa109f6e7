package phe

import (
	"fmt"

	"github.com/mathisbot/homomorph/ring"
	"github.com/mathisbot/homomorph/utils"
	"github.com/mathisbot/homomorph/utils/sampling"
)

// Subset is a set of indices into a [PublicKey], stored in strictly
// increasing order. The empty subset is valid.
type Subset []int

// Validate returns an error wrapping [ErrInvalidSubset] if the subset is not
// strictly increasing or if one of its indices is not in [0, tau).
func (u Subset) Validate(tau int) error {

	if !utils.IsStrictlyIncreasing([]int(u)) {
		return fmt.Errorf("%w: indices must be strictly increasing", ErrInvalidSubset)
	}

	if len(u) != 0 && (u[0] < 0 || u[len(u)-1] >= tau) {
		return fmt.Errorf("%w: indices must be in [0, %d)", ErrInvalidSubset, tau)
	}

	return nil
}

// SubsetSampler samples subsets of [0, tau) in which every index is
// included independently with probability 1/2.
//
// A SubsetSampler is not thread safe: use ShallowCopy to obtain instances
// that can be used concurrently.
type SubsetSampler struct {
	tau     int
	sampler *ring.BinarySampler
}

// NewSubsetSampler creates a new [SubsetSampler] of subsets of [0, tau).
func NewSubsetSampler(prng sampling.PRNG, tau int) *SubsetSampler {
	return &SubsetSampler{
		tau:     tau,
		sampler: ring.NewBinarySampler(prng),
	}
}

// ReadNew samples a new subset. It may be empty.
func (s *SubsetSampler) ReadNew() (u Subset) {
	u = Subset{}
	for i := 0; i < s.tau; i++ {
		if s.sampler.ReadBit() == 1 {
			u = append(u, i)
		}
	}
	return
}

// ShallowCopy creates a shallow copy of the receiver in which the temporary
// buffers are reallocated. The receiver and the returned [SubsetSampler] can
// be used concurrently if the underlying PRNG is thread safe.
func (s *SubsetSampler) ShallowCopy() *SubsetSampler {
	return &SubsetSampler{
		tau:     s.tau,
		sampler: s.sampler.ShallowCopy(),
	}
}
