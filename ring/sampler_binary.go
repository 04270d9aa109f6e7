package ring

import (
	"fmt"

	"github.com/mathisbot/homomorph/utils/sampling"
)

const randomBufferSize = 1024

// BinarySampler wraps a sampling.PRNG and represents the state of a sampler
// of polynomials with coefficients uniformly distributed in {0, 1}.
//
// A BinarySampler is not thread safe: use ShallowCopy to obtain instances
// that can be used concurrently.
type BinarySampler struct {
	prng sampling.PRNG
	*randomBuffer
}

// randomBuffer caches random bytes read from the PRNG, consumed one bit at a time.
type randomBuffer struct {
	randomBufferN []byte
	ptr           int
}

func newRandomBuffer() *randomBuffer {
	return &randomBuffer{
		randomBufferN: make([]byte, randomBufferSize),
	}
}

// NewBinarySampler creates a new instance of BinarySampler from a PRNG.
func NewBinarySampler(prng sampling.PRNG) (b *BinarySampler) {
	return &BinarySampler{
		prng:         prng,
		randomBuffer: newRandomBuffer(),
	}
}

// ShallowCopy creates a shallow copy of this BinarySampler in which the
// read-only data-structures are shared with the receiver and the temporary
// buffers are reallocated. The receiver and the returned BinarySampler can
// be used concurrently if the underlying PRNG is thread safe.
func (b *BinarySampler) ShallowCopy() *BinarySampler {
	return NewBinarySampler(b.prng)
}

// ReadBit returns a uniform bit.
func (b *BinarySampler) ReadBit() uint64 {

	buf := b.randomBufferN

	if b.ptr == 0 || b.ptr == len(buf)<<3 {
		if _, err := b.prng.Read(buf); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		b.ptr = 0
	}

	bit := uint64(buf[b.ptr>>3]>>(b.ptr&7)) & 1
	b.ptr++

	return bit
}

// ReadNew returns a new polynomial with n coefficients drawn uniformly
// and independently from {0, 1}. Its degree is therefore smaller than n.
// It panics if n is negative.
func (b *BinarySampler) ReadNew(n int) (pol Poly) {

	if n < 0 {
		panic(fmt.Errorf("cannot ReadNew: negative number of coefficients %d", n))
	}

	pol.Coeffs = make([]int64, n)
	for i := range pol.Coeffs {
		pol.Coeffs[i] = int64(b.ReadBit())
	}

	return
}
