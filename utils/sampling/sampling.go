// Package sampling implements secure sampling of bytes and integers.
package sampling

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"
)

// KeySize is the size in bytes of the keys returned by [DeriveKey].
const KeySize = 32

// RandUint64N returns a uniform value in [0, n) read from prng.
// It panics if n is zero or if prng fails.
func RandUint64N(prng PRNG, n uint64) uint64 {

	if n == 0 {
		panic("cannot RandUint64N: n is zero")
	}

	// largest multiple of n that fits, to avoid modulo bias
	limit := ^uint64(0) - (^uint64(0) % n)

	b := make([]byte, 8)
	for {
		if _, err := prng.Read(b); err != nil {
			panic(err)
		}
		if v := binary.LittleEndian.Uint64(b); v < limit {
			return v % n
		}
	}
}

// RandUint64Bits returns a uniform value in [0, 2^bits) read from prng.
// It panics if bits is not in [0, 64] or if prng fails.
func RandUint64Bits(prng PRNG, bits int) uint64 {

	if bits < 0 || bits > 64 {
		panic(fmt.Errorf("cannot RandUint64Bits: bits=%d must be in [0, 64]", bits))
	}

	b := make([]byte, 8)
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}

	return binary.LittleEndian.Uint64(b) & (^uint64(0) >> (64 - bits))
}

// DeriveKey derives a [KeySize]-byte key for [NewKeyedPRNG] from a seed of
// arbitrary length and a label. Distinct labels yield independent streams
// for the same seed.
func DeriveKey(seed []byte, label string) []byte {
	hasher := blake3.New()

	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(label)))

	hasher.Write(size[:])
	hasher.Write([]byte(label))
	hasher.Write(seed)

	sum := hasher.Sum(nil)
	return sum[:KeySize]
}
