package buffer

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ReadAsUint64 reads an uint64 from r and stores it on c as a T.
func ReadAsUint64[T constraints.Integer](r Reader, c *T) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadAsUint64: c is nil")
	}

	var v uint64
	if n, err = ReadUint64(r, &v); err != nil {
		return
	}

	*c = T(v)

	return
}

// ReadAsUint64Slice reads len(c) uint64 from r and stores them on c as T.
func ReadAsUint64Slice[T constraints.Integer](r Reader, c []T) (n int64, err error) {
	var inc int64
	for i := range c {
		if inc, err = ReadAsUint64(r, &c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}

// ReadUint64 reads an uint64 from r and stores it on c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb []byte
	if bb, err = r.Peek(8); err != nil {
		return 0, fmt.Errorf("cannot ReadUint64: %w", err)
	}

	*c = binary.LittleEndian.Uint64(bb)

	nint, err := r.Discard(8)

	return int64(nint), err
}
