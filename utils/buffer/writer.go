package buffer

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

// WriteAsUint64 writes c to w as an uint64.
// Negative values are written in two's complement.
func WriteAsUint64[T constraints.Integer](w Writer, c T) (n int64, err error) {
	return WriteUint64(w, uint64(c))
}

// WriteAsUint64Slice writes each element of c to w as an uint64.
func WriteAsUint64Slice[T constraints.Integer](w Writer, c []T) (n int64, err error) {
	var inc int64
	for i := range c {
		if inc, err = WriteUint64(w, uint64(c[i])); err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}

// WriteUint64 writes an uint64 c to w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}
