package structs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mathisbot/homomorph/utils/buffer"
)

// MaxVectorSize is the largest number of components accepted when decoding a [Vector].
const MaxVectorSize = 1 << 24

// Vector is a struct wrapping a slice of components of type T.
// Depending on the method called, *T must implement [CopyNewer],
// [BinarySizer], [Equatable], io.WriterTo or io.ReaderFrom.
type Vector[T any] []T

// CopyNew returns a deep copy of the object.
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {

	if _, isCopiable := any(new(T)).(CopyNewer[T]); !isCopiable {
		var t T
		panic(fmt.Errorf("vector component of type %T does not comply to %T", t, new(CopyNewer[T])))
	}

	vcpy = Vector[T](make([]T, len(v)))
	for i := range v {
		vcpy[i] = *any(&v[i]).(CopyNewer[T]).CopyNew()
	}

	return
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {

	if _, isSizable := any(new(T)).(BinarySizer); !isSizable {
		var t T
		panic(fmt.Errorf("vector component of type %T does not comply to %T", t, new(BinarySizer)))
	}

	size += 8
	for i := range v {
		size += any(&v[i]).(BinarySizer).BinarySize()
	}

	return
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var t T
		if _, isWritable := any(new(T)).(io.WriterTo); !isWritable {
			return 0, fmt.Errorf("vector component of type %T does not comply to %T", t, new(io.WriterTo))
		}

		var inc int64
		if inc, err = buffer.WriteAsUint64[int](w, len(v)); err != nil {
			return inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		for i := range v {
			if inc, err = any(&v[i]).(io.WriterTo).WriteTo(w); err != nil {
				return n + inc, fmt.Errorf("%T.WriteTo: %w", t, err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var t T
		if _, isReadable := any(new(T)).(io.ReaderFrom); !isReadable {
			return 0, fmt.Errorf("vector component of type %T does not comply to %T", t, new(io.ReaderFrom))
		}

		var inc int64

		var size int
		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if size < 0 || size > MaxVectorSize {
			return n, fmt.Errorf("invalid vector size %d", size)
		}

		// the backing array is never reused: it may be shared with other values
		*v = make([]T, size)

		for i := range *v {
			if inc, err = any(&(*v)[i]).(io.ReaderFrom).ReadFrom(r); err != nil {
				return n + inc, fmt.Errorf("%T.ReadFrom: %w", t, err)
			}
			n += inc
		}

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a deep equal.
func (v Vector[T]) Equal(other Vector[T]) (isEqual bool) {

	if _, isEquatable := any(new(T)).(Equatable[T]); !isEquatable {
		var t T
		panic(fmt.Errorf("vector component of type %T does not comply to %T", t, new(Equatable[T])))
	}

	if len(v) != len(other) {
		return false
	}

	for i := range v {
		if !any(&v[i]).(Equatable[T]).Equal(&other[i]) {
			return false
		}
	}

	return true
}
