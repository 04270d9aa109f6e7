// Package buffer implement methods for efficiently writing and reading values
// to and from io.Writer and io.Reader that also expose their internal buffers.
package buffer

import (
	"fmt"
	"io"
)

// Writer is an interface for writers that expose their internal
// buffers.
// This interface is notably implemented by the bufio.Writer type
// (see https://pkg.go.dev/bufio#Writer) and by the Buffer type.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is an interface for readers that expose their internal
// buffers.
// This interface is notably implemented by the bufio.Reader type
// (see https://pkg.go.dev/bufio#Reader) and by the Buffer type.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// Buffer is a fixed-size byte slice that implements [Writer] and [Reader].
// Writes past the end of the slice fail. Reads start at the beginning of the
// slice regardless of what was written.
type Buffer struct {
	data []byte
	w, r int
}

// NewBuffer returns a [Buffer] over data. Writes overwrite data from its
// first byte and reads consume it from its first byte.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewBufferSize returns a [Buffer] over a new zeroed slice of size bytes.
func NewBufferSize(size int) *Buffer {
	return NewBuffer(make([]byte, size))
}

// Write copies p at the write offset. It fails without writing anything if
// p does not fit.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > b.Available() {
		return 0, fmt.Errorf("cannot Write: %d bytes requested but %d available", len(p), b.Available())
	}
	n = copy(b.data[b.w:], p)
	b.w += n
	return
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns an empty slice of capacity b.Available() that
// aliases the unwritten part of b.
func (b *Buffer) AvailableBuffer() []byte {
	return b.data[b.w:b.w]
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.data) - b.w
}

// Bytes returns the whole backing slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Read copies the unread bytes into p. It returns io.EOF if fewer than
// len(p) bytes were left.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.data[b.r:])
	b.r += n
	if n < len(p) {
		err = io.EOF
	}
	return
}

// Size returns the number of unread bytes.
func (b *Buffer) Size() int {
	return len(b.data) - b.r
}

// Peek returns the next n unread bytes without consuming them. The result
// aliases b and is truncated, with io.EOF, if fewer than n bytes are left.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if n > b.Size() {
		return b.data[b.r:], io.EOF
	}
	return b.data[b.r : b.r+n], nil
}

// Discard consumes the next n unread bytes. It returns io.EOF if fewer than
// n bytes were left.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if n > b.Size() {
		n, err = b.Size(), io.EOF
	}
	b.r += n
	return n, err
}
