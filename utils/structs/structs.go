// Package structs implements helpers to generalize vectors of structs, as well as their serialization.
package structs

// CopyNewer is implemented by objects returning a deep copy of themselves.
type CopyNewer[V any] interface {
	CopyNew() *V
}

// BinarySizer is implemented by objects reporting their serialized size in bytes.
type BinarySizer interface {
	BinarySize() int
}

// Equatable is implemented by objects comparable by deep equality.
type Equatable[T any] interface {
	Equal(*T) bool
}
