package streams

import "github.com/hasbyte1/go-stream-idioms/collections"

// Flatten concatenates the inner slices of nested in order. The result is a
// fresh, non-nil slice; empty or nil inner slices contribute nothing.
func Flatten[T any](nested [][]T) []T {
	return collections.Collapse(collections.From(nested)).All()
}
