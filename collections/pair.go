package collections

// Pair holds two values of possibly different types.
// It is the element type produced by [CountBy].
type Pair[A, B any] struct {
	First  A
	Second B
}
