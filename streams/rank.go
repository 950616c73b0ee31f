package streams

import (
	"cmp"

	"github.com/hasbyte1/go-stream-idioms/collections"
)

// NotFound is the fallback conventionally shown when no second-highest
// value exists. Prefer the boolean result of [SecondHighestDistinct]: -1 is
// also a valid input value.
const NotFound = -1

// NthHighestDistinct returns the value at rank n (0 is the maximum) among
// the distinct values of values, ranked descending. ok is false when there
// are not more than n distinct values or n is negative.
//
// Values are distinct when [cmp.Compare] says so: every NaN counts as one
// value, ranked below all numbers.
func NthHighestDistinct[T cmp.Ordered](values []T, n int) (v T, ok bool) {
	if n < 0 {
		return v, false
	}
	sorted := collections.From(values).Sort(func(a, b T) bool { return cmp.Less(b, a) })
	ranked := collections.Compact(sorted, func(a, b T) bool { return cmp.Compare(a, b) == 0 })
	return ranked.Skip(n).First()
}

// SecondHighestDistinct returns the second-largest distinct value. Duplicates
// of the maximum do not count, so [5 5 3] yields 3. ok is false for inputs
// with fewer than two distinct values.
func SecondHighestDistinct[T cmp.Ordered](values []T) (T, bool) {
	return NthHighestDistinct(values, 1)
}

// SecondHighestOr is [SecondHighestDistinct] with fallback substituted when
// no second-highest value exists.
func SecondHighestOr(values []int, fallback int) int {
	if v, ok := SecondHighestDistinct(values); ok {
		return v
	}
	return fallback
}
