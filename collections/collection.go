package collections

import "sort"

// Collection is an immutable, ordered sequence of T.
//
// Methods never modify the receiver; each transformation returns a new
// Collection backed by its own slice.
type Collection[T any] struct {
	items []T
}

// From creates a Collection holding a copy of items.
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates a Collection with no items.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// All returns a copy of the items. It is never nil.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// First returns the leading item, or false when c is empty.
func (c *Collection[T]) First() (item T, ok bool) {
	if len(c.items) == 0 {
		return item, false
	}
	return c.items[0], true
}

// Filter keeps the items for which keep(item, index) is true.
func (c *Collection[T]) Filter(keep func(T, int) bool) *Collection[T] {
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if keep(item, i) {
			out = append(out, item)
		}
	}
	return &Collection[T]{items: out}
}

// Sort orders the items by less. Equal items keep their relative order.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &Collection[T]{items: out}
}

// Skip drops the first n items. n <= 0 keeps everything.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	if n >= len(c.items) {
		return Empty[T]()
	}
	if n < 0 {
		n = 0
	}
	return From(c.items[n:])
}
