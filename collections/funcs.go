package collections

// CountBy counts items per key. Keys appear in the order they were first
// seen, so the result is deterministic.
//
//	collections.CountBy(collections.From([]string{"a", "b", "a"}),
//	    func(s string) string { return s })
//	// → [{a 2} {b 1}]
func CountBy[T any, K comparable](c *Collection[T], key func(T) K) *Collection[Pair[K, int]] {
	index := make(map[K]int)
	out := make([]Pair[K, int], 0)
	for _, item := range c.items {
		k := key(item)
		if i, ok := index[k]; ok {
			out[i].Second++
			continue
		}
		index[k] = len(out)
		out = append(out, Pair[K, int]{First: k, Second: 1})
	}
	return &Collection[Pair[K, int]]{items: out}
}

// Compact drops every item that equals the item just before it. On a sorted
// collection this removes all duplicates. equal decides equality, so values
// the == operator never matches (such as NaN) can still be merged.
func Compact[T any](c *Collection[T], equal func(a, b T) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool {
		return i == 0 || !equal(c.items[i-1], item)
	})
}

// Collapse concatenates the inner slices of c, one level deep.
//
//	collections.Collapse(collections.From([][]int{{1, 2}, {3, 4}}))
//	// → [1 2 3 4]
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	total := 0
	for _, chunk := range c.items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range c.items {
		out = append(out, chunk...)
	}
	return &Collection[T]{items: out}
}
