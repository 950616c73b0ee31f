// Package collections provides the small immutable Collection type the
// stream idioms in this module are built on.
//
//	ranked := collections.From([]int{5, 3, 9, 7, 1}).
//	    Sort(func(a, b int) bool { return a > b }).
//	    Skip(1)
//	second, _ := ranked.First() // → 7
//
// Neither the receiver nor the slice passed to [From] is ever modified.
// Operations that change the element type, or need an extra constraint,
// are package-level functions: [CountBy], [Compact], [Collapse].
package collections
