// Package streams implements three small collection idioms on top of
// [collections.Collection]:
//
//	streams.WordFrequencies("Java is fun and Java is powerful")
//	// → map[Java:2 and:1 fun:1 is:2 powerful:1]
//
//	streams.Flatten([][]int{{1, 2}, {3, 4}})
//	// → [1 2 3 4]
//
//	streams.SecondHighestDistinct([]int{5, 3, 9, 7, 1})
//	// → 7, true
//
// Every function is pure: inputs are never modified and the same input always
// yields the same output. None of them can fail; a missing second-highest
// value is reported through the boolean result instead of an error.
package streams
