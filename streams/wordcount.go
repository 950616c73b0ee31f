package streams

import (
	"strings"

	"github.com/hasbyte1/go-stream-idioms/collections"
)

// Separator is the only character words are split on.
const Separator = " "

// Tokens splits text on [Separator]. Consecutive, leading or trailing
// separators produce empty tokens, and "" yields a single empty token.
// Tokens are not trimmed or case-folded.
func Tokens(text string) []string {
	return strings.Split(text, Separator)
}

// WordFrequencies counts how often each token of text occurs.
func WordFrequencies(text string) map[string]int {
	pairs := OrderedFrequencies(text)
	out := make(map[string]int, len(pairs))
	for _, p := range pairs {
		out[p.First] = p.Second
	}
	return out
}

// OrderedFrequencies is like [WordFrequencies] but keeps the tokens in the
// order they first appear in text.
func OrderedFrequencies(text string) []collections.Pair[string, int] {
	words := collections.From(Tokens(text))
	return collections.CountBy(words, func(w string) string { return w }).All()
}
