package streams_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-stream-idioms/streams"
)

func BenchmarkWordFrequencies(b *testing.B) {
	text := strings.Repeat("Java is fun and Java is powerful ", 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		streams.WordFrequencies(text)
	}
}

func BenchmarkSecondHighestDistinct(b *testing.B) {
	values := make([]int, 10_000)
	for i := range values {
		values[i] = i % 5000
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		streams.SecondHighestDistinct(values)
	}
}
