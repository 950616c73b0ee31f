package streams_test

import (
	"testing"

	"github.com/hasbyte1/go-stream-idioms/streams"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestFlatten(t *testing.T) {
	assertSlice(t, streams.Flatten([][]int{{1, 2}, {3, 4}}), []int{1, 2, 3, 4})
}

func TestFlattenEmptyOuter(t *testing.T) {
	got := streams.Flatten([][]int{})
	if got == nil || len(got) != 0 {
		t.Fatalf("Flatten([]) = %#v; want empty non-nil slice", got)
	}
	if got := streams.Flatten[int](nil); got == nil || len(got) != 0 {
		t.Fatalf("Flatten(nil) = %#v; want empty non-nil slice", got)
	}
}

func TestFlattenSkipsEmptyInner(t *testing.T) {
	assertSlice(t, streams.Flatten([][]int{{}, {1}}), []int{1})
	assertSlice(t, streams.Flatten([][]int{nil, {2, 3}, {}}), []int{2, 3})
}

func TestFlattenDoesNotAliasInput(t *testing.T) {
	nested := [][]int{{1, 2}, {3}}
	got := streams.Flatten(nested)
	got[0] = 99
	if nested[0][0] != 1 {
		t.Fatal("Flatten result aliases the input")
	}
}

func TestFlattenStrings(t *testing.T) {
	assertSlice(t, streams.Flatten([][]string{{"a"}, {"b", "c"}}), []string{"a", "b", "c"})
}

func TestFlattenRepeatable(t *testing.T) {
	nested := [][]int{{1, 2}, {}, {3, 4}}
	first := streams.Flatten(nested)
	for i := 0; i < 3; i++ {
		assertSlice(t, streams.Flatten(nested), first)
	}
	assertSlice(t, first, []int{1, 2, 3, 4})
}
