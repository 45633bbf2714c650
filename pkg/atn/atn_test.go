package atn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A tiny two-arc graph over strings: start -[== "a"]-> mid -[== "b"]-> end.
// Exercises guard/effect/rewind without any real token type.

const (
	start Node = iota
	mid
	stop
)

func buildABGraph() *Graph[string] {
	g := New[string]()
	g.AddArc(start, Arc[string]{
		Guard: func(stream []string, pos int, acc any) bool {
			return pos < len(stream) && stream[pos] == "a"
		},
		Effect: func(stream []string, pos int, acc any) (any, int) {
			return append(acc.([]string), stream[pos]), 1
		},
		Target: mid,
	})
	g.AddArc(mid, Arc[string]{
		Guard: func(stream []string, pos int, acc any) bool {
			return pos < len(stream) && stream[pos] == "b"
		},
		Effect: func(stream []string, pos int, acc any) (any, int) {
			return append(acc.([]string), stream[pos]), 1
		},
		Target: stop,
	})
	return g
}

func TestRunSucceeds(t *testing.T) {
	g := buildABGraph()
	acc, pos, ok := Run(g, start, stop, []string{"a", "b", "c"}, 0, []string{})
	require.True(t, ok)
	require.Equal(t, 2, pos)
	require.Equal(t, []string{"a", "b"}, acc.([]string))
}

func TestRunFailsRewinds(t *testing.T) {
	g := buildABGraph()
	_, pos, ok := Run(g, start, stop, []string{"a", "c"}, 0, []string{})
	require.False(t, ok)
	require.Equal(t, 0, pos)
}

func TestRunTriesArcsInDeclarationOrder(t *testing.T) {
	g := New[string]()
	var order []string
	g.AddArc(start, Arc[string]{
		Guard:  func(stream []string, pos int, acc any) bool { order = append(order, "first"); return false },
		Effect: func(stream []string, pos int, acc any) (any, int) { return acc, 0 },
		Target: stop,
	})
	g.AddArc(start, Arc[string]{
		Guard:  func(stream []string, pos int, acc any) bool { order = append(order, "second"); return true },
		Effect: func(stream []string, pos int, acc any) (any, int) { return acc, 0 },
		Target: stop,
	})
	_, _, ok := Run(g, start, stop, []string{}, 0, nil)
	require.True(t, ok)
	require.Equal(t, []string{"first", "second"}, order)
}
