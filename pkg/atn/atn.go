// Package atn implements the generic Augmented Transition Network engine
// that drives every phrase recognizer in pkg/atns: a directed graph of
// nodes whose labeled outgoing arcs test the current token and mutate an
// accumulator, explored depth-first with rewind-on-failure.
//
// The same shape recurs throughout the teacher's scanner.chunker
// try-pattern-in-priority-order functions (tryNounPhrase, tryVerbPhrase,
// ...); this package lifts that recurring control flow into data (arcs)
// so each phrase type becomes a graph instead of a hand-written function.
package atn

// Node names a state in a sub-network graph. Node(0) has no special
// meaning; callers pick their own start/end constants.
type Node int

// Arc is one labeled transition out of a node.
type Arc[T any] struct {
	// Guard reports whether this arc may be taken from the current
	// position, given the accumulator built so far. It must not mutate
	// anything.
	Guard func(stream []T, pos int, acc any) bool

	// Effect runs once Guard has approved the arc. It returns the new
	// accumulator and how many stream positions were consumed (0 for an
	// epsilon transition that only inspects state).
	Effect func(stream []T, pos int, acc any) (newAcc any, consumed int)

	// Target is the node this arc leads to.
	Target Node
}

// Graph is a sub-network: a set of nodes, each with its outgoing arcs in
// declaration order. Arcs are tried in that order — ambiguity is never
// resolved inside the engine, only by the enclosing layer calling Run
// greedily from every position.
type Graph[T any] struct {
	arcs map[Node][]Arc[T]
}

// New returns an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{arcs: make(map[Node][]Arc[T])}
}

// AddArc appends arc to from's outgoing arc list.
func (g *Graph[T]) AddArc(from Node, arc Arc[T]) {
	g.arcs[from] = append(g.arcs[from], arc)
}

// Run performs a depth-first exploration of arcs from start, looking for
// a path to end. It returns the accumulator and stream position reached
// at end, or ok=false if no path completes — in which case acc and pos
// are exactly the values passed in, i.e. the stream is rewound to the
// entry position of this call.
func Run[T any](g *Graph[T], start, end Node, stream []T, pos int, acc any) (newAcc any, newPos int, ok bool) {
	if start == end {
		return acc, pos, true
	}

	for _, arc := range g.arcs[start] {
		if pos > len(stream) {
			continue
		}
		if !arc.Guard(stream, pos, acc) {
			continue
		}
		effectAcc, consumed := arc.Effect(stream, pos, acc)
		nextPos := pos + consumed

		if finalAcc, finalPos, ok := Run(g, arc.Target, end, stream, nextPos, effectAcc); ok {
			return finalAcc, finalPos, true
		}
		// Arc's branch dead-ended: rewind by simply discarding
		// effectAcc/nextPos and trying the next arc from pos/acc.
	}

	return acc, pos, false
}
