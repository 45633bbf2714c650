package atns

import (
	"github.com/kittclouds/engraf/pkg/atn"
	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/vector"
)

const (
	ppStart atn.Node = iota
	ppAfterNeg
	ppAfterPrep
	ppEnd
)

type ppBuilder struct {
	negated     bool
	prepTok     vector.Vector
	objectTok   vector.Vector
	hasObjectNP bool
	tokens      []vector.Vector
}

var ppGraph = buildPPGraph()

func buildPPGraph() *atn.Graph[vector.Vector] {
	g := atn.New[vector.Vector]()

	g.AddArc(ppStart, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			return pos < len(stream) && stream[pos].Isa(vector.DimNeg)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*ppBuilder)
			b.negated = true
			b.tokens = append(b.tokens, stream[pos])
			return b, 1
		},
		Target: ppAfterNeg,
	})
	g.AddArc(ppStart, atn.Arc[vector.Vector]{
		Guard:  func(stream []vector.Vector, pos int, acc any) bool { return true },
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) { return acc, 0 },
		Target: ppAfterNeg,
	})

	g.AddArc(ppAfterNeg, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			return pos < len(stream) && stream[pos].Isa(vector.DimPrep)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*ppBuilder)
			b.prepTok = stream[pos]
			b.tokens = append(b.tokens, stream[pos])
			return b, 1
		},
		Target: ppAfterPrep,
	})

	g.AddArc(ppAfterPrep, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			if pos >= len(stream) {
				return false
			}
			t := stream[pos]
			return t.Isa(vector.DimNP) || t.Isa(vector.DimVectorLiteral)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*ppBuilder)
			t := stream[pos]
			b.objectTok = t
			b.hasObjectNP = t.Isa(vector.DimNP)
			b.tokens = append(b.tokens, t)
			return b, 1
		},
		Target: ppEnd,
	})

	return g
}

// TryPrepositionalPhrase attempts to parse a PP starting at stream[pos].
// stream must be Layer-2 tokens: NP spans already replaced by composite
// NP tokens, so the PP's object is recognized as a single token.
func TryPrepositionalPhrase(stream []vector.Vector, pos int) (*phrase.PrepositionalPhrase, int, error) {
	b := &ppBuilder{}
	result, newPos, ok := atn.Run(ppGraph, ppStart, ppEnd, stream, pos, any(b))
	if !ok {
		return nil, 0, nil
	}
	b = result.(*ppBuilder)

	pp := &phrase.PrepositionalPhrase{
		Negated:     b.negated,
		Preposition: b.prepTok.Word,
	}
	composite := b.prepTok
	if b.hasObjectNP {
		np, _ := b.objectTok.Phrase.(*phrase.NounPhrase)
		pp.Object = np
		composite = composite.Add(b.objectTok)
	} else {
		lit := b.objectTok
		pp.VectorLiteral = &lit
		composite = composite.Add(lit)
	}
	pp.Composite = composite
	return pp, newPos - pos, nil
}
