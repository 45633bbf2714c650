package atns

import (
	"github.com/kittclouds/engraf/pkg/atn"
	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/vector"
)

const (
	vpStart atn.Node = iota
	vpAfterVerb
	vpAfterObject
	vpAfterPreps
	vpEnd
)

type vpBuilder struct {
	verbTok    vector.Vector
	isToBe     bool
	objectTok  *vector.Vector
	prepToks   []vector.Vector
	complement *vector.Vector
	tokens     []vector.Vector
}

var vpGraph = buildVPGraph()

func buildVPGraph() *atn.Graph[vector.Vector] {
	g := atn.New[vector.Vector]()

	g.AddArc(vpStart, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			return pos < len(stream) && (stream[pos].Isa(vector.DimVerb) || stream[pos].Isa(vector.DimToBe))
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*vpBuilder)
			t := stream[pos]
			b.verbTok = t
			b.isToBe = t.Isa(vector.DimToBe)
			b.tokens = append(b.tokens, t)
			return b, 1
		},
		Target: vpAfterVerb,
	})

	// Optional NP object.
	g.AddArc(vpAfterVerb, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			return pos < len(stream) && stream[pos].Isa(vector.DimNP)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*vpBuilder)
			t := stream[pos]
			b.objectTok = &t
			b.tokens = append(b.tokens, t)
			return b, 1
		},
		Target: vpAfterObject,
	})
	g.AddArc(vpAfterVerb, atn.Arc[vector.Vector]{
		Guard:  func(stream []vector.Vector, pos int, acc any) bool { return true },
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) { return acc, 0 },
		Target: vpAfterObject,
	})

	// Zero or more PP tokens.
	g.AddArc(vpAfterObject, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			return pos < len(stream) && stream[pos].Isa(vector.DimPP)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*vpBuilder)
			b.prepToks = append(b.prepToks, stream[pos])
			b.tokens = append(b.tokens, stream[pos])
			return b, 1
		},
		Target: vpAfterObject,
	})
	g.AddArc(vpAfterObject, atn.Arc[vector.Vector]{
		Guard:  func(stream []vector.Vector, pos int, acc any) bool { return true },
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) { return acc, 0 },
		Target: vpAfterPreps,
	})

	// Optional adjective complement, accepted only after a transform verb
	// ("make it bigger").
	g.AddArc(vpAfterPreps, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			b := acc.(*vpBuilder)
			return pos < len(stream) && stream[pos].Isa(vector.DimAdj) && b.verbTok.Isa(vector.DimTransform)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*vpBuilder)
			t := stream[pos]
			b.complement = &t
			b.tokens = append(b.tokens, t)
			return b, 1
		},
		Target: vpEnd,
	})
	g.AddArc(vpAfterPreps, atn.Arc[vector.Vector]{
		Guard:  func(stream []vector.Vector, pos int, acc any) bool { return true },
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) { return acc, 0 },
		Target: vpEnd,
	})

	return g
}

// TryVerbPhrase attempts to parse a VP starting at stream[pos]. stream
// must be Layer-3 tokens: NP and PP spans already replaced by composite
// tokens.
func TryVerbPhrase(stream []vector.Vector, pos int) (*phrase.VerbPhrase, int, error) {
	b := &vpBuilder{}
	result, newPos, ok := atn.Run(vpGraph, vpStart, vpEnd, stream, pos, any(b))
	if !ok {
		return nil, 0, nil
	}
	b = result.(*vpBuilder)

	vp := &phrase.VerbPhrase{
		Verb:       b.verbTok.Word,
		IsToBe:     b.isToBe,
		Complement: b.complement,
	}
	composite := b.verbTok
	if b.objectTok != nil {
		if np, ok := b.objectTok.Phrase.(*phrase.NounPhrase); ok {
			vp.Object = np
		}
		composite = composite.Add(*b.objectTok)
	}
	for _, p := range b.prepToks {
		if pp, ok := p.Phrase.(*phrase.PrepositionalPhrase); ok {
			vp.Preps = append(vp.Preps, pp)
		}
		composite = composite.Add(p)
	}
	if b.complement != nil {
		composite = composite.Add(*b.complement)
	}
	vp.Composite = composite
	return vp, newPos - pos, nil
}
