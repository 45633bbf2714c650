// Package atns implements the NP/PP/VP/Sentence phrase sub-networks as
// pkg/atn graphs over vector.Vector token streams, producing pkg/phrase
// records on success. Each graph mirrors one "tryX" function of the
// teacher's scanner.chunker, but expressed as arcs (data) instead of a
// hand-written recursive-descent function.
package atns

import (
	"github.com/kittclouds/engraf/pkg/atn"
	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/vector"
)

const (
	npStart atn.Node = iota
	npMods
	npHeadNode
	npEnd
)

type npBuilder struct {
	determiner   string
	quantity     float64
	detTok       *vector.Vector
	mods         []vector.Vector
	properName   string
	isProperNoun bool
	tokens       []vector.Vector
}

var npGraph = buildNPGraph()

func buildNPGraph() *atn.Graph[vector.Vector] {
	g := atn.New[vector.Vector]()

	// Start: optional determiner, else fall through unconditionally.
	g.AddArc(npStart, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			return pos < len(stream) && stream[pos].Isa(vector.DimDet)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*npBuilder)
			tok := stream[pos]
			b.determiner = tok.Word
			b.quantity = tok.Get(vector.DimQuantity)
			b.detTok = &tok
			b.tokens = append(b.tokens, tok)
			return b, 1
		},
		Target: npMods,
	})
	g.AddArc(npStart, atn.Arc[vector.Vector]{
		Guard:  func(stream []vector.Vector, pos int, acc any) bool { return true },
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) { return acc, 0 },
		Target: npMods,
	})

	// Mods: adverb+adjective, adjective alone, "called <quoted>" proper
	// noun annotation, each self-looping; epsilon fallthrough to the
	// required head.
	g.AddArc(npMods, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			return pos+1 < len(stream) && stream[pos].Isa(vector.DimAdv) && stream[pos+1].Isa(vector.DimAdj)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*npBuilder)
			scale := stream[pos].Get(vector.DimAdv)
			adjVec := stream[pos+1].Scale(scale)
			adjVec.Word = stream[pos+1].Word
			b.mods = append(b.mods, adjVec)
			b.tokens = append(b.tokens, stream[pos], stream[pos+1])
			return b, 2
		},
		Target: npMods,
	})
	g.AddArc(npMods, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			return pos < len(stream) && stream[pos].Isa(vector.DimAdj)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*npBuilder)
			b.mods = append(b.mods, stream[pos])
			b.tokens = append(b.tokens, stream[pos])
			return b, 1
		},
		Target: npMods,
	})
	g.AddArc(npMods, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			return pos+1 < len(stream) && stream[pos].Word == "called" && stream[pos+1].Isa(vector.DimQuoted)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*npBuilder)
			b.isProperNoun = true
			b.properName = stream[pos+1].Word
			b.tokens = append(b.tokens, stream[pos], stream[pos+1])
			return b, 2
		},
		Target: npMods,
	})
	g.AddArc(npMods, atn.Arc[vector.Vector]{
		Guard:  func(stream []vector.Vector, pos int, acc any) bool { return true },
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) { return acc, 0 },
		Target: npHeadNode,
	})

	// Required head: noun, pronoun, or a bare vector literal.
	g.AddArc(npHeadNode, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			if pos >= len(stream) {
				return false
			}
			t := stream[pos]
			return t.Isa(vector.DimNoun) || t.Isa(vector.DimPronoun) || t.Isa(vector.DimVectorLiteral)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*npBuilder)
			b.tokens = append(b.tokens, stream[pos])
			return b, 1
		},
		Target: npEnd,
	})

	return g
}

// TryNounPhrase attempts to parse an NP starting at stream[pos]. It
// returns (nil, 0, nil) if no NP starts there, the built NounPhrase and
// tokens consumed on success, or a *NumberAgreement error if a
// determiner/noun mismatch is detected (the NP still reflects what was
// parsed; callers drop the hypothesis on a non-nil error).
func TryNounPhrase(stream []vector.Vector, pos int) (*phrase.NounPhrase, int, error) {
	b := &npBuilder{}
	result, newPos, ok := atn.Run(npGraph, npStart, npEnd, stream, pos, any(b))
	if !ok {
		return nil, 0, nil
	}
	b = result.(*npBuilder)
	consumed := newPos - pos
	head := stream[newPos-1]

	np := &phrase.NounPhrase{
		Determiner:   b.determiner,
		IsProperNoun: b.isProperNoun,
		Tokens:       b.tokens,
	}

	switch {
	case b.isProperNoun:
		np.Noun = b.properName
	case head.Isa(vector.DimPronoun):
		np.IsPronoun = true
		np.Noun = head.Word
	case head.Isa(vector.DimVectorLiteral):
		np.Noun = ""
	default:
		np.Noun = head.Word
	}

	composite := head
	for _, m := range b.mods {
		composite = composite.Add(m)
	}
	if b.detTok != nil {
		composite = composite.Add(*b.detTok)
	}
	np.Composite = composite

	if err := checkNumberAgreement(b, head); err != nil {
		return np, consumed, err
	}
	return np, consumed, nil
}

func checkNumberAgreement(b *npBuilder, head vector.Vector) error {
	if b.detTok == nil {
		return nil
	}
	det := *b.detTok
	switch {
	case det.Isa(vector.DimSingular) && head.Isa(vector.DimPlural):
		return &NumberAgreement{Determiner: b.determiner, Noun: head.Word}
	case (det.Isa(vector.DimPlural) || b.quantity > 1) && head.Isa(vector.DimSingular) && !head.Isa(vector.DimPlural):
		return &NumberAgreement{Determiner: b.determiner, Noun: head.Word}
	default:
		return nil
	}
}
