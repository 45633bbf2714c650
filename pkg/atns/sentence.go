package atns

import (
	"github.com/kittclouds/engraf/pkg/atn"
	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/vector"
)

const (
	sentStart atn.Node = iota
	sentAfterSubject
	sentEnd
)

type sentBuilder struct {
	subjectTok  *vector.Vector
	toBeTok     *vector.Vector
	complement  *vector.Vector
	predicateTok *vector.Vector
	tokens      []vector.Vector
}

var sentGraph = buildSentenceGraph()

func buildSentenceGraph() *atn.Graph[vector.Vector] {
	g := atn.New[vector.Vector]()

	g.AddArc(sentStart, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			return pos < len(stream) && stream[pos].Isa(vector.DimNP)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*sentBuilder)
			t := stream[pos]
			b.subjectTok = &t
			b.tokens = append(b.tokens, t)
			return b, 1
		},
		Target: sentAfterSubject,
	})
	g.AddArc(sentStart, atn.Arc[vector.Vector]{
		Guard:  func(stream []vector.Vector, pos int, acc any) bool { return true },
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) { return acc, 0 },
		Target: sentAfterSubject,
	})

	// tobe + vector/adjective complement: "the cube is red".
	g.AddArc(sentAfterSubject, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			if pos+1 >= len(stream) {
				return false
			}
			t := stream[pos]
			next := stream[pos+1]
			return t.Isa(vector.DimToBe) && (next.Isa(vector.DimAdj) || next.Isa(vector.DimVectorLiteral))
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*sentBuilder)
			toBe, comp := stream[pos], stream[pos+1]
			b.toBeTok = &toBe
			b.complement = &comp
			b.tokens = append(b.tokens, toBe, comp)
			return b, 2
		},
		Target: sentEnd,
	})

	// VP predicate, optionally preceded by a tobe token ("is" in "the cube
	// is moving"); a tobe followed by an adjective takes the arc above.
	g.AddArc(sentAfterSubject, atn.Arc[vector.Vector]{
		Guard: func(stream []vector.Vector, pos int, acc any) bool {
			if pos >= len(stream) {
				return false
			}
			t := stream[pos]
			if t.Isa(vector.DimToBe) {
				return pos+1 < len(stream) && stream[pos+1].Isa(vector.DimVP)
			}
			return t.Isa(vector.DimVP)
		},
		Effect: func(stream []vector.Vector, pos int, acc any) (any, int) {
			b := acc.(*sentBuilder)
			consumed := 0
			if stream[pos].Isa(vector.DimToBe) {
				toBe := stream[pos]
				b.toBeTok = &toBe
				b.tokens = append(b.tokens, toBe)
				consumed++
			}
			pred := stream[pos+consumed]
			b.predicateTok = &pred
			b.tokens = append(b.tokens, pred)
			consumed++
			return b, consumed
		},
		Target: sentEnd,
	})

	return g
}

// TrySentence attempts to parse a Sentence starting at stream[pos].
// stream must be Layer-4 tokens: NP/PP/VP spans already replaced by
// composite tokens.
func TrySentence(stream []vector.Vector, pos int) (*phrase.SentencePhrase, int, error) {
	b := &sentBuilder{}
	result, newPos, ok := atn.Run(sentGraph, sentStart, sentEnd, stream, pos, any(b))
	if !ok {
		return nil, 0, nil
	}
	b = result.(*sentBuilder)

	sp := &phrase.SentencePhrase{
		HasToBe:    b.toBeTok != nil,
		Complement: b.complement,
	}
	composite := vector.New()
	if b.subjectTok != nil {
		if p, ok := b.subjectTok.Phrase.(phrase.Phrase); ok {
			sp.Subject, _ = p.(*phrase.NounPhrase)
		}
		composite = composite.Add(*b.subjectTok)
	} else if b.toBeTok != nil || (pos < len(stream) && stream[pos].Isa(vector.DimQuestion)) {
		sp.IsQuestion = true
	}
	if b.toBeTok != nil {
		composite = composite.Add(*b.toBeTok)
	}
	if b.predicateTok != nil {
		if p, ok := b.predicateTok.Phrase.(phrase.Phrase); ok {
			sp.Predicate = p
		}
		composite = composite.Add(*b.predicateTok)
	}
	if b.complement != nil {
		composite = composite.Add(*b.complement)
	}
	sp.Composite = composite
	return sp, newPos - pos, nil
}
