// Package token builds composite tokens from parsed phrases and carries
// the Hypothesis container every layer produces and consumes. A
// composite token is an ordinary vector.Vector: its dimensions are the
// phrase's composite vector, plus the phrase-level marker dimension, a
// human-readable Word, and a Phrase back-pointer.
package token

import (
	"fmt"
	"strings"

	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/vector"
)

// FromPhrase builds the composite token for p, tagging it with marker
// (vector.DimNP/DimPP/DimVP/DimSP) and a parenthesized rendering such as
// "NP(the red sphere)". ConjunctionPhrase tokens additionally get conj=1.
func FromPhrase(p phrase.Phrase, marker vector.Dim) vector.Vector {
	v := p.Vector()
	v.Set(marker, 1)
	if _, isConj := p.(*phrase.ConjunctionPhrase); isConj {
		v.Set(vector.DimConj, 1)
	}
	v.Word = p.PrintString()
	v.Phrase = p
	return v
}

// GroundedPhrase returns the phrase a grounded token's back-pointer
// refers to, or nil if t carries none or the back-pointer is not a
// phrase.Phrase.
func GroundedPhrase(t vector.Vector) phrase.Phrase {
	if t.Phrase == nil {
		return nil
	}
	p, _ := t.Phrase.(phrase.Phrase)
	return p
}

// GroundingResult records, per NP-bearing token, the chosen grounding
// confidence the Hypothesis's overall grounding_results summarizes.
type GroundingResult struct {
	TokenIndex int
	Confidence float64
}

// Hypothesis is one candidate parse: a token sequence, its confidence,
// a human description, the list of span replacements that produced it,
// and optional grounding results once a grounder has run.
type Hypothesis struct {
	Tokens           []vector.Vector
	Confidence       float64
	Description      string
	Replacements     []Replacement
	GroundingResults []GroundingResult
}

// Replacement records that layer-k tokens [Start,End] (inclusive) were
// replaced by a single composite token during phrase tokenization.
type Replacement struct {
	Start, End int
	Phrase     phrase.Phrase
}

// New builds a Hypothesis from an initial token list and confidence.
func New(tokens []vector.Vector, confidence float64, description string) Hypothesis {
	return Hypothesis{Tokens: tokens, Confidence: confidence, Description: description}
}

// HasTokenType reports whether any token in h is marked with dim.
func (h Hypothesis) HasTokenType(dim vector.Dim) bool {
	for _, t := range h.Tokens {
		if t.Isa(dim) {
			return true
		}
	}
	return false
}

// GetTokensOfType returns every token marked with dim, in order.
func (h Hypothesis) GetTokensOfType(dim vector.Dim) []vector.Vector {
	var out []vector.Vector
	for _, t := range h.Tokens {
		if t.Isa(dim) {
			out = append(out, t)
		}
	}
	return out
}

// TokenWords returns the surface Word of every token, in order.
func (h Hypothesis) TokenWords() []string {
	words := make([]string, len(h.Tokens))
	for i, t := range h.Tokens {
		words[i] = t.Word
	}
	return words
}

// PrintString renders h as a diagnostic string: each token's Word, with
// NP/PP/VP/SP tokens rendered via their back-pointer's PrintString.
func (h Hypothesis) PrintString() string {
	var parts []string
	for _, t := range h.Tokens {
		if p := GroundedPhrase(t); p != nil {
			parts = append(parts, p.PrintString())
			continue
		}
		parts = append(parts, t.Word)
	}
	return fmt.Sprintf("[%s] (confidence=%.3f)", strings.Join(parts, " "), h.Confidence)
}

// BracketMarker is one entry of a StructuralRendering: an opening or
// closing phrase-boundary marker with its associated vector.
type BracketMarker struct {
	Label    string // "[NP", "]NP", "[PP", "]PP", "[VP", "]VP", "[SP", "]SP"
	Vector   vector.Vector
	ObjectID string // set on a closer for a grounded NP, else ""
}

// phraseMarkers is ordered outermost first: a composite token also
// carries the markers of the constituents it absorbed (an SP token has
// VP and NP set), so the first marker found names the token itself.
var phraseMarkers = []struct {
	dim  vector.Dim
	name string
}{
	{vector.DimSP, "SP"},
	{vector.DimVP, "VP"},
	{vector.DimPP, "PP"},
	{vector.DimNP, "NP"},
}

// StructuralRendering produces the bracket-marker sequence for h: an
// opener (zero vector) and closer (full phrase vector, plus a scene
// object back-reference when the token's phrase is a grounded
// NounPhrase) for every NP/PP/VP/SP token, interleaved with plain
// tokens. This is a derived view computed on demand, not stored state.
func (h Hypothesis) StructuralRendering() []BracketMarker {
	var out []BracketMarker
	for _, t := range h.Tokens {
		label, isPhrase := "", false
		for _, m := range phraseMarkers {
			if t.Isa(m.dim) {
				label, isPhrase = m.name, true
				break
			}
		}
		if !isPhrase {
			out = append(out, BracketMarker{Label: t.Word, Vector: vector.New()})
			continue
		}
		objectID := ""
		if np, ok := GroundedPhrase(t).(*phrase.NounPhrase); ok && np.Grounding != nil {
			objectID = np.Grounding.ObjectID
		}
		out = append(out, BracketMarker{Label: "[" + label, Vector: vector.New()})
		out = append(out, BracketMarker{Label: "]" + label, Vector: t, ObjectID: objectID})
	}
	return out
}
