// Package phrase implements the tagged-variant phrase data model: a
// NounPhrase, PrepositionalPhrase, VerbPhrase, SentencePhrase or
// ConjunctionPhrase, each satisfying the Phrase interface. This replaces
// an inheritance hierarchy with a closed sum type, dispatching
// PrintString and Equals on the concrete type the way the teacher's
// scanner.chunker dispatches on its Chunk.Kind tag rather than subtyping.
package phrase

import (
	"fmt"
	"strings"

	"github.com/kittclouds/engraf/pkg/vector"
)

// Phrase is the common surface every phrase variant implements. It also
// satisfies vector.PhraseRef, so composite tokens built from a Phrase can
// carry it as their back-pointer without pkg/vector importing this
// package.
type Phrase interface {
	// PrintString renders a short human-readable form, e.g.
	// "NP(the red sphere)".
	PrintString() string

	// OriginalText returns the source-surface span the phrase was built
	// from, joining the surface words of its constituents in order.
	OriginalText() string

	// Vector returns the phrase's composite vector (sum of constituent
	// vectors, with adverb scaling already applied).
	Vector() vector.Vector

	// Equals reports structural equality: same variant, same salient
	// attributes, recursively for sub-phrases.
	Equals(other Phrase) bool
}

// GroundingCandidate pairs a grounded scene object id with the confidence
// the grounder assigned it. Defined here (not pkg/grounder) so NounPhrase
// can hold its own grounding result without an import cycle.
type GroundingCandidate struct {
	ObjectID   string
	Confidence float64
}

// NounPhrase is determiner + (adverb* adjective | proper-noun annotation)*
// + noun (or pronoun, or a bare vector literal), plus any attached
// prepositional phrases and the grounding result once resolved.
type NounPhrase struct {
	Determiner  string   // "" if absent
	Noun        string   // "" for a bare vector-literal NP
	IsPronoun   bool
	IsProperNoun bool
	Preps       []*PrepositionalPhrase
	Tokens      []vector.Vector // consumed lexical tokens, in order
	Composite   vector.Vector

	// Grounding is nil until Layer 2 grounding resolves this NP; it holds
	// the match chosen for this hypothesis. pkg/grounder does not fill
	// Alternatives: each alternative candidate becomes its own hypothesis.
	Grounding    *GroundingCandidate
	Alternatives []GroundingCandidate
}

func (np *NounPhrase) Vector() vector.Vector { return np.Composite }

func (np *NounPhrase) OriginalText() string {
	var words []string
	for _, t := range np.Tokens {
		words = append(words, t.Word)
	}
	for _, pp := range np.Preps {
		words = append(words, pp.OriginalText())
	}
	return strings.Join(words, " ")
}

func (np *NounPhrase) PrintString() string {
	var words []string
	for _, t := range np.Tokens {
		words = append(words, t.Word)
	}
	head := strings.Join(words, " ")
	if head == "" {
		head = np.Noun
		if np.Determiner != "" {
			head = np.Determiner + " " + np.Noun
		}
	}
	for _, pp := range np.Preps {
		head += " " + pp.PrintString()
	}
	return "NP(" + head + ")"
}

func (np *NounPhrase) Equals(other Phrase) bool {
	o, ok := other.(*NounPhrase)
	if !ok {
		return false
	}
	if np.Determiner != o.Determiner || np.Noun != o.Noun ||
		np.IsPronoun != o.IsPronoun || np.IsProperNoun != o.IsProperNoun {
		return false
	}
	if !np.Composite.Equals(o.Composite) {
		return false
	}
	if len(np.Preps) != len(o.Preps) {
		return false
	}
	for i := range np.Preps {
		if !np.Preps[i].Equals(o.Preps[i]) {
			return false
		}
	}
	return true
}

// PrepositionalPhrase is an optional "not" negation, a preposition
// surface (possibly a multi-word compound), and either an embedded
// NounPhrase or a bare vector literal as its object.
type PrepositionalPhrase struct {
	Negated     bool
	Preposition string
	Object      *NounPhrase    // nil if VectorLiteral is the object
	VectorLiteral *vector.Vector
	Composite   vector.Vector

	// ReferenceObjectID and SpatialVector are filled in by Layer 3
	// grounding: the resolved reference object's id and a spatial
	// relationship vector (preposition vector + resolved-object vector).
	ReferenceObjectID string
	SpatialVector     *vector.Vector
}

func (pp *PrepositionalPhrase) Vector() vector.Vector { return pp.Composite }

func (pp *PrepositionalPhrase) OriginalText() string {
	var parts []string
	if pp.Negated {
		parts = append(parts, "not")
	}
	parts = append(parts, pp.Preposition)
	if pp.Object != nil {
		parts = append(parts, pp.Object.OriginalText())
	} else if pp.VectorLiteral != nil {
		parts = append(parts, pp.VectorLiteral.Word)
	}
	return strings.Join(parts, " ")
}

func (pp *PrepositionalPhrase) PrintString() string {
	body := pp.Preposition
	if pp.Negated {
		body = "not " + body
	}
	if pp.Object != nil {
		body += " " + pp.Object.PrintString()
	} else if pp.VectorLiteral != nil {
		body += " " + pp.VectorLiteral.Word
	}
	return "PP(" + body + ")"
}

func (pp *PrepositionalPhrase) Equals(other Phrase) bool {
	o, ok := other.(*PrepositionalPhrase)
	if !ok {
		return false
	}
	if pp.Negated != o.Negated || pp.Preposition != o.Preposition {
		return false
	}
	if !pp.Composite.Equals(o.Composite) {
		return false
	}
	switch {
	case pp.Object != nil && o.Object != nil:
		return pp.Object.Equals(o.Object)
	case pp.VectorLiteral != nil && o.VectorLiteral != nil:
		return pp.VectorLiteral.Equals(*o.VectorLiteral)
	default:
		return pp.Object == nil && o.Object == nil && pp.VectorLiteral == nil && o.VectorLiteral == nil
	}
}

// VerbPhrase is a verb, an optional object NounPhrase, zero or more
// attached PrepositionalPhrases, and an optional adjective complement
// for transform verbs like "make it bigger".
type VerbPhrase struct {
	Verb       string
	IsToBe     bool
	Object     *NounPhrase
	Preps      []*PrepositionalPhrase
	Complement *vector.Vector // adjective complement, e.g. "bigger"
	Composite  vector.Vector
}

func (vp *VerbPhrase) Vector() vector.Vector { return vp.Composite }

func (vp *VerbPhrase) OriginalText() string {
	parts := []string{vp.Verb}
	if vp.Object != nil {
		parts = append(parts, vp.Object.OriginalText())
	}
	for _, pp := range vp.Preps {
		parts = append(parts, pp.OriginalText())
	}
	if vp.Complement != nil {
		parts = append(parts, vp.Complement.Word)
	}
	return strings.Join(parts, " ")
}

func (vp *VerbPhrase) PrintString() string {
	body := vp.Verb
	if vp.Object != nil {
		body += " " + vp.Object.PrintString()
	}
	for _, pp := range vp.Preps {
		body += " " + pp.PrintString()
	}
	if vp.Complement != nil {
		body += " " + vp.Complement.Word
	}
	return "VP(" + body + ")"
}

func (vp *VerbPhrase) Equals(other Phrase) bool {
	o, ok := other.(*VerbPhrase)
	if !ok {
		return false
	}
	if vp.Verb != o.Verb || vp.IsToBe != o.IsToBe {
		return false
	}
	if !vp.Composite.Equals(o.Composite) {
		return false
	}
	if (vp.Object == nil) != (o.Object == nil) {
		return false
	}
	if vp.Object != nil && !vp.Object.Equals(o.Object) {
		return false
	}
	if len(vp.Preps) != len(o.Preps) {
		return false
	}
	for i := range vp.Preps {
		if !vp.Preps[i].Equals(o.Preps[i]) {
			return false
		}
	}
	if (vp.Complement == nil) != (o.Complement == nil) {
		return false
	}
	if vp.Complement != nil && !vp.Complement.Equals(*o.Complement) {
		return false
	}
	return true
}

// SentencePhrase is an optional subject NounPhrase, an optional "to be"
// marker, a predicate (either a VerbPhrase or a ConjunctionPhrase of
// VerbPhrases), and an optional vector complement for copular sentences
// like "the cube is red".
type SentencePhrase struct {
	Subject    *NounPhrase
	HasToBe    bool
	Predicate  Phrase // *VerbPhrase or *ConjunctionPhrase
	Complement *vector.Vector
	IsQuestion bool
	Composite  vector.Vector
}

func (sp *SentencePhrase) Vector() vector.Vector { return sp.Composite }

func (sp *SentencePhrase) OriginalText() string {
	var parts []string
	if sp.Subject != nil {
		parts = append(parts, sp.Subject.OriginalText())
	}
	if sp.HasToBe {
		parts = append(parts, "is")
	}
	if sp.Predicate != nil {
		parts = append(parts, sp.Predicate.OriginalText())
	}
	if sp.Complement != nil {
		parts = append(parts, sp.Complement.Word)
	}
	return strings.Join(parts, " ")
}

func (sp *SentencePhrase) PrintString() string {
	body := ""
	if sp.Subject != nil {
		body = sp.Subject.PrintString()
	}
	if sp.Predicate != nil {
		if body != "" {
			body += " "
		}
		body += sp.Predicate.PrintString()
	}
	if sp.Complement != nil {
		body += " " + sp.Complement.Word
	}
	return "SP(" + body + ")"
}

func (sp *SentencePhrase) Equals(other Phrase) bool {
	o, ok := other.(*SentencePhrase)
	if !ok {
		return false
	}
	if sp.HasToBe != o.HasToBe || sp.IsQuestion != o.IsQuestion {
		return false
	}
	if !sp.Composite.Equals(o.Composite) {
		return false
	}
	if (sp.Subject == nil) != (o.Subject == nil) {
		return false
	}
	if sp.Subject != nil && !sp.Subject.Equals(o.Subject) {
		return false
	}
	if (sp.Predicate == nil) != (o.Predicate == nil) {
		return false
	}
	if sp.Predicate != nil && !sp.Predicate.Equals(o.Predicate) {
		return false
	}
	if (sp.Complement == nil) != (o.Complement == nil) {
		return false
	}
	if sp.Complement != nil && !sp.Complement.Equals(*o.Complement) {
		return false
	}
	return true
}

// ConjunctionPhrase is a homogeneous list of sub-phrases joined by "and",
// "or" or a comma-then-conjunction chain. Its composite vector includes
// conj=1 and either and=1 or or=1, plus plural=1.
type ConjunctionPhrase struct {
	Conjunction string // "and" or "or"
	SubPhrases  []Phrase
	Composite   vector.Vector
}

func (cp *ConjunctionPhrase) Vector() vector.Vector { return cp.Composite }

func (cp *ConjunctionPhrase) OriginalText() string {
	var parts []string
	for _, p := range cp.SubPhrases {
		parts = append(parts, p.OriginalText())
	}
	return strings.Join(parts, fmt.Sprintf(" %s ", cp.Conjunction))
}

func (cp *ConjunctionPhrase) PrintString() string {
	var parts []string
	for _, p := range cp.SubPhrases {
		parts = append(parts, p.PrintString())
	}
	return "Conj(" + cp.Conjunction + ": " + strings.Join(parts, ", ") + ")"
}

func (cp *ConjunctionPhrase) Equals(other Phrase) bool {
	o, ok := other.(*ConjunctionPhrase)
	if !ok {
		return false
	}
	if cp.Conjunction != o.Conjunction || len(cp.SubPhrases) != len(o.SubPhrases) {
		return false
	}
	for i := range cp.SubPhrases {
		if !cp.SubPhrases[i].Equals(o.SubPhrases[i]) {
			return false
		}
	}
	return true
}

var (
	_ vector.PhraseRef = (*NounPhrase)(nil)
	_ vector.PhraseRef = (*PrepositionalPhrase)(nil)
	_ vector.PhraseRef = (*VerbPhrase)(nil)
	_ vector.PhraseRef = (*SentencePhrase)(nil)
	_ vector.PhraseRef = (*ConjunctionPhrase)(nil)
)
