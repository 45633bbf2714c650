// Package vocab maps surface words, and multi-word compounds, to vectors,
// generating inflected forms (plurals, verb tenses, comparatives and
// superlatives) at lookup time from a small set of base entries.
//
// Multi-word compounds ("left of", "in front of") are distinct entries
// keyed by their exact joined surface; a single Aho-Corasick automaton
// indexes every entry, single-word and compound alike, so Layer 1 can
// probe for the longest match at each position in one pass instead of a
// hand-rolled decreasing-length scan — the approach the teacher's own
// compound dictionary (pkg/dafsa/dictionary.go) takes.
package vocab

import (
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/kittclouds/engraf/pkg/vector"
)

// Vocabulary is a read-only-after-build mapping from surface word (or
// compound) to vector, with inflection generation layered on top.
type Vocabulary struct {
	entries   map[string]vector.Vector
	inflect   InflectionConfig
	ac        ahocorasick.AhoCorasick
	acBuilt   bool
	acPattern []string
}

// New creates an empty vocabulary using the default inflection factors.
func New() *Vocabulary {
	return &Vocabulary{
		entries: make(map[string]vector.Vector),
		inflect: DefaultInflectionConfig(),
	}
}

// WithInflectionConfig overrides the comparative/superlative strengthening
// factors.
func (v *Vocabulary) WithInflectionConfig(cfg InflectionConfig) *Vocabulary {
	v.inflect = cfg
	return v
}

// Define registers a base-form entry. surface is normalized (trimmed,
// lower-cased) before storage; multi-word compounds are keyed by their
// exact joined, normalized surface. Define invalidates any built
// automaton — call Build once after all entries are defined.
func (v *Vocabulary) Define(surface string, vec vector.Vector) {
	key := normalizeSurface(surface)
	vec.Word = surface
	v.entries[key] = vec
	v.acBuilt = false
}

// Build constructs the Aho-Corasick automaton over every defined surface
// form. LongestMatch calls it itself when no automaton has been built
// since the last Define; Lookup never uses the automaton.
func (v *Vocabulary) Build() {
	patterns := make([]string, 0, len(v.entries))
	for k := range v.entries {
		patterns = append(patterns, k)
	}
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	v.ac = builder.Build(patterns)
	v.acPattern = patterns
	v.acBuilt = true
}

func normalizeSurface(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lookup resolves surface (a single token or, for compounds, an exact
// joined phrase) against the vocabulary, trying an exact match first and
// then each inflection rule in turn. It fails with *UnknownToken if
// nothing matches.
func (v *Vocabulary) Lookup(surface string) (vector.Vector, error) {
	key := normalizeSurface(surface)

	if vec, ok := v.entries[key]; ok {
		out := vec.Copy()
		out.Word = surface
		return out, nil
	}

	if vec, ok := v.lookupInflected(key); ok {
		vec.Word = surface
		return vec, nil
	}

	return vector.Vector{}, NewUnknownToken(surface)
}

// MatchKind reports the category of match Lookup would use for surface,
// without allocating a vector; used by Layer 1 to compute the per-token
// confidence factors of spec §4.E step 3.
func (v *Vocabulary) MatchKind(surface string) (MatchKind, bool) {
	key := normalizeSurface(surface)
	if _, ok := v.entries[key]; ok {
		if strings.Contains(key, " ") {
			return matchCompound, true
		}
		return matchExact, true
	}
	if _, ok := v.lookupInflected(key); ok {
		return matchInflected, true
	}
	return matchUnknownFallback, false
}

func (v *Vocabulary) lookupInflected(key string) (vector.Vector, bool) {
	if strings.Contains(key, " ") {
		return vector.Vector{}, false // compounds are never inflected
	}

	for _, base := range tryPluralBase(key) {
		if vec, ok := v.entries[base]; ok && vec.Isa(vector.DimNoun) {
			return applyPlural(vec), true
		}
	}
	for _, base := range tryVerbPastBase(key) {
		if vec, ok := v.entries[base]; ok && vec.Isa(vector.DimVerb) {
			return applyVerbInflection(vec, vector.DimVerbPast), true
		}
	}
	for _, base := range tryVerbGerundBase(key) {
		if vec, ok := v.entries[base]; ok && vec.Isa(vector.DimVerb) {
			return applyVerbInflection(vec, vector.DimVerbPresentPart), true
		}
	}
	for _, base := range tryComparativeBase(key) {
		if vec, ok := v.entries[base]; ok && vec.Isa(vector.DimAdj) {
			return applyComparative(vec, v.inflect.ComparativeFactor), true
		}
	}
	for _, base := range trySuperlativeBase(key) {
		if vec, ok := v.entries[base]; ok && vec.Isa(vector.DimAdj) {
			return applySuperlative(vec, v.inflect.SuperlativeFactor), true
		}
	}
	return vector.Vector{}, false
}

// LongestMatch finds the longest vocabulary entry (compound or single
// word, exact or inflected) whose surface form starts at byte offset
// start in text, scanning the automaton built by Build. It returns the
// byte length consumed, the resolved vector, and whether a match was
// found. The automaton is built on first use if Build has not been
// called since the last Define.
func (v *Vocabulary) LongestMatch(text string, start int) (length int, vec vector.Vector, ok bool) {
	if !v.acBuilt {
		v.Build()
	}

	best := -1
	bestPattern := ""
	it := v.ac.Iter(text[start:])
	for {
		m := it.Next()
		if m == nil {
			break
		}
		if m.Start() != 0 {
			continue // only matches anchored at start are candidates
		}
		if m.End() > best {
			best = m.End()
			bestPattern = v.acPattern[m.Pattern()]
		}
	}

	// The single token up to the next whitespace/punctuation boundary.
	// An automaton match that ends inside it ("cube" within "cubes")
	// gives way to an inflected lookup of the whole token.
	end := start
	for end < len(text) && !isBoundary(rune(text[end])) {
		end++
	}
	word := text[start:end]

	if best > 0 && best >= len(word) {
		vec, _ := v.Lookup(bestPattern)
		return best, vec, true
	}
	if word != "" {
		if vec, err := v.Lookup(word); err == nil {
			return len(word), vec, true
		}
	}
	if best > 0 {
		vec, _ := v.Lookup(bestPattern)
		return best, vec, true
	}
	return 0, vector.Vector{}, false
}

func isBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',', '.', '!', '?', ';', ':':
		return true
	default:
		return false
	}
}

// Len reports the number of defined entries (base forms, including
// compounds).
func (v *Vocabulary) Len() int {
	return len(v.entries)
}
