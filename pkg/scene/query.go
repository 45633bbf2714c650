package scene

import "github.com/kittclouds/engraf/pkg/vector"

// ResolvePronoun resolves a pronoun surface ("it", "them", "they"). "it"
// returns the single most-recently mentioned object, walking the recent
// queue back to front and skipping assemblies, which have no singular
// identity of their own — this mirrors the original interpreter's
// last-acted-object reference with fallback to the most recently
// created object, generalized to a bounded recency window so an object
// mentioned several turns ago still resolves without needing unbounded
// history. "them"/"they" return every object currently in the scene
// that isn't an assembly member, unconditionally (not windowed by
// recency): the original's plural-pronoun resolution (and its "group
// them" handling) operates over the interpreter's whole live object
// set, not a bounded history. Fails with *NoReferent when that set is
// empty.
func (s *Scene) ResolvePronoun(pronounSurface string) ([]Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch pronounSurface {
	case "it":
		for i := len(s.recent) - 1; i >= 0; i-- {
			if o, ok := s.objects[s.recent[i]]; ok {
				return []Object{*o}, nil
			}
		}
		return nil, &NoReferent{Pronoun: pronounSurface}

	case "them", "they":
		var out []Object
		for _, id := range s.order {
			o, ok := s.objects[id]
			if !ok || o.AssemblyID != "" {
				continue
			}
			out = append(out, *o)
		}
		if len(out) == 0 {
			return nil, &NoReferent{Pronoun: pronounSurface}
		}
		return out, nil

	default:
		return nil, &NoReferent{Pronoun: pronounSurface}
	}
}

// Candidates returns every object whose Name equals name, in creation
// order, for the grounder's noun-phrase query. An empty name matches
// every object (used when the NP carries no noun, e.g. a bare
// vector-literal NP; pronouns are resolved via ResolvePronoun instead).
func (s *Scene) Candidates(name string) []Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Object
	for _, id := range s.order {
		o, ok := s.objects[id]
		if !ok {
			continue
		}
		if name == "" || o.Name == name {
			out = append(out, *o)
		}
	}
	return out
}

// IsAssemblyMember reports whether id names an object currently owned
// by an assembly.
func (s *Scene) IsAssemblyMember(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objects[id]
	return ok && o.AssemblyID != ""
}

// VectorOf returns obj's vector, for callers that already hold an
// Object by value and want the zero-value-safe accessor form.
func VectorOf(o Object) vector.Vector { return o.Vector }
