package vocab

import (
	"strings"

	"github.com/kittclouds/engraf/pkg/vector"
)

// InflectionConfig holds the tunable strengthening factors used when a
// comparative or superlative adjective form is derived from a base entry.
type InflectionConfig struct {
	ComparativeFactor float64
	SuperlativeFactor float64
}

// DefaultInflectionConfig matches the factors named in spec §4.B: 1.5x for
// "-er", 2x for "-est".
func DefaultInflectionConfig() InflectionConfig {
	return InflectionConfig{
		ComparativeFactor: 1.5,
		SuperlativeFactor: 2.0,
	}
}

// MatchKind is the category of morphological match that derived a vector,
// used to compute the per-position confidence factors of spec §4.E step 3.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchInflected
	MatchCompound
	MatchUnknownFallback
)

const (
	matchExact           = MatchExact
	matchInflected       = MatchInflected
	matchCompound        = MatchCompound
	matchUnknownFallback = MatchUnknownFallback
)

// Confidence returns the initial per-position confidence for a match kind,
// per spec §4.E step 3.
func (k MatchKind) Confidence() float64 {
	switch k {
	case MatchExact:
		return 1.0
	case MatchInflected:
		return 0.9
	case MatchCompound:
		return 0.85
	default:
		return 0.3
	}
}

// tryPluralBase strips a plural noun suffix and returns the candidate base
// form(s) to probe, longest-stripped first.
func tryPluralBase(surface string) []string {
	var out []string
	if strings.HasSuffix(surface, "ies") && len(surface) > 3 {
		out = append(out, surface[:len(surface)-3]+"y")
	}
	if strings.HasSuffix(surface, "es") && len(surface) > 2 {
		out = append(out, surface[:len(surface)-2])
	}
	if strings.HasSuffix(surface, "s") && !strings.HasSuffix(surface, "ss") && len(surface) > 1 {
		out = append(out, surface[:len(surface)-1])
	}
	return out
}

// tryVerbPastBase strips a "-ed" past/past-participle suffix.
func tryVerbPastBase(surface string) []string {
	var out []string
	if strings.HasSuffix(surface, "ied") && len(surface) > 3 {
		out = append(out, surface[:len(surface)-3]+"y")
	}
	if strings.HasSuffix(surface, "ed") && len(surface) > 2 {
		stem := surface[:len(surface)-2]
		out = append(out, stem, stem+"e")
		if len(stem) > 1 && stem[len(stem)-1] == stem[len(stem)-2] {
			out = append(out, stem[:len(stem)-1])
		}
	}
	return out
}

// tryVerbGerundBase strips a "-ing" present-participle suffix.
func tryVerbGerundBase(surface string) []string {
	var out []string
	if strings.HasSuffix(surface, "ing") && len(surface) > 3 {
		stem := surface[:len(surface)-3]
		out = append(out, stem, stem+"e")
		if len(stem) > 1 && stem[len(stem)-1] == stem[len(stem)-2] {
			out = append(out, stem[:len(stem)-1])
		}
	}
	return out
}

// tryComparativeBase strips a "-er" comparative adjective suffix.
func tryComparativeBase(surface string) []string {
	var out []string
	if strings.HasSuffix(surface, "ier") && len(surface) > 3 {
		out = append(out, surface[:len(surface)-3]+"y")
	}
	if strings.HasSuffix(surface, "er") && len(surface) > 2 {
		stem := surface[:len(surface)-2]
		out = append(out, stem)
		if len(stem) > 1 && stem[len(stem)-1] == stem[len(stem)-2] {
			out = append(out, stem[:len(stem)-1])
		}
	}
	return out
}

// trySuperlativeBase strips a "-est" superlative adjective suffix.
func trySuperlativeBase(surface string) []string {
	var out []string
	if strings.HasSuffix(surface, "iest") && len(surface) > 4 {
		out = append(out, surface[:len(surface)-4]+"y")
	}
	if strings.HasSuffix(surface, "est") && len(surface) > 3 {
		stem := surface[:len(surface)-3]
		out = append(out, stem)
		if len(stem) > 1 && stem[len(stem)-1] == stem[len(stem)-2] {
			out = append(out, stem[:len(stem)-1])
		}
	}
	return out
}

// applyPlural returns base with plural marked, per spec §3: "add plural,
// remove singular".
func applyPlural(base vector.Vector) vector.Vector {
	out := base.Copy()
	out.Set(vector.DimPlural, 1)
	out.Set(vector.DimSingular, 0)
	return out
}

// applyVerbInflection marks a derived verb form with the given dimension.
func applyVerbInflection(base vector.Vector, d vector.Dim) vector.Vector {
	out := base.Copy()
	out.Set(d, 1)
	return out
}

// applyComparative strengthens every non-zero semantic dimension of an
// adjective by factor and marks DimComp.
func applyComparative(base vector.Vector, factor float64) vector.Vector {
	out := base.Copy()
	for _, d := range base.NonZeroDims() {
		if d.IsSemantic() {
			out.Set(d, base.Get(d)*factor)
		}
	}
	out.Set(vector.DimComp, 1)
	return out
}

// applySuperlative strengthens every non-zero semantic dimension of an
// adjective by factor and marks DimSuper.
func applySuperlative(base vector.Vector, factor float64) vector.Vector {
	out := base.Copy()
	for _, d := range base.NonZeroDims() {
		if d.IsSemantic() {
			out.Set(d, base.Get(d)*factor)
		}
	}
	out.Set(vector.DimSuper, 1)
	return out
}
