package layers

import (
	"errors"

	"github.com/kittclouds/engraf/pkg/atns"
	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/token"
	"github.com/kittclouds/engraf/pkg/vector"
)

// TryFunc attempts to parse one phrase starting at stream[pos]. It
// returns (nil, 0, nil) when no phrase starts there, and a non-nil
// error only for a fatal-to-this-hypothesis grammar violation (e.g.
// *atns.NumberAgreement).
type TryFunc func(stream []vector.Vector, pos int) (phrase.Phrase, int, error)

// isLocalCoordinationError reports whether err is one of the two
// per-hypothesis coordination failures §7 treats identically: a
// determiner/noun *atns.NumberAgreement mismatch, or a *phrase.
// MixedConjunction chain ("the cube and the sphere or the cone"). Either
// means only the hypothesis that produced it is abandoned; every layer
// that calls coordinate() must drop that one hypothesis and keep
// processing its siblings, not fail the whole layer call.
func isLocalCoordinationError(err error) bool {
	var na *atns.NumberAgreement
	if errors.As(err, &na) {
		return true
	}
	var mc *phrase.MixedConjunction
	return errors.As(err, &mc)
}

func isConjunctionToken(t vector.Vector) bool {
	return t.Isa(vector.DimConj) || t.Isa(vector.DimDisj)
}

// scanAndReplace implements the §4.F common template for one coordination
// mode: scan h.Tokens left to right, replacing every recognized phrase
// span (extended into a ConjunctionPhrase chain when buildConjunctions
// is true) with a single composite token tagged marker. It reports
// whether a coordination chain was built and whether a coordination
// opportunity was seen but not taken
// (buildConjunctions off), for the caller to compute the confidence
// bonus.
func scanAndReplace(h token.Hypothesis, try TryFunc, marker vector.Dim, buildConjunctions bool) (out token.Hypothesis, builtCoordination bool, sawCoordination bool, err error) {
	tokens := h.Tokens
	var newTokens []vector.Vector
	i := 0

	for i < len(tokens) {
		p, consumed, tryErr := try(tokens, i)
		if tryErr != nil {
			return token.Hypothesis{}, false, false, tryErr
		}
		if p == nil {
			newTokens = append(newTokens, tokens[i])
			i++
			continue
		}

		end := i + consumed
		for {
			conjWord, skip := lookaheadConjunction(tokens, end)
			if conjWord == "" {
				break
			}
			if !buildConjunctions {
				sawCoordination = true
				break
			}
			p2, consumed2, tryErr2 := try(tokens, end+skip)
			if tryErr2 != nil {
				return token.Hypothesis{}, false, false, tryErr2
			}
			if p2 == nil {
				break
			}

			cp, isChain := p.(*phrase.ConjunctionPhrase)
			var cerr error
			if !isChain {
				cp, cerr = phrase.NewConjunction(nil, conjWord, p)
				if cerr != nil {
					return token.Hypothesis{}, false, false, cerr
				}
			}
			cp, cerr = phrase.NewConjunction(cp, conjWord, p2)
			if cerr != nil {
				return token.Hypothesis{}, false, false, cerr
			}
			cp.Composite = conjunctionComposite(cp)
			p = cp
			builtCoordination = true
			end = end + skip + consumed2
		}

		newTokens = append(newTokens, token.FromPhrase(p, marker))
		i = end
	}

	out = h
	out.Tokens = newTokens
	return out, builtCoordination, sawCoordination, nil
}

func conjunctionComposite(cp *phrase.ConjunctionPhrase) vector.Vector {
	composite := vector.New()
	for _, sub := range cp.SubPhrases {
		composite = composite.Add(sub.Vector())
	}
	composite.Set(vector.DimConj, 1)
	composite.Set(vector.DimPlural, 1)
	if cp.Conjunction == "or" {
		composite.Set(vector.DimOr, 1)
	} else {
		composite.Set(vector.DimAnd, 1)
	}
	return composite
}

// lookaheadConjunction reports the conjunction word starting at pos (a
// bare and/or token, or a comma followed by one) and how many tokens to
// skip past it before the next phrase attempt.
func lookaheadConjunction(tokens []vector.Vector, pos int) (word string, skip int) {
	if pos >= len(tokens) {
		return "", 0
	}
	if isConjunctionToken(tokens[pos]) {
		return conjWord(tokens[pos]), 1
	}
	if tokens[pos].Word == "," && pos+1 < len(tokens) && isConjunctionToken(tokens[pos+1]) {
		return conjWord(tokens[pos+1]), 2
	}
	return "", 0
}

func conjWord(t vector.Vector) string {
	if t.Isa(vector.DimDisj) {
		return "or"
	}
	return "and"
}

// coordinate produces the two §4.F-step-4 output hypotheses for one
// inbound hypothesis: greedy local coordination (buildConjunctions
// suppressed) and phrase-level coordination (buildConjunctions
// attempted), deduplicated by equal phrase-sequence signature. Each
// carries confidence = h.Confidence × coeffs.LayerAdvance ×
// coordination bonus.
func coordinate(h token.Hypothesis, try TryFunc, marker vector.Dim, coeffs ConfidenceCoefficients) ([]token.Hypothesis, error) {
	local, builtLocal, sawLocal, err := scanAndReplace(h, try, marker, false)
	if err != nil {
		return nil, err
	}
	phraseLevel, builtPhraseLevel, _, err := scanAndReplace(h, try, marker, true)
	if err != nil {
		return nil, err
	}

	local.Confidence *= coeffs.LayerAdvance * bonus(false, builtLocal, sawLocal, coeffs)
	phraseLevel.Confidence *= coeffs.LayerAdvance * bonus(true, builtPhraseLevel, false, coeffs)

	if signature(local.Tokens) == signature(phraseLevel.Tokens) {
		return []token.Hypothesis{phraseLevel}, nil
	}
	return []token.Hypothesis{phraseLevel, local}, nil
}

func bonus(buildConjunctions, built, saw bool, coeffs ConfidenceCoefficients) float64 {
	switch {
	case buildConjunctions && built:
		return coeffs.PhraseLevelCoordinationBonus
	case !buildConjunctions && saw:
		return coeffs.LocalCoordinationPenalty
	default:
		return 1.0
	}
}

func signature(tokens []vector.Vector) string {
	s := ""
	for _, t := range tokens {
		s += t.Word + "|"
	}
	return s
}
