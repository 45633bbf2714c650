package layers

import (
	"github.com/kittclouds/engraf/pkg/atns"
	"github.com/kittclouds/engraf/pkg/grounder"
	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/scene"
	"github.com/kittclouds/engraf/pkg/spatial"
	"github.com/kittclouds/engraf/pkg/token"
	"github.com/kittclouds/engraf/pkg/vector"
)

func tryPrepositionalPhrase(stream []vector.Vector, pos int) (phrase.Phrase, int, error) {
	pp, consumed, err := atns.TryPrepositionalPhrase(stream, pos)
	if pp == nil {
		return nil, 0, err
	}
	return pp, consumed, err
}

// Layer3 implements §4.F for PP tokenization plus the PP-attachment
// enumeration unique to this layer: after PPs are recognized and
// grounded, every PP is tried against each preceding NP as an
// attachment target (or left unattached, to be picked up later by
// Layer 4's VP ATN), every Cartesian combination of choices becomes its
// own hypothesis, and — when sc is non-nil — the spatial validator
// prunes combinations whose average attachment score falls below
// coeffs.SpatialDropThreshold.
func Layer3(inbound []token.Hypothesis, sc *scene.Scene, opts Options) ([]token.Hypothesis, error) {
	var ppTagged []token.Hypothesis
	for _, h := range inbound {
		variants, err := coordinate(h, tryPrepositionalPhrase, vector.DimPP, opts.Confidence)
		if err != nil {
			if isLocalCoordinationError(err) {
				continue // that hypothesis is dropped; siblings continue
			}
			return nil, err
		}
		ppTagged = append(ppTagged, variants...)
	}

	if opts.EnableSemanticGrounding {
		for i, h := range ppTagged {
			ppTagged[i] = groundPPs(h, sc)
		}
	}

	var out []token.Hypothesis
	for _, h := range ppTagged {
		out = append(out, enumerateAttachments(h, sc, opts.Confidence)...)
	}

	return bound(sortDescending(out), opts.MaxHypotheses), nil
}

func groundPPs(h token.Hypothesis, sc *scene.Scene) token.Hypothesis {
	tokens := make([]vector.Vector, len(h.Tokens))
	copy(tokens, h.Tokens)
	for i, t := range tokens {
		pp, ok := token.GroundedPhrase(t).(*phrase.PrepositionalPhrase)
		if !ok {
			continue
		}
		spatialVec, objID, _, err := grounder.GroundPrepositionalPhrase(pp, sc)
		if err != nil {
			continue
		}
		clone := *pp
		clone.SpatialVector = &spatialVec
		clone.ReferenceObjectID = objID
		tokens[i] = token.FromPhrase(&clone, vector.DimPP)
	}
	out := h
	out.Tokens = tokens
	return out
}

type attachmentChoice struct {
	ppIndex     int
	targetIndex int // index in h.Tokens of the target NP, or -1 for no attachment
}

// enumerateAttachments produces one hypothesis per Cartesian combination
// of each PP token's attachment choice (any preceding NP token, or
// none).
func enumerateAttachments(h token.Hypothesis, sc *scene.Scene, coeffs ConfidenceCoefficients) []token.Hypothesis {
	var ppPositions, npPositions []int
	for i, t := range h.Tokens {
		if t.Isa(vector.DimPP) {
			ppPositions = append(ppPositions, i)
		}
		if t.Isa(vector.DimNP) {
			npPositions = append(npPositions, i)
		}
	}
	if len(ppPositions) == 0 {
		return []token.Hypothesis{h}
	}

	choiceLists := make([][]attachmentChoice, len(ppPositions))
	for pi, ppPos := range ppPositions {
		choices := []attachmentChoice{{ppIndex: ppPos, targetIndex: -1}}
		for _, npPos := range npPositions {
			if npPos < ppPos {
				choices = append(choices, attachmentChoice{ppIndex: ppPos, targetIndex: npPos})
			}
		}
		choiceLists[pi] = choices
	}

	var combos [][]attachmentChoice
	var walk func(i int, acc []attachmentChoice)
	walk = func(i int, acc []attachmentChoice) {
		if i == len(choiceLists) {
			combo := make([]attachmentChoice, len(acc))
			copy(combo, acc)
			combos = append(combos, combo)
			return
		}
		for _, c := range choiceLists[i] {
			walk(i+1, append(acc, c))
		}
	}
	walk(0, nil)

	var out []token.Hypothesis
	for _, combo := range combos {
		if built, ok := applyAttachment(h, combo, sc, coeffs); ok {
			out = append(out, built)
		}
	}
	return out
}

func applyAttachment(h token.Hypothesis, combo []attachmentChoice, sc *scene.Scene, coeffs ConfidenceCoefficients) (token.Hypothesis, bool) {
	npClones := make(map[int]*phrase.NounPhrase)
	attachedPP := make(map[int]bool)
	nonNull := 0
	var scores []float64

	for _, c := range combo {
		if c.targetIndex < 0 {
			continue
		}
		nonNull++
		attachedPP[c.ppIndex] = true

		target, ok := npClones[c.targetIndex]
		if !ok {
			np, _ := token.GroundedPhrase(h.Tokens[c.targetIndex]).(*phrase.NounPhrase)
			if np == nil {
				return token.Hypothesis{}, false
			}
			clone := *np
			target = &clone
			npClones[c.targetIndex] = target
		}
		pp, _ := token.GroundedPhrase(h.Tokens[c.ppIndex]).(*phrase.PrepositionalPhrase)
		if pp == nil {
			return token.Hypothesis{}, false
		}
		target.Preps = append(target.Preps, pp)
		target.Composite = target.Composite.Add(pp.Composite)

		if sc != nil {
			if score, ok := spatialScore(pp, target, sc); ok {
				scores = append(scores, score)
			}
		}
	}

	var newTokens []vector.Vector
	for i, t := range h.Tokens {
		if attachedPP[i] {
			continue
		}
		if clone, ok := npClones[i]; ok {
			newTokens = append(newTokens, token.FromPhrase(clone, vector.DimNP))
			continue
		}
		newTokens = append(newTokens, t)
	}

	confidence := h.Confidence - coeffs.PPAttachmentPenalty*float64(nonNull)
	if len(scores) > 0 {
		avg := mean(scores)
		if avg < coeffs.SpatialDropThreshold {
			return token.Hypothesis{}, false
		}
		confidence *= avg
	}

	out := h
	out.Tokens = newTokens
	out.Confidence = confidence
	return out, true
}

func spatialScore(pp *phrase.PrepositionalPhrase, target *phrase.NounPhrase, sc *scene.Scene) (float64, bool) {
	if pp.ReferenceObjectID == "" || target.Grounding == nil {
		return 0, false
	}
	ref, ok1 := sc.Object(pp.ReferenceObjectID)
	tgt, ok2 := sc.Object(target.Grounding.ObjectID)
	if !ok1 || !ok2 {
		return 0, false
	}
	return spatial.Score(pp.Preposition, &ref, &tgt), true
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
