package layers

import (
	"github.com/kittclouds/engraf/pkg/atns"
	"github.com/kittclouds/engraf/pkg/grounder"
	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/scene"
	"github.com/kittclouds/engraf/pkg/token"
	"github.com/kittclouds/engraf/pkg/vector"
)

func tryNounPhrase(stream []vector.Vector, pos int) (phrase.Phrase, int, error) {
	np, consumed, err := atns.TryNounPhrase(stream, pos)
	if np == nil {
		return nil, 0, err
	}
	return np, consumed, err
}

// Layer2 implements §4.F for NP tokenization: for each inbound
// hypothesis, scan for NounPhrases, build both coordination variants,
// bound the result, and (if requested) ground each NP against sc.
func Layer2(inbound []token.Hypothesis, sc *scene.Scene, opts Options) ([]token.Hypothesis, error) {
	var out []token.Hypothesis
	for _, h := range inbound {
		variants, err := coordinate(h, tryNounPhrase, vector.DimNP, opts.Confidence)
		if err != nil {
			if isLocalCoordinationError(err) {
				continue // that hypothesis is dropped; siblings continue
			}
			return nil, err
		}
		out = append(out, variants...)
	}

	if opts.EnableSemanticGrounding {
		var grounded []token.Hypothesis
		for _, h := range out {
			gs, err := grounder.GroundHypothesis(h, sc, opts.MaxHypotheses)
			if err != nil {
				continue
			}
			grounded = append(grounded, gs...)
		}
		out = grounded
	}

	return bound(sortDescending(out), opts.MaxHypotheses), nil
}
