package layers

import (
	"github.com/kittclouds/engraf/pkg/atns"
	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/scene"
	"github.com/kittclouds/engraf/pkg/token"
	"github.com/kittclouds/engraf/pkg/vector"
)

func trySentence(stream []vector.Vector, pos int) (phrase.Phrase, int, error) {
	sp, consumed, err := atns.TrySentence(stream, pos)
	if sp == nil {
		return nil, 0, err
	}
	return sp, consumed, err
}

// Layer5 implements §4.F for Sentence tokenization: the same
// scan/coordinate template, operating over Layer-4 tokens (VP spans
// already replaced by composite tokens), delegating to Layer 4's VP
// coordination and applying the same logic one level up for sentence
// coordination ("the cube is tall and the sphere is round").
func Layer5(inbound []token.Hypothesis, sc *scene.Scene, opts Options) ([]token.Hypothesis, error) {
	var out []token.Hypothesis
	for _, h := range inbound {
		variants, err := coordinate(h, trySentence, vector.DimSP, opts.Confidence)
		if err != nil {
			if isLocalCoordinationError(err) {
				continue // that hypothesis is dropped; siblings continue
			}
			return nil, err
		}
		out = append(out, variants...)
	}
	return bound(sortDescending(out), opts.MaxHypotheses), nil
}
