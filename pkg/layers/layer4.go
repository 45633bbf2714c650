package layers

import (
	"github.com/kittclouds/engraf/pkg/atns"
	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/scene"
	"github.com/kittclouds/engraf/pkg/token"
	"github.com/kittclouds/engraf/pkg/vector"
)

func tryVerbPhrase(stream []vector.Vector, pos int) (phrase.Phrase, int, error) {
	vp, consumed, err := atns.TryVerbPhrase(stream, pos)
	if vp == nil {
		return nil, 0, err
	}
	return vp, consumed, err
}

// Layer4 implements §4.F for VP tokenization: the same scan/coordinate
// template as Layer 2, operating over Layer-3 tokens (NP/PP spans
// already replaced by composite tokens).
func Layer4(inbound []token.Hypothesis, sc *scene.Scene, opts Options) ([]token.Hypothesis, error) {
	var out []token.Hypothesis
	for _, h := range inbound {
		variants, err := coordinate(h, tryVerbPhrase, vector.DimVP, opts.Confidence)
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
