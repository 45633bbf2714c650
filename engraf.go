// Package engraf is the top-level entry point for the Layered
// Augmented Transition Network parser: execute_layer_k and its
// supporting types (§6). A Layer_k_Result bundles what the caller
// needs to act on a parse without reaching into pkg/layers or
// pkg/token directly.
package engraf

import (
	"fmt"

	"github.com/kittclouds/engraf/pkg/grounder"
	"github.com/kittclouds/engraf/pkg/layers"
	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/scene"
	"github.com/kittclouds/engraf/pkg/token"
	"github.com/kittclouds/engraf/pkg/vector"
	"github.com/kittclouds/engraf/pkg/vocab"
)

// Layer is which of the five LATN layers to run. Running layer k
// transparently runs every layer below it first.
type Layer int

const (
	LayerWord Layer = iota + 1
	LayerNounPhrase
	LayerPrepositionalPhrase
	LayerVerbPhrase
	LayerSentence
)

// layerMarker maps a Layer to the phrase-level marker dimension its
// primary phrase type carries, used to flatten Layer_k_Result.Phrases
// for k >= 2.
var layerMarker = map[Layer]vector.Dim{
	LayerNounPhrase:          vector.DimNP,
	LayerPrepositionalPhrase: vector.DimPP,
	LayerVerbPhrase:          vector.DimVP,
	LayerSentence:            vector.DimSP,
}

// Layer_k_Result bundles one execute_layer_k call's outcome: whether
// parsing succeeded, the overall confidence (the best surviving
// hypothesis's), a descriptive message, the ranked hypothesis list,
// and — for k >= 2 — the flattened phrases of the layer's primary
// type plus their grounding results.
type Layer_k_Result struct {
	Success    bool
	Confidence float64
	Message    string
	Hypotheses []token.Hypothesis
	Phrases    []phrase.Phrase
	Groundings []token.GroundingResult
}

// ExecuteLayerK runs layers 1..k against input, grounding against
// scene when non-nil, per opts. scene may be nil (ungrounded parse);
// in that case pronoun resolution and spatial scoring degrade per
// §7's NoReferent/SpatialIncoherent handling rather than failing the
// whole parse.
func ExecuteLayerK(k Layer, input string, v *vocab.Vocabulary, sc *scene.Scene, opts layers.Options) (Layer_k_Result, error) {
	if k < LayerWord || k > LayerSentence {
		return Layer_k_Result{}, fmt.Errorf("engraf: unknown layer %d", k)
	}

	hyps, err := layers.Layer1(input, v)
	if err != nil {
		return failureResult(0, err), err
	}
	last := LayerWord

	run := func(layer Layer, fn func([]token.Hypothesis, *scene.Scene, layers.Options) ([]token.Hypothesis, error)) error {
		next, err := fn(hyps, sc, opts)
		if err != nil {
			return err
		}
		hyps = next
		last = layer
		return nil
	}

	if k >= LayerNounPhrase {
		if err := run(LayerNounPhrase, layers.Layer2); err != nil {
			return failureResult(last, err), err
		}
	}
	if k >= LayerPrepositionalPhrase {
		if err := run(LayerPrepositionalPhrase, layers.Layer3); err != nil {
			return failureResult(last, err), err
		}
	}
	if k >= LayerVerbPhrase {
		if err := run(LayerVerbPhrase, layers.Layer4); err != nil {
			return failureResult(last, err), err
		}
	}
	if k >= LayerSentence {
		if err := run(LayerSentence, layers.Layer5); err != nil {
			return failureResult(last, err), err
		}
	}

	hyps = bound(hyps, opts)
	if len(hyps) == 0 {
		err := &layers.ParseFailure{LastSuccessfulLayer: int(last), Position: len(input), Message: "no hypothesis survived"}
		return failureResult(last, err), err
	}

	result := Layer_k_Result{
		Success:    true,
		Confidence: hyps[0].Confidence,
		Message:    fmt.Sprintf("layer %d parse succeeded with %d hypotheses", k, len(hyps)),
		Hypotheses: hyps,
	}
	if marker, ok := layerMarker[k]; ok {
		result.Phrases, result.Groundings = flatten(hyps, marker)
	}
	return result, nil
}

func failureResult(last Layer, err error) Layer_k_Result {
	return Layer_k_Result{
		Success:    false,
		Confidence: 0,
		Message:    err.Error(),
	}
}

// bound trims hyps to opts.MaxHypotheses, preserving order (hypothesis
// lists are already confidence-sorted by each layer), unless
// ReturnAllMatches is set. ReturnAllMatches skips only this final trim:
// Layers 2-5 bound their own output to MaxHypotheses regardless.
func bound(hyps []token.Hypothesis, opts layers.Options) []token.Hypothesis {
	if opts.ReturnAllMatches || opts.MaxHypotheses <= 0 || len(hyps) <= opts.MaxHypotheses {
		return hyps
	}
	return hyps[:opts.MaxHypotheses]
}

// flatten collects every token carrying marker across hyps' phrases
// and the hypothesis-level grounding results that accompany them.
func flatten(hyps []token.Hypothesis, marker vector.Dim) ([]phrase.Phrase, []token.GroundingResult) {
	var phrases []phrase.Phrase
	var groundings []token.GroundingResult
	for _, h := range hyps {
		for _, t := range h.GetTokensOfType(marker) {
			if p := token.GroundedPhrase(t); p != nil {
				phrases = append(phrases, p)
			}
		}
		groundings = append(groundings, h.GroundingResults...)
	}
	return phrases, groundings
}

// SerializeHypothesis renders h's structural bracket rendering as one
// space-separated string: each top-level phrase token becomes an
// opener/closer pair (a grounded NP's closer carrying its object id) and
// each plain token its word, e.g. "move [NP ]NP<sphere_1> [PP ]PP".
// Constituents nested inside a phrase token are not expanded.
func SerializeHypothesis(h token.Hypothesis) string {
	var out string
	for i, m := range h.StructuralRendering() {
		if i > 0 {
			out += " "
		}
		out += m.Label
		if m.ObjectID != "" {
			out += "<" + m.ObjectID + ">"
		}
	}
	return out
}

// GroundNounPhrase exposes pkg/grounder's NP grounding to callers that
// want to ground a single NP outside the layer pipeline (e.g. for
// testing or a REPL).
func GroundNounPhrase(np *phrase.NounPhrase, sc *scene.Scene) ([]phrase.GroundingCandidate, error) {
	return grounder.GroundNounPhrase(np, sc)
}
