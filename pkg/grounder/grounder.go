// Package grounder implements semantic grounding: binding NP tokens to
// scene objects (or pronoun referents) and PP tokens to spatial
// relationship vectors, then multiplying a hypothesis across every NP's
// candidate list. The recency-stack / compatibility-check shape is
// grounded on pkg/scanner/resolver/resolver.go's NarrativeContext,
// generalized from gender classes to singular/plural pronoun classes.
package grounder

import (
	"sort"

	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/scene"
	"github.com/kittclouds/engraf/pkg/token"
	"github.com/kittclouds/engraf/pkg/vector"
)

// colorWeight, scaleWeight and locationWeight are the per-dimension
// weights §4.G assigns when ranking grounding candidates by distance;
// every other dimension uses 1.0.
const (
	colorWeight    = 2.0
	scaleWeight    = 1.5
	locationWeight = 0.5
	defaultWeight  = 1.0

	colorThreshold = 0.5
	largeThreshold = 1.5
	smallThreshold = 0.75

	unboundConfidence = 0.5

	// indexPreFilterThreshold is the candidate-list size above which
	// GroundNounPhrase narrows via the scene's attached vector index
	// before running the exact weighted-distance scan, per §4.G's note
	// that a pre-filter only pays for itself once a scene holds "many"
	// objects.
	indexPreFilterThreshold = 32
	indexPreFilterK         = 16
)

// StrongColorConflict reports whether query and candidate disagree on a
// shared, strongly-asserted color dimension: query asserts a color
// channel above colorThreshold and candidate's value on that channel is
// at or below it, with no other queried color dimension shared.
func StrongColorConflict(query, candidate vector.Vector) bool {
	conflict := false
	shared := false
	for _, d := range vector.ColorDims {
		q, c := query.Get(d), candidate.Get(d)
		if q > colorThreshold {
			if c > colorThreshold {
				shared = true
			} else {
				conflict = true
			}
		}
	}
	return conflict && !shared
}

func scaleCategory(v vector.Vector, d vector.Dim) int {
	x := v.Get(d)
	switch {
	case x >= largeThreshold:
		return 1
	case x <= smallThreshold:
		return -1
	default:
		return 0
	}
}

// WeightedDistance computes the §4.G weighted vector distance between a
// query NP vector and a scene object's vector: color dims compared
// binary (matched above/below threshold), scale dims compared by
// category (large/small/normal), location dims compared by raw
// difference at reduced weight, everything else at full weight.
// Smaller is closer; the result is normalized by total weight used.
func WeightedDistance(query, candidate vector.Vector) float64 {
	var total, weightSum float64

	addWeighted := func(diff, weight float64) {
		total += diff * weight
		weightSum += weight
	}

	for _, d := range vector.ColorDims {
		qAbove := query.Get(d) > colorThreshold
		cAbove := candidate.Get(d) > colorThreshold
		if qAbove == cAbove {
			addWeighted(0, colorWeight)
		} else {
			addWeighted(1, colorWeight)
		}
	}
	for _, d := range vector.ScaleDims {
		if scaleCategory(query, d) == scaleCategory(candidate, d) {
			addWeighted(0, scaleWeight)
		} else {
			addWeighted(1, scaleWeight)
		}
	}
	for _, d := range vector.LocationDims {
		diff := query.Get(d) - candidate.Get(d)
		if diff < 0 {
			diff = -diff
		}
		addWeighted(diff, locationWeight)
	}
	for _, d := range query.NonZeroDims() {
		if isCategorized(d) {
			continue
		}
		diff := query.Get(d) - candidate.Get(d)
		if diff < 0 {
			diff = -diff
		}
		addWeighted(diff, defaultWeight)
	}

	if weightSum == 0 {
		return 0
	}
	return total / weightSum
}

func isCategorized(d vector.Dim) bool {
	for _, c := range vector.ColorDims {
		if d == c {
			return true
		}
	}
	for _, c := range vector.ScaleDims {
		if d == c {
			return true
		}
	}
	for _, c := range vector.LocationDims {
		if d == c {
			return true
		}
	}
	return false
}

// GroundNounPhrase resolves np against sc, returning ranked grounding
// candidates (best first). Pronouns resolve via the recent queue;
// ordinary NPs query by name and weighted-distance rank, excluding
// strong color conflicts.
func GroundNounPhrase(np *phrase.NounPhrase, sc *scene.Scene) ([]phrase.GroundingCandidate, error) {
	if sc == nil {
		return nil, &scene.NoReferent{Pronoun: np.Noun}
	}

	if np.IsPronoun {
		objs, err := sc.ResolvePronoun(np.Noun)
		if err != nil {
			return nil, err
		}
		out := make([]phrase.GroundingCandidate, len(objs))
		for i, o := range objs {
			out[i] = phrase.GroundingCandidate{ObjectID: o.ID, Confidence: 1.0}
		}
		return out, nil
	}

	candidates := sc.Candidates(np.Noun)
	if len(candidates) > indexPreFilterThreshold {
		if nearest := sc.NearestByVector(np.Composite, indexPreFilterK); len(nearest) > 0 {
			nameFiltered := nearest[:0:0]
			for _, o := range nearest {
				if np.Noun == "" || o.Name == np.Noun {
					nameFiltered = append(nameFiltered, o)
				}
			}
			if len(nameFiltered) > 0 {
				candidates = nameFiltered
			}
		}
	}
	type scored struct {
		id   string
		dist float64
	}
	var ranked []scored
	for _, o := range candidates {
		if StrongColorConflict(np.Composite, o.Vector) {
			continue
		}
		ranked = append(ranked, scored{id: o.ID, dist: WeightedDistance(np.Composite, o.Vector)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].dist < ranked[j].dist })

	out := make([]phrase.GroundingCandidate, len(ranked))
	for i, r := range ranked {
		out[i] = phrase.GroundingCandidate{ObjectID: r.id, Confidence: 1.0 / (1.0 + r.dist)}
	}
	return out, nil
}

// groundedNPIndices returns the indices of every NP-marked token in
// h.Tokens, in order.
func groundedNPIndices(h token.Hypothesis) []int {
	var idx []int
	for i, t := range h.Tokens {
		if t.Isa(vector.DimNP) {
			idx = append(idx, i)
		}
	}
	return idx
}

// GroundHypothesis grounds every NP token in h against sc, enumerating
// the Cartesian product of each NP's candidate list and producing one
// output hypothesis per combination, confidence-weighted per §4.G.
// Recursion prunes a branch as soon as its best-possible confidence
// (the blend computed with every remaining NP at its maximum candidate
// confidence, 1.0) cannot beat the current worst survivor once maxHypotheses
// results have been collected, avoiding materializing the full product
// for scenes with many ambiguous candidates.
func GroundHypothesis(h token.Hypothesis, sc *scene.Scene, maxHypotheses int) ([]token.Hypothesis, error) {
	npIdx := groundedNPIndices(h)
	if len(npIdx) == 0 {
		return []token.Hypothesis{h}, nil
	}

	candidateLists := make([][]phrase.GroundingCandidate, len(npIdx))
	for i, idx := range npIdx {
		np, _ := token.GroundedPhrase(h.Tokens[idx]).(*phrase.NounPhrase)
		if np == nil {
			candidateLists[i] = []phrase.GroundingCandidate{{Confidence: unboundConfidence}}
			continue
		}
		cands, err := GroundNounPhrase(np, sc)
		if err != nil || len(cands) == 0 {
			candidateLists[i] = []phrase.GroundingCandidate{{Confidence: unboundConfidence}}
			continue
		}
		switch {
		case np.IsPronoun:
			// Plural pronouns ground to all candidates at once, not one
			// combination per candidate.
			candidateLists[i] = []phrase.GroundingCandidate{{ObjectID: joinIDs(cands), Confidence: meanConfidence(cands)}}
		case np.Composite.Isa(vector.DimPlural):
			// A plural NP ("the cubes", "all the red objects") grounds to
			// every matching candidate as one bound result, not a branch
			// per candidate.
			candidateLists[i] = []phrase.GroundingCandidate{{ObjectID: joinIDs(cands), Confidence: meanConfidence(cands)}}
		case isDefinite(np.Determiner):
			// A definite singular NP ("the cube") keeps its full ranked
			// candidate list: the best match plus alternatives, each
			// multiplying out into its own hypothesis.
			candidateLists[i] = cands
		default:
			// An indefinite singular NP ("a cube") grounds to the single
			// best match; it does not branch over every same-named object
			// in the scene.
			candidateLists[i] = cands[:1]
		}
	}

	var out []token.Hypothesis
	var walk func(pos int, chosen []phrase.GroundingCandidate, sum float64)
	walk = func(pos int, chosen []phrase.GroundingCandidate, sum float64) {
		if maxHypotheses > 0 && len(out) >= maxHypotheses {
			best := h.Confidence * (0.7 + 0.3*((sum+float64(len(npIdx)-pos))/float64(len(npIdx))))
			worst := out[0].Confidence
			for _, o := range out[1:] {
				if o.Confidence < worst {
					worst = o.Confidence
				}
			}
			if best <= worst {
				return
			}
		}
		if pos == len(npIdx) {
			out = append(out, buildGroundedHypothesis(h, npIdx, chosen))
			return
		}
		for _, c := range candidateLists[pos] {
			walk(pos+1, append(chosen, c), sum+c.Confidence)
		}
	}
	walk(0, nil, 0)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if maxHypotheses > 0 && len(out) > maxHypotheses {
		out = out[:maxHypotheses]
	}
	return out, nil
}

// isDefinite reports whether det is a definite determiner ("the", "this",
// "that"), as opposed to an indefinite one ("a", "an", "every", "each",
// "no") or the empty determiner a bare plural NP can carry.
func isDefinite(det string) bool {
	switch det {
	case "the", "this", "that":
		return true
	default:
		return false
	}
}

func joinIDs(cands []phrase.GroundingCandidate) string {
	s := ""
	for i, c := range cands {
		if i > 0 {
			s += ","
		}
		s += c.ObjectID
	}
	return s
}

func meanConfidence(cands []phrase.GroundingCandidate) float64 {
	if len(cands) == 0 {
		return unboundConfidence
	}
	sum := 0.0
	for _, c := range cands {
		sum += c.Confidence
	}
	return sum / float64(len(cands))
}

func buildGroundedHypothesis(h token.Hypothesis, npIdx []int, chosen []phrase.GroundingCandidate) token.Hypothesis {
	tokens := make([]vector.Vector, len(h.Tokens))
	copy(tokens, h.Tokens)

	var results []token.GroundingResult
	sum := 0.0
	for i, idx := range npIdx {
		np, _ := token.GroundedPhrase(h.Tokens[idx]).(*phrase.NounPhrase)
		c := chosen[i]
		sum += c.Confidence
		results = append(results, token.GroundingResult{TokenIndex: idx, Confidence: c.Confidence})
		if np == nil {
			continue
		}
		clone := *np
		clone.Grounding = &phrase.GroundingCandidate{ObjectID: c.ObjectID, Confidence: c.Confidence}
		tokens[idx] = token.FromPhrase(&clone, vector.DimNP)
	}

	mean := sum / float64(len(npIdx))
	out := h
	out.Tokens = tokens
	out.Confidence = h.Confidence * (0.7 + 0.3*mean)
	out.GroundingResults = append(append([]token.GroundingResult{}, h.GroundingResults...), results...)
	return out
}

// GroundPrepositionalPhrase grounds pp's reference object (for a PP
// whose object is an NP) and returns the composite spatial relationship
// vector: preposition vector + resolved-object vector. A vector-literal
// PP grounds directly to its literal as an absolute location at
// confidence 1.0.
func GroundPrepositionalPhrase(pp *phrase.PrepositionalPhrase, sc *scene.Scene) (vector.Vector, string, float64, error) {
	if pp.VectorLiteral != nil {
		return pp.Composite, "", 1.0, nil
	}
	if pp.Object == nil {
		return pp.Composite, "", unboundConfidence, nil
	}
	cands, err := GroundNounPhrase(pp.Object, sc)
	if err != nil || len(cands) == 0 {
		return pp.Composite, "", unboundConfidence, err
	}
	best := cands[0]
	obj, ok := sc.Object(best.ObjectID)
	spatialVec := pp.Composite
	if ok {
		spatialVec = spatialVec.Add(obj.Vector)
	}
	return spatialVec, best.ObjectID, best.Confidence, nil
}
