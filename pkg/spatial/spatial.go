// Package spatial implements the geometric validator Layer 3's PP
// attachment enumeration uses to prune spatially incoherent
// combinations: a per-preposition closure, keyed by surface form, that
// scores how well a reference/target object pair satisfies the
// preposition's relation. The table-of-named-closures shape follows
// pkg/resorank/scorer.go's table-of-named-weights dispatch.
package spatial

import (
	"math"

	"github.com/kittclouds/engraf/pkg/scene"
	"github.com/kittclouds/engraf/pkg/vector"
)

// NeutralScore is returned when positions are unavailable or either
// object can't be identified.
const NeutralScore = 0.5

const tolerance = 0.5

// Score returns the spatial validator's score in [0,1] for preposition
// relating reference to target.
func Score(preposition string, reference, target *scene.Object) float64 {
	if reference == nil || target == nil {
		return NeutralScore
	}
	fn, ok := scorers[preposition]
	if !ok {
		return NeutralScore
	}
	return fn(reference.Vector, target.Vector)
}

type scorer func(reference, target vector.Vector) float64

var scorers = map[string]scorer{
	"on":        onScore,
	"under":     belowScore,
	"below":     belowScore,
	"above":     aboveScore,
	"beside":    besideScore,
	"next to":   besideScore,
	"left of":     lateralScore(-1),
	"right of":    lateralScore(1),
	"behind":      depthScore(1),
	"in front of": depthScore(-1),
	"to":        func(reference, target vector.Vector) float64 { return 0.9 },
}

func refTopY(ref vector.Vector) float64 {
	return ref.Get(vector.DimLocY) + ref.Get(vector.DimScaleY)/2
}

func onScore(reference, target vector.Vector) float64 {
	topY := refTopY(reference)
	dy := math.Abs(target.Get(vector.DimLocY) - topY)
	dx := math.Abs(target.Get(vector.DimLocX) - reference.Get(vector.DimLocX))
	switch {
	case target.Get(vector.DimLocY) >= topY-tolerance && dy <= tolerance && dx <= tolerance:
		return 1.0
	case dx <= tolerance && dy <= tolerance:
		return 0.1 // co-located, not stacked
	default:
		return 0.2
	}
}

func belowScore(reference, target vector.Vector) float64 {
	bottomY := reference.Get(vector.DimLocY) - reference.Get(vector.DimScaleY)/2
	dy := math.Abs(bottomY - target.Get(vector.DimLocY))
	dx := math.Abs(target.Get(vector.DimLocX) - reference.Get(vector.DimLocX))
	switch {
	case target.Get(vector.DimLocY) <= bottomY+tolerance && dy <= tolerance && dx <= tolerance:
		return 1.0
	case dx <= tolerance && dy <= tolerance:
		return 0.1
	default:
		return 0.2
	}
}

func aboveScore(reference, target vector.Vector) float64 {
	topY := refTopY(reference)
	if target.Get(vector.DimLocY) > topY {
		return 1.0
	}
	return 0.2
}

func besideScore(reference, target vector.Vector) float64 {
	dx := math.Abs(target.Get(vector.DimLocX) - reference.Get(vector.DimLocX))
	dy := math.Abs(target.Get(vector.DimLocY) - reference.Get(vector.DimLocY))
	if dx > tolerance && dy <= tolerance {
		return 1.0
	}
	return 0.2
}

// lateralScore returns a scorer for "left of"/"right of": target must lie
// on the named side of reference along x, not merely differ from it. sign
// is +1 for "right of" (target.x > reference.x) and -1 for "left of"
// (target.x < reference.x); a target on the wrong side scores low even
// though it still differs in x from the reference.
func lateralScore(sign float64) scorer {
	return func(reference, target vector.Vector) float64 {
		dy := math.Abs(target.Get(vector.DimLocY) - reference.Get(vector.DimLocY))
		if dy > tolerance {
			return 0.2
		}
		dx := target.Get(vector.DimLocX) - reference.Get(vector.DimLocX)
		if dx*sign > 0 {
			return 1.0
		}
		return 0.2
	}
}

// depthScore returns a scorer for "behind"/"in front of": sign is +1 for
// "behind" (target.z > reference.z) and -1 for "in front of" (target.z <
// reference.z).
func depthScore(sign float64) scorer {
	return func(reference, target vector.Vector) float64 {
		dz := target.Get(vector.DimLocZ) - reference.Get(vector.DimLocZ)
		if dz*sign > 0 {
			return 1.0
		}
		return 0.2
	}
}
