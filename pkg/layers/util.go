package layers

import (
	"sort"

	"github.com/kittclouds/engraf/pkg/token"
)

// sortDescending sorts hypotheses by confidence, descending, stable
// among ties — §5's ordering invariant.
func sortDescending(hs []token.Hypothesis) []token.Hypothesis {
	sort.SliceStable(hs, func(i, j int) bool { return hs[i].Confidence > hs[j].Confidence })
	return hs
}

// bound trims hs to at most max entries (0 or negative means
// unbounded), §5's "keep top K" policy.
func bound(hs []token.Hypothesis, max int) []token.Hypothesis {
	if max > 0 && len(hs) > max {
		return hs[:max]
	}
	return hs
}
