package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kittclouds/engraf/pkg/phrase"
	"github.com/kittclouds/engraf/pkg/vector"
)

func TestFromPhraseTagsMarkerAndWord(t *testing.T) {
	np := &phrase.NounPhrase{
		Determiner: "the", Noun: "cube",
		Composite: vector.WithFeatures(map[vector.Dim]float64{vector.DimNoun: 1}),
	}
	tok := FromPhrase(np, vector.DimNP)
	require.True(t, tok.Isa(vector.DimNP))
	require.Equal(t, "NP(the cube)", tok.Word)
	require.Same(t, np, tok.Phrase)
}

func TestFromPhraseConjunctionSetsConjDim(t *testing.T) {
	cube := &phrase.NounPhrase{Noun: "cube"}
	sphere := &phrase.NounPhrase{Noun: "sphere"}
	cp, err := phrase.NewConjunction(nil, "and", cube)
	require.NoError(t, err)
	cp, err = phrase.NewConjunction(cp, "and", sphere)
	require.NoError(t, err)

	tok := FromPhrase(cp, vector.DimNP)
	require.True(t, tok.Isa(vector.DimConj))
}

func buildHypothesis() Hypothesis {
	np := &phrase.NounPhrase{Noun: "cube", Composite: vector.New()}
	npTok := FromPhrase(np, vector.DimNP)
	verbTok := vector.New()
	verbTok.Word = "draw"
	verbTok.Set(vector.DimVerb, 1)
	return New([]vector.Vector{verbTok, npTok}, 0.9, "draw a cube")
}

func TestHasTokenTypeAndGetTokensOfType(t *testing.T) {
	h := buildHypothesis()
	require.True(t, h.HasTokenType(vector.DimNP))
	require.False(t, h.HasTokenType(vector.DimPP))
	require.Len(t, h.GetTokensOfType(vector.DimNP), 1)
}

func TestTokenWords(t *testing.T) {
	h := buildHypothesis()
	require.Equal(t, []string{"draw", "NP(cube)"}, h.TokenWords())
}

func TestStructuralRenderingBracketsNPToken(t *testing.T) {
	h := buildHypothesis()
	rendering := h.StructuralRendering()
	require.Equal(t, "draw", rendering[0].Label)
	require.Equal(t, "[NP", rendering[1].Label)
	require.Equal(t, "]NP", rendering[2].Label)
}

func TestStructuralRenderingCarriesGroundedObjectID(t *testing.T) {
	np := &phrase.NounPhrase{
		Noun:      "cube",
		Composite: vector.New(),
		Grounding: &phrase.GroundingCandidate{ObjectID: "obj-1", Confidence: 0.95},
	}
	tok := FromPhrase(np, vector.DimNP)
	h := New([]vector.Vector{tok}, 1.0, "")
	rendering := h.StructuralRendering()
	require.Equal(t, "obj-1", rendering[1].ObjectID)
}
