package layers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kittclouds/engraf/pkg/scene"
	"github.com/kittclouds/engraf/pkg/vector"
	"github.com/kittclouds/engraf/pkg/vocab"
)

func TestLayer2BuildsSingleNPToken(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	l1, err := Layer1("draw a red cube", v)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.EnableSemanticGrounding = false
	l2, err := Layer2(l1, nil, opts)
	require.NoError(t, err)
	require.NotEmpty(t, l2)

	top := l2[0]
	require.True(t, top.HasTokenType(vector.DimNP))
	npTokens := top.GetTokensOfType(vector.DimNP)
	require.Len(t, npTokens, 1)
	require.Equal(t, "NP(a red cube)", npTokens[0].Word)
}

func TestLayer2DropsNumberAgreementMismatch(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	l1, err := Layer1("these cube", v)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.EnableSemanticGrounding = false
	l2, err := Layer2(l1, nil, opts)
	require.NoError(t, err)
	require.Empty(t, l2)
}

func TestLayer2GroundsAgainstScene(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	sc := scene.New()
	sc.AddObject(scene.Object{ID: "cube_1", Name: "cube"})

	l1, err := Layer1("the cube", v)
	require.NoError(t, err)

	opts := DefaultOptions()
	l2, err := Layer2(l1, sc, opts)
	require.NoError(t, err)
	require.NotEmpty(t, l2)
	require.NotEmpty(t, l2[0].GroundingResults)
}

func TestLayer2DropsMixedConjunctionHypothesisNotWholeCall(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	l1, err := Layer1("the cube and the sphere or the cone", v)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.EnableSemanticGrounding = false
	l2, err := Layer2(l1, nil, opts)
	require.NoError(t, err)
	require.Empty(t, l2)
}

func TestLayer2BuildsConjunctionAcrossTwoNPs(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	l1, err := Layer1("the cube and the sphere", v)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.EnableSemanticGrounding = false
	l2, err := Layer2(l1, nil, opts)
	require.NoError(t, err)
	require.NotEmpty(t, l2)

	top := l2[0]
	require.Len(t, top.Tokens, 1)
	require.True(t, top.Tokens[0].Isa(vector.DimConj))
}
