package layers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kittclouds/engraf/pkg/vector"
	"github.com/kittclouds/engraf/pkg/vocab"
)

func TestLayer1EmptyInputFails(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	_, err := Layer1("   ", v)
	require.Error(t, err)
	var pf *ParseFailure
	require.ErrorAs(t, err, &pf)
}

func TestLayer1TokenizesKnownWords(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	hs, err := Layer1("draw a red cube", v)
	require.NoError(t, err)
	require.Len(t, hs, 1)
	require.Equal(t, []string{"draw", "a", "red", "cube"}, hs[0].TokenWords())
}

func TestLayer1UnknownWordFailsWithUnknownToken(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	_, err := Layer1("draw a xyzzy", v)
	require.Error(t, err)
	var ut *UnknownToken
	require.ErrorAs(t, err, &ut)
	require.Equal(t, "xyzzy", ut.Surface)
}

func TestLayer1RecognizesCompoundPreposition(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	hs, err := Layer1("the cube in front of the sphere", v)
	require.NoError(t, err)
	words := hs[0].TokenWords()
	require.Contains(t, words, "in front of")
}

func TestLayer1RecognizesVectorLiteral(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	hs, err := Layer1("at [1,2,3]", v)
	require.NoError(t, err)
	require.True(t, hs[0].HasTokenType(vector.DimVectorLiteral))
}
