package atns

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kittclouds/engraf/pkg/token"
	"github.com/kittclouds/engraf/pkg/vector"
	"github.com/kittclouds/engraf/pkg/vocab"
)

func lookupAll(t *testing.T, v *vocab.Vocabulary, words ...string) []vector.Vector {
	t.Helper()
	out := make([]vector.Vector, len(words))
	for i, w := range words {
		vec, err := v.Lookup(w)
		require.NoError(t, err, "word %q", w)
		out[i] = vec
	}
	return out
}

func TestTryNounPhraseDetAdjNoun(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	toks := lookupAll(t, v, "the", "red", "cube")

	np, consumed, err := TryNounPhrase(toks, 0)
	require.NoError(t, err)
	require.Equal(t, 3, consumed)
	require.Equal(t, "the", np.Determiner)
	require.Equal(t, "cube", np.Noun)
	require.True(t, np.Composite.Isa(vector.DimRed))
}

func TestTryNounPhraseNumberAgreementFails(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	toks := lookupAll(t, v, "these", "cube")

	_, _, err := TryNounPhrase(toks, 0)
	require.Error(t, err)
	var na *NumberAgreement
	require.ErrorAs(t, err, &na)
}

func TestTryNounPhraseNoMatchReturnsNil(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	toks := lookupAll(t, v, "draw")

	np, consumed, err := TryNounPhrase(toks, 0)
	require.Nil(t, np)
	require.Zero(t, consumed)
	require.NoError(t, err)
}

func TestTryPrepositionalPhraseWithNPObject(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	detAdjNoun := lookupAll(t, v, "the", "cube")
	np, consumed, err := TryNounPhrase(detAdjNoun, 0)
	require.NoError(t, err)
	require.Equal(t, 2, consumed)
	npTok := token.FromPhrase(np, vector.DimNP)

	above, err := v.Lookup("above")
	require.NoError(t, err)

	stream := []vector.Vector{above, npTok}
	pp, ppConsumed, err := TryPrepositionalPhrase(stream, 0)
	require.NoError(t, err)
	require.Equal(t, 2, ppConsumed)
	require.Equal(t, "above", pp.Preposition)
	require.NotNil(t, pp.Object)
}

func TestTryVerbPhraseWithObjectAndPP(t *testing.T) {
	v := vocab.NewDefaultVocabulary()

	sphereNP, _, err := TryNounPhrase(lookupAll(t, v, "the", "sphere"), 0)
	require.NoError(t, err)
	sphereTok := token.FromPhrase(sphereNP, vector.DimNP)

	cubeNP, _, err := TryNounPhrase(lookupAll(t, v, "the", "cube"), 0)
	require.NoError(t, err)
	cubeTok := token.FromPhrase(cubeNP, vector.DimNP)

	above, err := v.Lookup("above")
	require.NoError(t, err)
	pp, _, err := TryPrepositionalPhrase([]vector.Vector{above, cubeTok}, 0)
	require.NoError(t, err)
	ppTok := token.FromPhrase(pp, vector.DimPP)

	move, err := v.Lookup("move")
	require.NoError(t, err)

	stream := []vector.Vector{move, sphereTok, ppTok}
	vp, consumed, err := TryVerbPhrase(stream, 0)
	require.NoError(t, err)
	require.Equal(t, 3, consumed)
	require.Equal(t, "move", vp.Verb)
	require.NotNil(t, vp.Object)
	require.Len(t, vp.Preps, 1)
}

func TestTrySentenceWithSubjectAndToBeComplement(t *testing.T) {
	v := vocab.NewDefaultVocabulary()
	cubeNP, _, err := TryNounPhrase(lookupAll(t, v, "the", "cube"), 0)
	require.NoError(t, err)
	npTok := token.FromPhrase(cubeNP, vector.DimNP)

	is, err := v.Lookup("is")
	require.NoError(t, err)
	red, err := v.Lookup("red")
	require.NoError(t, err)

	stream := []vector.Vector{npTok, is, red}
	sp, consumed, err := TrySentence(stream, 0)
	require.NoError(t, err)
	require.Equal(t, 3, consumed)
	require.NotNil(t, sp.Subject)
	require.True(t, sp.HasToBe)
	require.NotNil(t, sp.Complement)
}
