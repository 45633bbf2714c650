package phrase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kittclouds/engraf/pkg/vector"
)

func cubeVector() vector.Vector {
	return vector.WithFeatures(map[vector.Dim]float64{vector.DimNoun: 1, vector.DimSingular: 1})
}

func TestNounPhrasePrintStringAndOriginalText(t *testing.T) {
	np := &NounPhrase{
		Determiner: "the",
		Noun:       "cube",
		Tokens:     []vector.Vector{{Word: "the"}, {Word: "cube"}},
		Composite:  cubeVector(),
	}
	require.Equal(t, "NP(the cube)", np.PrintString())
	require.Equal(t, "the cube", np.OriginalText())
}

func TestNounPhraseEqualsStructural(t *testing.T) {
	a := &NounPhrase{Determiner: "the", Noun: "cube", Composite: cubeVector()}
	b := &NounPhrase{Determiner: "the", Noun: "cube", Composite: cubeVector()}
	c := &NounPhrase{Determiner: "a", Noun: "cube", Composite: cubeVector()}
	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
}

func TestPrepositionalPhraseWithVectorLiteral(t *testing.T) {
	lit := vector.New()
	lit.Word = "[1,2,3]"
	pp := &PrepositionalPhrase{Preposition: "at", VectorLiteral: &lit}
	require.Equal(t, "PP(at [1,2,3])", pp.PrintString())
	require.Equal(t, "at [1,2,3]", pp.OriginalText())
}

func TestVerbPhraseWithObjectAndPreps(t *testing.T) {
	obj := &NounPhrase{Determiner: "the", Noun: "sphere", Composite: cubeVector()}
	pp := &PrepositionalPhrase{Preposition: "above", Object: &NounPhrase{Noun: "cube"}}
	vp := &VerbPhrase{Verb: "move", Object: obj, Preps: []*PrepositionalPhrase{pp}}
	require.Equal(t, "VP(move NP(the sphere) PP(above NP(cube)))", vp.PrintString())
}

func TestConjunctionPhraseMixingRejected(t *testing.T) {
	cube := &NounPhrase{Noun: "cube"}
	sphere := &NounPhrase{Noun: "sphere"}
	cone := &NounPhrase{Noun: "cone"}

	cp, err := NewConjunction(nil, "and", cube)
	require.NoError(t, err)
	cp, err = NewConjunction(cp, "and", sphere)
	require.NoError(t, err)

	_, err = NewConjunction(cp, "or", cone)
	require.Error(t, err)
	var mc *MixedConjunction
	require.ErrorAs(t, err, &mc)
}

func TestConjunctionPhraseEquals(t *testing.T) {
	cube := &NounPhrase{Noun: "cube"}
	sphere := &NounPhrase{Noun: "sphere"}
	a, _ := NewConjunction(nil, "and", cube)
	a, _ = NewConjunction(a, "and", sphere)

	cube2 := &NounPhrase{Noun: "cube"}
	sphere2 := &NounPhrase{Noun: "sphere"}
	b, _ := NewConjunction(nil, "and", cube2)
	b, _ = NewConjunction(b, "and", sphere2)

	require.True(t, a.Equals(b))
}

func TestSentencePhrasePrintString(t *testing.T) {
	subj := &NounPhrase{Determiner: "the", Noun: "cube"}
	vp := &VerbPhrase{Verb: "exists"}
	sp := &SentencePhrase{Subject: subj, Predicate: vp}
	require.Equal(t, "SP(NP(the cube) VP(exists))", sp.PrintString())
}

func TestPhraseSatisfiesVectorPhraseRef(t *testing.T) {
	var _ vector.PhraseRef = &NounPhrase{}
	var _ vector.PhraseRef = &SentencePhrase{}
}
