package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSetRoundTrip(t *testing.T) {
	v := New()
	require.NoError(t, v.Set(DimRed, 1))
	require.Equal(t, 1.0, v.Get(DimRed))
	require.Equal(t, 0.0, v.Get(DimBlue))
}

func TestGetUnknownDimensionYieldsZero(t *testing.T) {
	v := New()
	require.Equal(t, 0.0, v.Get(Dim(99999)))
}

func TestSetByNameUnknownFails(t *testing.T) {
	v := New()
	err := v.SetByName("not_a_real_dimension", 1)
	require.Error(t, err)
	var ud *UnknownDimension
	require.ErrorAs(t, err, &ud)
}

func TestIsa(t *testing.T) {
	v := WithFeatures(map[Dim]float64{DimRed: 0.9})
	require.True(t, v.Isa(DimRed))
	require.False(t, v.Isa(DimGreen))
}

func TestAddCommutativeAssociative(t *testing.T) {
	a := WithFeatures(map[Dim]float64{DimLocX: 1, DimRed: 0.5})
	b := WithFeatures(map[Dim]float64{DimLocX: 2, DimGreen: 1})
	c := WithFeatures(map[Dim]float64{DimLocZ: 3})

	require.True(t, a.Add(b).EqualsMasked(b.Add(a), MaskAll))
	require.True(t, a.Add(b).Add(c).EqualsMasked(a.Add(b.Add(c)), MaskAll))
}

func TestScaleAdverb(t *testing.T) {
	adj := WithFeatures(map[Dim]float64{DimAdj: 1, DimScaleX: 1})
	scaled := adj.Scale(1.5)
	require.Equal(t, 1.5, scaled.Get(DimScaleX))
	require.Equal(t, 1.5, scaled.Get(DimAdj))
}

func TestEqualsReflexiveSymmetricTransitive(t *testing.T) {
	a := WithFeatures(map[Dim]float64{DimNoun: 1})
	b := WithFeatures(map[Dim]float64{DimNoun: 1})
	c := WithFeatures(map[Dim]float64{DimNoun: 1})

	require.True(t, a.Equals(a))
	require.True(t, a.Equals(b))
	require.True(t, b.Equals(a))
	require.True(t, b.Equals(c))
	require.True(t, a.Equals(c))
}

func TestEqualsMaskedRestrictsComparison(t *testing.T) {
	a := WithFeatures(map[Dim]float64{DimNoun: 1, DimRed: 1})
	b := WithFeatures(map[Dim]float64{DimNoun: 1, DimRed: 0})

	require.False(t, a.EqualsMasked(b, MaskAll))
	require.True(t, a.EqualsMasked(b, MaskPOS))
	require.False(t, a.EqualsMasked(b, MaskSemantic))
}

func TestNonZeroDims(t *testing.T) {
	v := WithFeatures(map[Dim]float64{DimRed: 1, DimLocX: 2})
	nz := v.NonZeroDims()
	require.Len(t, nz, 2)
}

func TestCopyIsIndependent(t *testing.T) {
	a := WithFeatures(map[Dim]float64{DimRed: 1})
	b := a.Copy()
	b.Set(DimRed, 0)
	require.Equal(t, 1.0, a.Get(DimRed))
	require.Equal(t, 0.0, b.Get(DimRed))
}
