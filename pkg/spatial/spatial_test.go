package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kittclouds/engraf/pkg/scene"
	"github.com/kittclouds/engraf/pkg/vector"
)

func objAt(id string, x, y, z float64) *scene.Object {
	return &scene.Object{
		ID: id,
		Vector: vector.WithFeatures(map[vector.Dim]float64{
			vector.DimLocX: x, vector.DimLocY: y, vector.DimLocZ: z,
			vector.DimScaleX: 1, vector.DimScaleY: 1, vector.DimScaleZ: 1,
		}),
	}
}

func TestScoreOnStacked(t *testing.T) {
	cube := objAt("cube_1", 0, 0, 0)
	sphere := objAt("sphere_1", 0, 0.5, 0)
	require.Equal(t, 1.0, Score("on", cube, sphere))
}

func TestScoreAboveStrict(t *testing.T) {
	cube := objAt("cube_1", 0, 0, 0)
	sphere := objAt("sphere_1", 0, 5, 0)
	require.Equal(t, 1.0, Score("above", cube, sphere))
}

func TestScoreUnknownPrepositionNeutral(t *testing.T) {
	cube := objAt("cube_1", 0, 0, 0)
	sphere := objAt("sphere_1", 0, 5, 0)
	require.Equal(t, NeutralScore, Score("beneath-ish", cube, sphere))
}

func TestScoreNilObjectsNeutral(t *testing.T) {
	require.Equal(t, NeutralScore, Score("on", nil, nil))
}

func TestScoreToAlwaysPointNine(t *testing.T) {
	cube := objAt("cube_1", 0, 0, 0)
	sphere := objAt("sphere_1", 10, 10, 10)
	require.Equal(t, 0.9, Score("to", cube, sphere))
}

func TestScoreLeftOfRightOfAreDirectional(t *testing.T) {
	cube := objAt("cube_1", 0, 0, 0)
	sphereRight := objAt("sphere_1", 5, 0, 0)

	require.Equal(t, 1.0, Score("right of", cube, sphereRight))
	require.Less(t, Score("left of", cube, sphereRight), 1.0)

	sphereLeft := objAt("sphere_2", -5, 0, 0)
	require.Equal(t, 1.0, Score("left of", cube, sphereLeft))
	require.Less(t, Score("right of", cube, sphereLeft), 1.0)
}

func TestScoreBehindInFrontOfAreDirectional(t *testing.T) {
	cube := objAt("cube_1", 0, 0, 0)
	sphereBehind := objAt("sphere_1", 0, 0, 5)

	require.Equal(t, 1.0, Score("behind", cube, sphereBehind))
	require.Less(t, Score("in front of", cube, sphereBehind), 1.0)

	sphereFront := objAt("sphere_2", 0, 0, -5)
	require.Equal(t, 1.0, Score("in front of", cube, sphereFront))
	require.Less(t, Score("behind", cube, sphereFront), 1.0)
}
