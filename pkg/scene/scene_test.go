package scene

import (
	"testing"

	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/engraf/pkg/vector"
)

func TestAddObjectPushesRecent(t *testing.T) {
	s := New()
	s.AddObject(Object{ID: "cube_1", Name: "cube"})
	s.AddObject(Object{ID: "sphere_1", Name: "sphere"})

	require.Equal(t, []string{"cube_1", "sphere_1"}, s.RecentIDs())
	require.Len(t, s.Objects(), 2)
}

func TestRecentQueueBounded(t *testing.T) {
	s := NewWithRecentQueueSize(2)
	s.AddObject(Object{ID: "a"})
	s.AddObject(Object{ID: "b"})
	s.AddObject(Object{ID: "c"})
	require.Equal(t, []string{"b", "c"}, s.RecentIDs())
}

func TestAddAssemblyExclusiveMembership(t *testing.T) {
	s := New()
	s.AddObject(Object{ID: "cube_1", Name: "cube"})
	s.AddObject(Object{ID: "sphere_1", Name: "sphere"})
	s.AddAssembly(Assembly{ID: "asm_1", Name: "group", ObjectIDs: []string{"cube_1", "sphere_1"}})

	cube, ok := s.Object("cube_1")
	require.True(t, ok)
	require.Equal(t, "asm_1", cube.AssemblyID)
}

func TestResolvePronounItReturnsMostRecentSingular(t *testing.T) {
	s := New()
	s.AddObject(Object{ID: "cube_1", Name: "cube"})
	s.AddObject(Object{ID: "sphere_1", Name: "sphere"})

	objs, err := s.ResolvePronoun("it")
	require.NoError(t, err)
	require.Len(t, objs, 1)
	require.Equal(t, "sphere_1", objs[0].ID)
}

func TestResolvePronounEmptySceneFails(t *testing.T) {
	s := New()
	_, err := s.ResolvePronoun("it")
	require.Error(t, err)
	var nr *NoReferent
	require.ErrorAs(t, err, &nr)
}

func TestResolvePronounThemReturnsAll(t *testing.T) {
	s := New()
	s.AddObject(Object{ID: "cube_1", Name: "cube"})
	s.AddObject(Object{ID: "sphere_1", Name: "sphere"})

	objs, err := s.ResolvePronoun("them")
	require.NoError(t, err)
	require.Len(t, objs, 2)
}

func TestResolvePronounThemIsNotBoundedByRecentQueue(t *testing.T) {
	s := NewWithRecentQueueSize(2)
	s.AddObject(Object{ID: "a"})
	s.AddObject(Object{ID: "b"})
	s.AddObject(Object{ID: "c"})

	objs, err := s.ResolvePronoun("them")
	require.NoError(t, err)
	require.Len(t, objs, 3)
}

func TestResolvePronounThemExcludesAssemblyMembers(t *testing.T) {
	s := New()
	s.AddObject(Object{ID: "cube_1", Name: "cube"})
	s.AddObject(Object{ID: "sphere_1", Name: "sphere"})
	s.AddObject(Object{ID: "cone_1", Name: "cone"})
	s.AddAssembly(Assembly{ID: "asm_1", Name: "group", ObjectIDs: []string{"cube_1", "sphere_1"}})

	objs, err := s.ResolvePronoun("them")
	require.NoError(t, err)
	require.Len(t, objs, 1)
	require.Equal(t, "cone_1", objs[0].ID)
}

func TestCandidatesFiltersByName(t *testing.T) {
	s := New()
	s.AddObject(Object{ID: "cube_1", Name: "cube"})
	s.AddObject(Object{ID: "cube_2", Name: "cube"})
	s.AddObject(Object{ID: "sphere_1", Name: "sphere"})

	cubes := s.Candidates("cube")
	require.Len(t, cubes, 2)
}

func TestVectorOf(t *testing.T) {
	o := Object{ID: "cube_1", Vector: vector.WithFeatures(map[vector.Dim]float64{vector.DimLocX: 1})}
	require.Equal(t, 1.0, VectorOf(o).Get(vector.DimLocX))
}

func TestNearestByVectorWithoutIndexReturnsNil(t *testing.T) {
	s := New()
	s.AddObject(Object{ID: "cube_1", Name: "cube"})
	require.Nil(t, s.NearestByVector(vector.New(), 5))
}

func TestEnableVectorIndexBackfillsAndFindsNearest(t *testing.T) {
	s := New()
	redCube := vector.WithFeatures(map[vector.Dim]float64{vector.DimRed: 1})
	blueSphere := vector.WithFeatures(map[vector.Dim]float64{vector.DimBlue: 1})
	s.AddObject(Object{ID: "cube_1", Name: "cube", Vector: redCube})
	s.AddObject(Object{ID: "sphere_1", Name: "sphere", Vector: blueSphere})

	fs, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, s.EnableVectorIndex(fs, "/index.gob"))

	nearest := s.NearestByVector(redCube, 1)
	require.NotEmpty(t, nearest)
	require.Equal(t, "cube_1", nearest[0].ID)

	require.NoError(t, s.SaveVectorIndex())
}
