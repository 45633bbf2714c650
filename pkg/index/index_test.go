package index

import (
	"testing"

	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/engraf/pkg/vector"
)

func TestUpsertAndSearchReturnsNearest(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)
	idx := New(fs, "/index.gob")

	red := vector.WithFeatures(map[vector.Dim]float64{vector.DimRed: 1})
	blue := vector.WithFeatures(map[vector.Dim]float64{vector.DimBlue: 1})
	idx.Upsert("red_obj", red)
	idx.Upsert("blue_obj", blue)

	got := idx.Search(red, 1)
	require.Equal(t, []string{"red_obj"}, got)
}

func TestUpsertReplacesIDWithoutDuplicatingResults(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)
	idx := New(fs, "/index.gob")

	v1 := vector.WithFeatures(map[vector.Dim]float64{vector.DimRed: 1})
	v2 := vector.WithFeatures(map[vector.Dim]float64{vector.DimRed: 0.9})
	idx.Upsert("obj_1", v1)
	idx.Upsert("obj_1", v2)

	got := idx.Search(v1, 5)
	require.Len(t, got, 1)
	require.Equal(t, "obj_1", got[0])
}

func TestSaveAndOpenRoundTrips(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)
	idx := New(fs, "/index.gob")

	v := vector.WithFeatures(map[vector.Dim]float64{vector.DimGreen: 1})
	idx.Upsert("green_obj", v)
	require.NoError(t, idx.Save())

	reopened, err := Open(fs, "/index.gob")
	require.NoError(t, err)
	got := reopened.Search(v, 1)
	require.Equal(t, []string{"green_obj"}, got)
}

func TestOpenMissingFileReturnsEmptyIndex(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)
	idx, err := Open(fs, "/does-not-exist.gob")
	require.NoError(t, err)
	require.Nil(t, idx.Search(vector.New(), 5))
}
