package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kittclouds/engraf/pkg/vector"
)

// testVector pads vals out to vector.Dims() so every store-layer
// fixture matches the width SQLiteStore's vec0 column is declared
// with.
func testVector(vals ...float64) []float64 {
	out := make([]float64, vector.Dims())
	copy(out, vals)
	return out
}

// storeFactory creates a store for testing. Both MemStore and
// SQLiteStore run the same suite, the way GoKitt's store_test.go
// tests both backends against one Storer contract.
type storeFactory func() (SceneStore, error)

func memStoreFactory() (SceneStore, error) {
	return NewMemStore(), nil
}

func sqliteStoreFactory() (SceneStore, error) {
	return NewSQLiteStore()
}

func runTestsForAllStores(t *testing.T, testName string, testFn func(t *testing.T, s SceneStore)) {
	factories := map[string]storeFactory{
		"MemStore":    memStoreFactory,
		"SQLiteStore": sqliteStoreFactory,
	}

	for name, factory := range factories {
		t.Run(name+"/"+testName, func(t *testing.T) {
			s, err := factory()
			require.NoError(t, err, "failed to create store")
			defer s.Close()
			testFn(t, s)
		})
	}
}

func TestStoreCreation(t *testing.T) {
	runTestsForAllStores(t, "Creation", func(t *testing.T, s SceneStore) {
		require.NotNil(t, s)
	})
}

func TestObjectUpsertAndGet(t *testing.T) {
	runTestsForAllStores(t, "UpsertAndGet", func(t *testing.T, s SceneStore) {
		obj := &StoredObject{
			ID:         "cube_1",
			Name:       "cube",
			AssemblyID: "",
			Vector:     testVector(1, 0.5),
			CreatedAt:  1000,
			UpdatedAt:  1000,
		}

		require.NoError(t, s.UpsertObject(obj))

		got, err := s.GetObject("cube_1")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, obj.ID, got.ID)
		require.Equal(t, obj.Name, got.Name)
		require.Equal(t, obj.Vector, got.Vector)
	})
}

func TestObjectUpsertUpdatesExisting(t *testing.T) {
	runTestsForAllStores(t, "UpsertUpdates", func(t *testing.T, s SceneStore) {
		obj := &StoredObject{ID: "cube_1", Name: "cube", Vector: testVector(1), CreatedAt: 1000, UpdatedAt: 1000}
		require.NoError(t, s.UpsertObject(obj))

		obj.Name = "big cube"
		obj.AssemblyID = "asm_1"
		obj.UpdatedAt = 2000
		require.NoError(t, s.UpsertObject(obj))

		got, err := s.GetObject("cube_1")
		require.NoError(t, err)
		require.Equal(t, "big cube", got.Name)
		require.Equal(t, "asm_1", got.AssemblyID)

		count, err := s.CountObjects()
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

func TestObjectGetMissingReturnsNil(t *testing.T) {
	runTestsForAllStores(t, "GetMissing", func(t *testing.T, s SceneStore) {
		got, err := s.GetObject("does-not-exist")
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestObjectDelete(t *testing.T) {
	runTestsForAllStores(t, "Delete", func(t *testing.T, s SceneStore) {
		obj := &StoredObject{ID: "cube_1", Name: "cube", Vector: testVector(), CreatedAt: 1, UpdatedAt: 1}
		require.NoError(t, s.UpsertObject(obj))
		require.NoError(t, s.DeleteObject("cube_1"))

		got, err := s.GetObject("cube_1")
		require.NoError(t, err)
		require.Nil(t, got)

		count, err := s.CountObjects()
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})
}

func TestObjectList(t *testing.T) {
	runTestsForAllStores(t, "List", func(t *testing.T, s SceneStore) {
		require.NoError(t, s.UpsertObject(&StoredObject{ID: "b_obj", Name: "sphere", Vector: testVector(), CreatedAt: 1, UpdatedAt: 1}))
		require.NoError(t, s.UpsertObject(&StoredObject{ID: "a_obj", Name: "cube", Vector: testVector(), CreatedAt: 1, UpdatedAt: 1}))

		objs, err := s.ListObjects()
		require.NoError(t, err)
		require.Len(t, objs, 2)
		require.Equal(t, "a_obj", objs[0].ID)
		require.Equal(t, "b_obj", objs[1].ID)
	})
}

func TestAssemblyUpsertAndGet(t *testing.T) {
	runTestsForAllStores(t, "AssemblyUpsertAndGet", func(t *testing.T, s SceneStore) {
		asm := &StoredAssembly{
			ID:        "asm_1",
			Name:      "tower",
			ObjectIDs: []string{"cube_1", "cube_2"},
			CreatedAt: 1000,
		}
		require.NoError(t, s.UpsertAssembly(asm))

		got, err := s.GetAssembly("asm_1")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, asm.ObjectIDs, got.ObjectIDs)
	})
}

func TestAssemblyDelete(t *testing.T) {
	runTestsForAllStores(t, "AssemblyDelete", func(t *testing.T, s SceneStore) {
		asm := &StoredAssembly{ID: "asm_1", Name: "tower", ObjectIDs: []string{"cube_1"}, CreatedAt: 1}
		require.NoError(t, s.UpsertAssembly(asm))
		require.NoError(t, s.DeleteAssembly("asm_1"))

		got, err := s.GetAssembly("asm_1")
		require.NoError(t, err)
		require.Nil(t, got)

		count, err := s.CountAssemblies()
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})
}

func TestAssemblyList(t *testing.T) {
	runTestsForAllStores(t, "AssemblyList", func(t *testing.T, s SceneStore) {
		require.NoError(t, s.UpsertAssembly(&StoredAssembly{ID: "asm_b", Name: "tower", ObjectIDs: nil, CreatedAt: 1}))
		require.NoError(t, s.UpsertAssembly(&StoredAssembly{ID: "asm_a", Name: "row", ObjectIDs: nil, CreatedAt: 1}))

		asms, err := s.ListAssemblies()
		require.NoError(t, err)
		require.Len(t, asms, 2)
		require.Equal(t, "asm_a", asms[0].ID)
		require.Equal(t, "asm_b", asms[1].ID)
	})
}

func TestToJSONFromJSONRoundTrips(t *testing.T) {
	obj := &StoredObject{ID: "cube_1", Name: "cube", Vector: []float64{1, 2}, CreatedAt: 1, UpdatedAt: 1}

	data, err := ToJSON(obj)
	require.NoError(t, err)

	got, err := FromJSON[StoredObject](data)
	require.NoError(t, err)
	require.Equal(t, obj.ID, got.ID)
	require.Equal(t, obj.Vector, got.Vector)
}
