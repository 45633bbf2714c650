// Command storesmoke exercises internal/store's SceneStore
// implementations end to end, the way GoKitt's cmd/storetest did for
// its Notes/Entities/Edges schema.
package main

import (
	"fmt"
	"log"

	"github.com/kittclouds/engraf/internal/store"
)

func main() {
	fmt.Println("Testing MemStore...")
	exercise(store.NewMemStore())

	fmt.Println("\nTesting SQLiteStore...")
	sqliteStore, err := store.NewSQLiteStore()
	if err != nil {
		log.Fatalf("NewSQLiteStore failed: %v", err)
	}
	exercise(sqliteStore)

	fmt.Println("\nAll smoke checks passed.")
}

func exercise(s store.SceneStore) {
	defer s.Close()

	obj := &store.StoredObject{
		ID:        "cube_1",
		Name:      "cube",
		Vector:    []float64{1, 0, 0, 0},
		CreatedAt: 1234567890,
		UpdatedAt: 1234567890,
	}
	if err := s.UpsertObject(obj); err != nil {
		log.Fatalf("UpsertObject failed: %v", err)
	}
	fmt.Println("  UpsertObject works")

	retrieved, err := s.GetObject("cube_1")
	if err != nil {
		log.Fatalf("GetObject failed: %v", err)
	}
	if retrieved == nil {
		log.Fatal("GetObject returned nil")
	}
	fmt.Println("  GetObject works")

	count, err := s.CountObjects()
	if err != nil {
		log.Fatalf("CountObjects failed: %v", err)
	}
	if count != 1 {
		log.Fatalf("CountObjects expected 1, got %d", count)
	}
	fmt.Println("  CountObjects works")

	asm := &store.StoredAssembly{
		ID:        "asm_1",
		Name:      "tower",
		ObjectIDs: []string{"cube_1"},
		CreatedAt: 1234567890,
	}
	if err := s.UpsertAssembly(asm); err != nil {
		log.Fatalf("UpsertAssembly failed: %v", err)
	}
	fmt.Println("  UpsertAssembly works")

	if _, err := s.ListAssemblies(); err != nil {
		log.Fatalf("ListAssemblies failed: %v", err)
	}
	fmt.Println("  ListAssemblies works")

	if err := s.DeleteObject("cube_1"); err != nil {
		log.Fatalf("DeleteObject failed: %v", err)
	}
	fmt.Println("  DeleteObject works")
}
