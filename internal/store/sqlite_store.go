// Package store provides SQLite-backed persistence for scene
// snapshots. Uses ncruces/go-sqlite3's database/sql driver plus
// asg017/sqlite-vec-go-bindings for a vec0 virtual table that indexes
// object vectors for SQL-side nearest-neighbor queries, the way
// pkg/index's in-process HNSW does for the live parse path.
package store

import (
	"bytes"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/asg017/sqlite-vec-go-bindings/ncruces"
	_ "github.com/ncruces/go-sqlite3/driver"

	"github.com/kittclouds/engraf/pkg/vector"
)

// SQLiteStore is the SQLite-backed scene store.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// schema defines the scene_objects/scene_assemblies tables plus a
// vec0 virtual table mirroring scene_objects' vectors for ANN
// queries. %d is pkg/vector.Dims(), the fixed dimensionality every
// Vector carries.
const schema = `
CREATE TABLE IF NOT EXISTS scene_objects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    assembly_id TEXT,
    vector TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scene_objects_name ON scene_objects(name);
CREATE INDEX IF NOT EXISTS idx_scene_objects_assembly ON scene_objects(assembly_id);

CREATE TABLE IF NOT EXISTS scene_assemblies (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    object_ids TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE VIRTUAL TABLE IF NOT EXISTS vec_scene_objects USING vec0(
    object_id TEXT PRIMARY KEY,
    embedding float[%d]
);
`

// encodeFloat32Slice packs a vector into the little-endian float32 blob
// vec0 expects for its embedding column.
func encodeFloat32Slice(v []float32) []byte {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.LittleEndian, v)
	return buf.Bytes()
}

// NewSQLiteStore creates a new in-memory SQLite scene store.
func NewSQLiteStore() (*SQLiteStore, error) {
	return NewSQLiteStoreWithDSN(":memory:")
}

// NewSQLiteStoreWithDSN creates a store with a specific data source
// name. Use ":memory:" for in-memory or a file path for persistent
// storage.
func NewSQLiteStoreWithDSN(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf(schema, vector.Dims())); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// =============================================================================
// Object CRUD
// =============================================================================

// UpsertObject inserts or updates a scene object, keeping
// vec_scene_objects's embedding in step.
func (s *SQLiteStore) UpsertObject(obj *StoredObject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vecJSON, err := json.Marshal(obj.Vector)
	if err != nil {
		return fmt.Errorf("failed to marshal vector: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO scene_objects (id, name, assembly_id, vector, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			assembly_id = excluded.assembly_id,
			vector = excluded.vector,
			updated_at = excluded.updated_at
	`, obj.ID, obj.Name, obj.AssemblyID, string(vecJSON), obj.CreatedAt, obj.UpdatedAt)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO vec_scene_objects (object_id, embedding) VALUES (?, ?)
		ON CONFLICT(object_id) DO UPDATE SET embedding = excluded.embedding
	`, obj.ID, encodeFloat32Slice(float64Vector(obj.Vector)))
	return err
}

func float64Vector(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}

// GetObject retrieves a scene object by ID.
func (s *SQLiteStore) GetObject(id string) (*StoredObject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var obj StoredObject
	var vecJSON string
	var assemblyID sql.NullString

	err := s.db.QueryRow(`
		SELECT id, name, assembly_id, vector, created_at, updated_at
		FROM scene_objects WHERE id = ?
	`, id).Scan(&obj.ID, &obj.Name, &assemblyID, &vecJSON, &obj.CreatedAt, &obj.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	obj.AssemblyID = assemblyID.String
	if err := json.Unmarshal([]byte(vecJSON), &obj.Vector); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vector: %w", err)
	}
	return &obj, nil
}

// DeleteObject removes a scene object by ID, and its vec0 row.
func (s *SQLiteStore) DeleteObject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM vec_scene_objects WHERE object_id = ?", id); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM scene_objects WHERE id = ?", id)
	return err
}

// ListObjects returns every scene object, ordered by id.
func (s *SQLiteStore) ListObjects() ([]*StoredObject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, assembly_id, vector, created_at, updated_at
		FROM scene_objects ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var objs []*StoredObject
	for rows.Next() {
		var obj StoredObject
		var vecJSON string
		var assemblyID sql.NullString
		if err := rows.Scan(&obj.ID, &obj.Name, &assemblyID, &vecJSON, &obj.CreatedAt, &obj.UpdatedAt); err != nil {
			return nil, err
		}
		obj.AssemblyID = assemblyID.String
		if err := json.Unmarshal([]byte(vecJSON), &obj.Vector); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vector: %w", err)
		}
		objs = append(objs, &obj)
	}
	return objs, rows.Err()
}

// CountObjects returns the total number of scene objects.
func (s *SQLiteStore) CountObjects() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM scene_objects").Scan(&count)
	return count, err
}

// NearestObjectIDs ranks vec_scene_objects by cosine distance to
// query, returning up to k object IDs nearest first. This is the
// SQL-side counterpart to pkg/index's in-process HNSW search, for
// callers that keep scene state entirely in SQLite rather than
// loading it into a pkg/scene.Scene.
func (s *SQLiteStore) NearestObjectIDs(query []float64, k int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT object_id FROM vec_scene_objects
		ORDER BY vec_distance_cosine(embedding, ?) ASC
		LIMIT ?
	`, encodeFloat32Slice(float64Vector(query)), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// =============================================================================
// Assembly CRUD
// =============================================================================

// UpsertAssembly inserts or updates an assembly.
func (s *SQLiteStore) UpsertAssembly(a *StoredAssembly) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idsJSON, err := json.Marshal(a.ObjectIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal object ids: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO scene_assemblies (id, name, object_ids, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			object_ids = excluded.object_ids
	`, a.ID, a.Name, string(idsJSON), a.CreatedAt)
	return err
}

// GetAssembly retrieves an assembly by ID.
func (s *SQLiteStore) GetAssembly(id string) (*StoredAssembly, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var a StoredAssembly
	var idsJSON string
	err := s.db.QueryRow(`
		SELECT id, name, object_ids, created_at FROM scene_assemblies WHERE id = ?
	`, id).Scan(&a.ID, &a.Name, &idsJSON, &a.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(idsJSON), &a.ObjectIDs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal object ids: %w", err)
	}
	return &a, nil
}

// DeleteAssembly removes an assembly by ID.
func (s *SQLiteStore) DeleteAssembly(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM scene_assemblies WHERE id = ?", id)
	return err
}

// ListAssemblies returns every assembly, ordered by id.
func (s *SQLiteStore) ListAssemblies() ([]*StoredAssembly, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, name, object_ids, created_at FROM scene_assemblies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*StoredAssembly
	for rows.Next() {
		var a StoredAssembly
		var idsJSON string
		if err := rows.Scan(&a.ID, &a.Name, &idsJSON, &a.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(idsJSON), &a.ObjectIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal object ids: %w", err)
		}
		result = append(result, &a)
	}
	return result, rows.Err()
}

// CountAssemblies returns the total number of assemblies.
func (s *SQLiteStore) CountAssemblies() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM scene_assemblies").Scan(&count)
	return count, err
}

// Compile-time interface check
var _ SceneStore = (*SQLiteStore)(nil)
