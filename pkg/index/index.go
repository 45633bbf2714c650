// Package index implements an approximate nearest-neighbor pre-filter
// over scene object vectors, backed by an HNSW graph. The grounder
// consults it before falling back to pkg/grounder's exact
// weighted-distance ranking, the way pkg/vector/store.go's Store backs
// the teacher's semantic search with an HNSW index in front of exact
// scoring. Scene object IDs are strings; the HNSW library keys on
// uint32, so Index bridges the two the way cmd/wasm/main.go's
// idMap/revIdMap pair does.
package index

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/fogfish/hnsw"
	hnswvector "github.com/fogfish/hnsw/vector"
	"github.com/hack-pad/hackpadfs"
	kvector "github.com/kshard/vector"

	"github.com/kittclouds/engraf/pkg/vector"
)

// Index is an HNSW-backed approximate pre-filter over scene object
// vectors, persisted to an fs.FS path. Zero value is not usable; use
// New or Open.
type Index struct {
	mu      sync.RWMutex
	graph   *hnsw.HNSW[hnswvector.VF32]
	idMap   map[string]uint32
	revID   map[uint32]string
	nextID  uint32
	fs      hackpadfs.FS
	path    string
}

// New returns an empty index backed by cosine similarity over
// pkg/vector's fixed dimensionality, persisting to path on fs.
func New(fs hackpadfs.FS, path string) *Index {
	return &Index{
		graph:  hnsw.New[hnswvector.VF32](hnswvector.SurfaceVF32(kvector.Cosine())),
		idMap:  make(map[string]uint32),
		revID:  make(map[uint32]string),
		nextID: 1,
		fs:     fs,
		path:   path,
	}
}

// Open loads a previously Saved index from path on fs, or returns a
// fresh empty Index if no file exists there yet.
func Open(fs hackpadfs.FS, path string) (*Index, error) {
	idx := New(fs, path)
	content, err := hackpadfs.ReadFile(fs, path)
	if err != nil {
		return idx, nil
	}

	var saved savedIndex
	dec := gob.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(&saved); err != nil {
		return nil, fmt.Errorf("index: decode %s: %w", path, err)
	}

	idx.graph = hnsw.FromNodes[hnswvector.VF32](hnswvector.SurfaceVF32(kvector.Cosine()), saved.Nodes)
	idx.idMap = saved.IDMap
	idx.revID = make(map[uint32]string, len(saved.IDMap))
	for id, uid := range saved.IDMap {
		idx.revID[uid] = id
		if uid >= idx.nextID {
			idx.nextID = uid + 1
		}
	}
	return idx, nil
}

// Upsert inserts or replaces the vector for scene object id. The HNSW
// graph has no delete; a re-insert of an id already present adds a
// second node under the same key, which Search then naturally
// deduplicates by id on the way out.
func (idx *Index) Upsert(id string, v vector.Vector) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	uid, ok := idx.idMap[id]
	if !ok {
		uid = idx.nextID
		idx.nextID++
		idx.idMap[id] = uid
		idx.revID[uid] = id
	}
	idx.graph.Insert(hnswvector.VF32{Key: uid, Vec: v.Float32()})
}

// Search returns up to k scene object IDs nearest to query, nearest
// first, deduplicated (a re-Upserted id never appears twice).
func (idx *Index) Search(query vector.Vector, k int) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.graph.Size() == 0 {
		return nil
	}
	ef := k * 2
	if ef < 100 {
		ef = 100
	}
	results := idx.graph.Search(hnswvector.VF32{Vec: query.Float32()}, k, ef)

	seen := make(map[string]bool, len(results))
	var out []string
	for _, r := range results {
		id, ok := idx.revID[r.Key]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

type savedIndex struct {
	Nodes hnsw.Nodes[hnswvector.VF32]
	IDMap map[string]uint32
}

// Save persists the index and its id mapping to fs at path.
func (idx *Index) Save() error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	saved := savedIndex{Nodes: idx.graph.Nodes(), IDMap: idx.idMap}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(saved); err != nil {
		return fmt.Errorf("index: encode: %w", err)
	}
	if err := hackpadfs.WriteFullFile(idx.fs, idx.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("index: write %s: %w", idx.path, err)
	}
	return nil
}
