// Package scene implements the read-only scene model the core parser
// consults during grounding: objects, assemblies, a bounded recent
// queue for pronoun resolution, and the noun-phrase candidate query the
// grounder ranks. The scene itself is mutated only by the external
// sentence interpreter between parses (never by the core); this package
// exposes both the read surface the core uses and the mutation methods
// the interpreter drives, guarded the defensive-copy way
// internal/store/memstore.go guards its maps.
package scene

import (
	"sync"

	"github.com/hack-pad/hackpadfs"

	"github.com/kittclouds/engraf/pkg/index"
	"github.com/kittclouds/engraf/pkg/vector"
)

// DefaultRecentQueueSize is the bounded window of most-recently
// mentioned entities kept for singular pronoun resolution ("it"). The
// original interpreter tracks only a single last-acted-object reference
// (falling back to the most recently created object); a size-10 window
// is this package's Go-idiomatic generalization of that single pointer
// — grounded on the teacher's NarrativeContext.maxHistory shape — so an
// object several objects back in conversation is still reachable
// without keeping unbounded history. Plural resolution ("them"/"they")
// does not consult this queue at all; see ResolvePronoun.
const DefaultRecentQueueSize = 10

// Object is one scene entity: a named, vectored thing. Vector carries
// its spatial (locX/Y/Z, scaleX/Y/Z, rotX/Y/Z) and appearance
// (red/green/blue, texture, transparency) state.
type Object struct {
	ID         string
	Name       string
	Vector     vector.Vector
	AssemblyID string // "" if standalone
}

// Assembly is a named group of objects. Membership is exclusive: an
// object belongs to at most one assembly at a time.
type Assembly struct {
	ID        string
	Name      string
	ObjectIDs []string
}

// Scene holds scene state with a bounded recent-mention queue for
// pronoun resolution. Zero value is not usable; use New.
type Scene struct {
	mu         sync.RWMutex
	objects    map[string]*Object
	assemblies map[string]*Assembly
	order      []string // object/assembly IDs in creation order
	recent     []string // bounded queue of most-recently mentioned IDs
	recentSize int

	vectorIdx *index.Index // nil until EnableVectorIndex is called
}

// New returns an empty scene with the default recent-queue size.
func New() *Scene {
	return NewWithRecentQueueSize(DefaultRecentQueueSize)
}

// NewWithRecentQueueSize returns an empty scene whose recent queue holds
// at most size entries.
func NewWithRecentQueueSize(size int) *Scene {
	return &Scene{
		objects:    make(map[string]*Object),
		assemblies: make(map[string]*Assembly),
		recentSize: size,
	}
}

func (s *Scene) pushRecent(id string) {
	for i, existing := range s.recent {
		if existing == id {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}
	s.recent = append(s.recent, id)
	if len(s.recent) > s.recentSize {
		s.recent = s.recent[len(s.recent)-s.recentSize:]
	}
}

// AddObject appends obj to the scene and pushes it onto the recent
// queue. Part of the mutation contract driven by the external
// interpreter, never called by the core parse path.
func (s *Scene) AddObject(obj Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := obj
	s.objects[o.ID] = &o
	s.order = append(s.order, o.ID)
	s.pushRecent(o.ID)
	if s.vectorIdx != nil {
		s.vectorIdx.Upsert(o.ID, o.Vector)
	}
}

// EnableVectorIndex attaches an HNSW pre-filter (pkg/index) backed by
// fs at path, backfilling every object already in the scene. Scenes
// with few objects have no need of it; GroundNounPhrase falls back to
// the exact weighted-distance scan over Candidates when no index is
// attached.
func (s *Scene) EnableVectorIndex(fs hackpadfs.FS, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err := index.Open(fs, path)
	if err != nil {
		return err
	}
	for _, id := range s.order {
		if o, ok := s.objects[id]; ok {
			idx.Upsert(o.ID, o.Vector)
		}
	}
	s.vectorIdx = idx
	return nil
}

// SaveVectorIndex persists the attached vector index, or is a no-op if
// none is attached.
func (s *Scene) SaveVectorIndex() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.vectorIdx == nil {
		return nil
	}
	return s.vectorIdx.Save()
}

// NearestByVector returns up to k objects whose vectors are nearest
// query, nearest first, via the attached index. Returns nil if no
// index is attached.
func (s *Scene) NearestByVector(query vector.Vector, k int) []Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.vectorIdx == nil {
		return nil
	}
	var out []Object
	for _, id := range s.vectorIdx.Search(query, k) {
		if o, ok := s.objects[id]; ok {
			out = append(out, *o)
		}
	}
	return out
}

// AddAssembly appends a to the scene, pushes it onto the recent queue,
// and removes each owned object from the standalone list by stamping
// its AssemblyID.
func (s *Scene) AddAssembly(a Assembly) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copyA := a
	s.assemblies[copyA.ID] = &copyA
	s.order = append(s.order, copyA.ID)
	for _, oid := range copyA.ObjectIDs {
		if obj, ok := s.objects[oid]; ok {
			obj.AssemblyID = copyA.ID
		}
	}
	s.pushRecent(copyA.ID)
}

// RemoveObject deletes obj and any recent-queue/assembly membership
// referencing it.
func (s *Scene) RemoveObject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.objects[id]; ok && o.AssemblyID != "" {
		if a, ok := s.assemblies[o.AssemblyID]; ok {
			kept := make([]string, 0, len(a.ObjectIDs))
			for _, oid := range a.ObjectIDs {
				if oid != id {
					kept = append(kept, oid)
				}
			}
			a.ObjectIDs = kept
		}
	}
	delete(s.objects, id)
	s.removeFromOrderAndRecent(id)
}

// RemoveAssembly deletes the assembly and frees its member objects to
// standalone status.
func (s *Scene) RemoveAssembly(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assemblies[id]
	if ok {
		for _, oid := range a.ObjectIDs {
			if obj, ok := s.objects[oid]; ok {
				obj.AssemblyID = ""
			}
		}
	}
	delete(s.assemblies, id)
	s.removeFromOrderAndRecent(id)
}

func (s *Scene) removeFromOrderAndRecent(id string) {
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	for i, existing := range s.recent {
		if existing == id {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}
}

// Clear empties the scene entirely.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = make(map[string]*Object)
	s.assemblies = make(map[string]*Assembly)
	s.order = nil
	s.recent = nil
}

// Object returns a copy of the object with id, or ok=false.
func (s *Scene) Object(id string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objects[id]
	if !ok {
		return Object{}, false
	}
	return *o, true
}

// Objects returns every object, in creation order.
func (s *Scene) Objects() []Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Object
	for _, id := range s.order {
		if o, ok := s.objects[id]; ok {
			out = append(out, *o)
		}
	}
	return out
}

// Assemblies returns every assembly, in creation order.
func (s *Scene) Assemblies() []Assembly {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Assembly
	for _, id := range s.order {
		if a, ok := s.assemblies[id]; ok {
			out = append(out, *a)
		}
	}
	return out
}

// RecentIDs returns the recent-mention queue, oldest first, newest last.
func (s *Scene) RecentIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}
