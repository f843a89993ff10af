package registry

import (
	"sync"

	"github.com/hupe1980/sumserver/core"
)

// InMemoryRegistry is a volatile core.Registry implementation storing active
// sessions in a process local map. It is safe for concurrent access from any
// number of handler goroutines. No cross-entry locking takes place: each
// session's sum is guarded by the session itself, the map mutex only covers
// membership.
type InMemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryRegistry constructs an empty in-memory registry.
func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{sessions: make(map[string]*core.Session)}
}

// Insert registers a session under the given id, overwriting any previous
// entry with the same id.
func (r *InMemoryRegistry) Insert(id string, s *core.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = s
}

// Remove deregisters and returns the session stored under id. The boolean
// reports whether an entry existed.
func (r *InMemoryRegistry) Remove(id string) (*core.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	return s, ok
}

// Get returns the session stored under id, if any.
func (r *InMemoryRegistry) Get(id string) (*core.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Snapshot returns a point-in-time view of every registered session's id and
// sum. The view is best-effort: a sum updated concurrently may be observed
// from just before or after the update, and an entry being inserted or
// removed concurrently may or may not appear.
func (r *InMemoryRegistry) Snapshot() []core.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]core.Entry, 0, len(r.sessions))
	for id, s := range r.sessions {
		entries = append(entries, core.Entry{ID: id, Sum: s.Sum()})
	}
	return entries
}
