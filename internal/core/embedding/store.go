package embedding

import (
	"fmt"
	"sync"
)

// Entry is one enrolled identity's vector as held in memory. Entries keep
// their insertion order; the matcher's tie-break depends on it.
type Entry struct {
	IdentityID string
	Name       string
	Vector     []float64
}

// Store is the process-wide in-memory set of enrolled embeddings. It is
// safe for concurrent appends and reads; readers always observe an
// internally consistent set, never a torn one.
type Store struct {
	mu      sync.RWMutex
	dim     int
	entries []Entry
}

// NewStore returns an empty store that only accepts vectors of the given
// dimensionality.
func NewStore(dim int) *Store {
	return &Store{dim: dim}
}

// Dim returns the store's fixed vector dimensionality.
func (s *Store) Dim() int {
	return s.dim
}

// Load replaces the store's contents with entries, in order. It is used
// at startup to reconcile the cache with persisted identities, so an
// identity persisted by a crashed enrollment becomes matchable again.
func (s *Store) Load(entries []Entry) error {
	for _, e := range entries {
		if len(e.Vector) != s.dim {
			return fmt.Errorf("embedding: identity %s has dim %d, store dim %d", e.IdentityID, len(e.Vector), s.dim)
		}
	}
	copied := make([]Entry, len(entries))
	for i, e := range entries {
		copied[i] = Entry{
			IdentityID: e.IdentityID,
			Name:       e.Name,
			Vector:     append([]float64(nil), e.Vector...),
		}
	}

	s.mu.Lock()
	s.entries = copied
	s.mu.Unlock()
	return nil
}

// Append adds one entry. The entry is visible to every Snapshot call that
// begins after Append returns.
func (s *Store) Append(identityID, name string, vec []float64) error {
	if len(vec) != s.dim {
		return fmt.Errorf("embedding: vector dim %d, store dim %d", len(vec), s.dim)
	}
	e := Entry{
		IdentityID: identityID,
		Name:       name,
		Vector:     append([]float64(nil), vec...),
	}

	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current entries in insertion order. The returned
// slice is a copy; callers may hold it across the match without blocking
// concurrent appends.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = Entry{
			IdentityID: e.IdentityID,
			Name:       e.Name,
			Vector:     append([]float64(nil), e.Vector...),
		}
	}
	return out
}

// Len returns the number of enrolled entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
