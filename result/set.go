package result

import (
	"strings"
	"sync"
)

// keySep joins vertex IDs into a set key. It cannot occur in a printable ID,
// so multi-character IDs never collide ("AB","C" vs "A","BC").
const keySep = "\x1f"

// Entry is one unique walk.
type Entry struct {
	// Path is the ordered vertex sequence.
	Path []string

	// Distance is the total weight of the walk.
	Distance int64
}

// String renders the path as concatenated vertex IDs.
func (e Entry) String() string {
	return strings.Join(e.Path, "")
}

// Set is the run-wide collection of unique walks, keyed by path.
type Set struct {
	mu    sync.RWMutex
	byKey map[string]Entry
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{byKey: make(map[string]Entry)}
}

// Add records the walk path with its distance and reports whether the path
// was new. An existing path is overwritten (last write wins). path is copied.
//
// Complexity: O(len(path)).
func (s *Set) Add(path []string, distance int64) bool {
	key := strings.Join(path, keySep)
	e := Entry{Path: append([]string(nil), path...), Distance: distance}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, seen := s.byKey[key]
	s.byKey[key] = e
	return !seen
}

// Len returns the number of unique walks.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byKey)
}

// Entries returns a snapshot of the set in no particular order.
func (s *Set) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.byKey))
	for _, e := range s.byKey {
		out = append(out, e)
	}
	return out
}

// Merge adds every entry of other to s and returns how many were new.
func (s *Set) Merge(other *Set) int {
	added := 0
	for _, e := range other.Entries() {
		if s.Add(e.Path, e.Distance) {
			added++
		}
	}
	return added
}
