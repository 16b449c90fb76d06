// Package validate provides a small hash set used by the hollow heap's
// debug-only structural validator to track visited handles while walking
// the DAG (invariant I4: second-parent/first-child traversal terminates).
package validate

import "github.com/dolthub/maphash"

// entry is one slot of a HandleSet's open-addressed table.
type entry[H comparable] struct {
	key  H
	used bool
}

// HandleSet is an open-addressing set of comparable handles, hashed with
// github.com/dolthub/maphash (the same dependency and hash-then-probe shape
// as the corpus's swiss-table map, simplified: a validation pass builds one
// HandleSet, fills it, and discards it, so there is no need for tombstones
// or deletion).
type HandleSet[H comparable] struct {
	hash    maphash.Hasher[H]
	entries []entry[H]
	count   int
}

// NewHandleSet returns an empty HandleSet.
func NewHandleSet[H comparable]() *HandleSet[H] {
	return &HandleSet[H]{
		hash:    maphash.NewHasher[H](),
		entries: make([]entry[H], 16),
	}
}

// Add inserts h, returning false if it was already present.
func (s *HandleSet[H]) Add(h H) bool {
	if s.count*2 >= len(s.entries) {
		s.grow()
	}

	i := s.indexFor(h)
	if s.entries[i].used {
		return false
	}

	s.entries[i] = entry[H]{key: h, used: true}
	s.count++

	return true
}

// Has reports whether h was previously Added.
func (s *HandleSet[H]) Has(h H) bool {
	i := s.indexFor(h)
	return s.entries[i].used && s.entries[i].key == h
}

// Len returns the number of distinct handles added.
func (s *HandleSet[H]) Len() int { return s.count }

func (s *HandleSet[H]) indexFor(h H) int {
	mask := uint64(len(s.entries) - 1)
	i := s.hash.Hash(h) & mask

	for {
		e := &s.entries[i]
		if !e.used || e.key == h {
			return int(i)
		}

		i = (i + 1) & mask
	}
}

func (s *HandleSet[H]) grow() {
	old := s.entries
	s.entries = make([]entry[H], len(old)*2)
	s.count = 0

	for _, e := range old {
		if e.used {
			s.Add(e.key)
		}
	}
}
