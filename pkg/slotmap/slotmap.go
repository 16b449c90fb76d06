package slotmap

import (
	"iter"

	"github.com/gopherlabs/hollowheap/internal/debug"
)

// slot is one storage cell. A free slot's value is zeroed; its generation is
// the generation the *next* occupant will be issued.
type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// SlotMap is an arena of T, addressed by generation-checked [Handle]s.
//
// Freed slots are threaded onto a LIFO free list by index (not by pointer,
// unlike the byte-oriented recycler this package's sibling arena allocators
// use elsewhere in the corpus) and reused by the next Insert, so the arena's
// backing storage never shrinks and freeing is O(1).
type SlotMap[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// New returns an empty SlotMap.
func New[T any]() *SlotMap[T] {
	return &SlotMap[T]{}
}

// Reserve grows the backing storage to hold at least n slots without further
// reallocation. It is the capacity hint from the heap builder's
// construct(capacity: N) option.
func (m *SlotMap[T]) Reserve(n int) {
	if n <= cap(m.slots) {
		return
	}

	grown := make([]slot[T], len(m.slots), n)
	copy(grown, m.slots)
	m.slots = grown
}

// Insert adds value to the arena and returns its handle.
func (m *SlotMap[T]) Insert(value T) Handle {
	m.count++

	if n := len(m.free); n > 0 {
		idx := m.free[n-1]
		m.free = m.free[:n-1]

		s := &m.slots[idx]
		s.value = value
		s.occupied = true

		return Handle{index: idx, generation: s.generation}
	}

	idx := uint32(len(m.slots))
	m.slots = append(m.slots, slot[T]{value: value, generation: 1, occupied: true})

	return Handle{index: idx, generation: 1}
}

// Remove deletes the value addressed by h and returns it. ok is false if h is
// stale (already removed, or from a slot since reused with a newer
// generation) or out of range; in that case the zero T is returned.
func (m *SlotMap[T]) Remove(h Handle) (_ T, ok bool) {
	s, ok := m.slotFor(h)
	if !ok {
		var zero T
		return zero, false
	}

	value := s.value

	var zero T
	s.value = zero
	s.occupied = false
	s.generation++
	m.count--

	m.free = append(m.free, h.index)

	return value, true
}

// Get returns a pointer to the value addressed by h, or ok=false if h is stale.
//
// The returned pointer is only valid until the next Insert: Insert may grow
// the backing slice and move its contents, the same caveat Rust's
// generational_arena documents for its own get/get_mut.
func (m *SlotMap[T]) Get(h Handle) (_ *T, ok bool) {
	s, ok := m.slotFor(h)
	if !ok {
		return nil, false
	}

	return &s.value, true
}

// Get2Mut returns pointers to the values addressed by h1 and h2, allowing
// both to be mutated in the same statement (e.g. to splice one onto the
// other's child list). It fails, returning ok=false, when h1 == h2 -- taking
// two mutable references to the same slot is never well-defined for a
// caller, matching generational_arena::Arena::get2_mut's documented
// panic-on-alias contract, but surfaced here as a boolean instead of a panic
// since every call site in this module can statically avoid the alias case.
func (m *SlotMap[T]) Get2Mut(h1, h2 Handle) (_, _ *T, ok bool) {
	if h1 == h2 {
		return nil, nil, false
	}

	s1, ok1 := m.slotFor(h1)
	if !ok1 {
		return nil, nil, false
	}

	s2, ok2 := m.slotFor(h2)
	if !ok2 {
		return nil, nil, false
	}

	return &s1.value, &s2.value, true
}

// Len returns the number of currently occupied slots.
func (m *SlotMap[T]) Len() int { return m.count }

// All iterates every occupied slot's handle and value pointer, in index
// order. Used only by the debug-only structural validator -- nothing on the
// hot path needs a full scan of the arena.
func (m *SlotMap[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := range m.slots {
			s := &m.slots[i]
			if !s.occupied {
				continue
			}

			if !yield(Handle{index: uint32(i), generation: s.generation}, &s.value) {
				return
			}
		}
	}
}

func (m *SlotMap[T]) slotFor(h Handle) (*slot[T], bool) {
	if int(h.index) >= len(m.slots) {
		return nil, false
	}

	s := &m.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return nil, false
	}

	return s, true
}

// dump renders a debug summary of the arena's slot usage.
func (m *SlotMap[T]) dump() debug.Formatter {
	return debug.Dict("SlotMap", "slots", len(m.slots), "free", len(m.free), "len", m.count)
}

// GoString implements fmt.GoStringer for debugging.
func (m *SlotMap[T]) GoString() string { return m.dump().String() }
