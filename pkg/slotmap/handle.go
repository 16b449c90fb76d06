// Package slotmap provides a generation-checked handle arena.
//
// A SlotMap assigns every inserted value a stable [Handle] that survives
// insertion and removal of other entries. Removed slots are threaded onto a
// free list and reused by later inserts, but each reuse bumps the slot's
// generation counter, so a [Handle] captured before the slot was freed is
// reliably rejected instead of silently resolving to whatever was reinserted
// in its place.
//
// This plays the role that generational_arena::Arena plays in the Rust
// hollow-heap source this package's sibling pkg/hollowheap was ported from:
// a single owner of node storage, handed out as small, comparable, freely
// copyable tokens.
package slotmap

import "fmt"

// Handle identifies one slot in a SlotMap across its lifetime.
//
// The zero Handle is never returned by Insert (the first slot's generation
// starts at 1), so callers may use Handle{} as a sentinel "no handle" value
// without wrapping it in an Option.
type Handle struct {
	index      uint32
	generation uint32
}

// Index returns the slot index this handle addresses, for diagnostics.
func (h Handle) Index() uint32 { return h.index }

// Generation returns the generation this handle was issued for, for diagnostics.
func (h Handle) Generation() uint32 { return h.generation }

// IsZero reports whether h is the zero Handle (no handle).
func (h Handle) IsZero() bool { return h == Handle{} }

func (h Handle) String() string {
	return fmt.Sprintf("#%d@%d", h.index, h.generation)
}
