package hollowheap

import "github.com/gopherlabs/hollowheap/internal/debug"

// Dump renders a human-readable summary of the heap's root handle and
// underlying arena, for debugging only -- there is no persisted format and
// no stability guarantee across versions.
func (h *Heap[V, K]) Dump() debug.Formatter {
	return debug.Dict("Heap", "root", h.root, "nodes", debug.Fprintf("%#v", h.arena))
}

// GoString implements fmt.GoStringer so that %#v on a *Heap prints the debug
// dump instead of the raw struct layout.
func (h *Heap[V, K]) GoString() string { return h.Dump().String() }

// String implements fmt.Stringer for the same reason, under %v and %s.
func (h *Heap[V, K]) String() string { return h.Dump().String() }
