//go:build !debug

package hollowheap

// Validate is a no-op outside debug builds; see validate_debug.go for the
// real structural check, gated behind the debug build tag because a full
// scan of the arena is too expensive to carry in production.
func (h *Heap[V, K]) Validate(liveCount int) {}
