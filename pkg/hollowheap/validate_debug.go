//go:build debug

package hollowheap

import (
	"github.com/gopherlabs/hollowheap/internal/debug"
	"github.com/gopherlabs/hollowheap/internal/validate"
	"github.com/gopherlabs/hollowheap/pkg/slotmap"
)

// Validate walks the whole arena and checks invariants I1-I5 against
// liveCount, the caller's own count of items it believes are still live.
// It is a debug-build-only facility: every call is a full O(N) scan, far too
// expensive to run on the hot path of a production build, which is why this
// file only compiles under the debug tag (see validate_nodebug.go for the
// no-op stand-in).
func (h *Heap[V, K]) Validate(liveCount int) {
	nonHollow := 0
	maxObservedRank := uint8(0)

	for handle, n := range h.arena.All() {
		if !n.isHollow() {
			nonHollow++

			// I1: every non-hollow parent/child edge satisfies heap order.
			for child := n.firstChild; !child.IsZero(); {
				c, ok := h.arena.Get(child)
				debug.Assert(ok, "Validate: dangling child handle %s reachable from %s", child, handle)

				if !c.isHollow() {
					debug.Assert(!h.compare(c.key, n.key),
						"Validate: heap-order violation, child %s key beats parent %s key", child, handle)
				}

				child = c.nextSibling
			}
		}

		// I4: a hollow node has at most one second-parent by construction
		// (the field holds a single Handle), and second-parent/first-child
		// pursuit must terminate -- walk it with a visited set bounded by the
		// arena's own size.
		if n.isHollow() && !n.secondParent.IsZero() {
			h.assertSecondParentChainTerminates(handle, n.secondParent)
		}

		if n.rank > maxObservedRank {
			maxObservedRank = n.rank
		}
	}

	// I2: non-hollow node count matches the caller's live-item count.
	debug.Assert(nonHollow == liveCount,
		"Validate: non-hollow node count %d does not match caller's live count %d", nonHollow, liveCount)

	// I3: the root, when present, is non-hollow.
	if !h.root.IsZero() {
		root, ok := h.arena.Get(h.root)
		debug.Assert(ok, "Validate: root handle %s not found in arena", h.root)
		debug.Assert(!root.isHollow(), "Validate: root handle %s is hollow", h.root)
	}

	// I5: rank <= ceil(log_phi(live+hollow)). phi ~= 1.618, log_phi(x) =
	// ln(x)/ln(phi); bound generously since this only guards against a
	// runaway rank, not a tight combinatorial proof.
	total := h.arena.Len()
	debug.Assert(int(maxObservedRank) <= rankBound(total),
		"Validate: observed rank %d exceeds log-phi bound for %d nodes", maxObservedRank, total)
}

func (h *Heap[V, K]) assertSecondParentChainTerminates(start slotmap.Handle, firstHop slotmap.Handle) {
	seen := validate.NewHandleSet[slotmap.Handle]()
	seen.Add(start)

	current := firstHop
	for !current.IsZero() {
		debug.Assert(seen.Add(current), "Validate: second-parent/first-child pursuit from %s cycles back to %s", start, current)

		n, ok := h.arena.Get(current)
		debug.Assert(ok, "Validate: dangling second-parent handle %s", current)

		current = n.firstChild
	}
}

// rankBound returns a generous integer upper bound for log_phi(n), used only
// to catch a rank that has clearly run away (a real implementation bug), not
// to pin down the tight constant from the amortization proof.
func rankBound(n int) int {
	if n < 2 {
		return 1
	}

	bound := 0
	for v := 1; v < n && bound <= 64; bound++ {
		v += v/2 + 1 // ~1.5x per step: slower than phi^k for large k, so the count errs high
	}

	return bound + 1
}
