package hollowheap

import (
	"github.com/gopherlabs/hollowheap/internal/debug"
	"github.com/gopherlabs/hollowheap/pkg/opt"
	"github.com/gopherlabs/hollowheap/pkg/slotmap"
)

// node is one slot of the arena: one inserted item produces exactly one
// node at insertion time. item absent (opt.None) marks the node hollow --
// it contributes structure only, no longer a candidate for peek/pop.
//
// firstChild, nextSibling and secondParent are zero-valued Handles when
// absent; slotmap.Handle's zero value is never issued to a live node, so it
// doubles as "no link" without an opt.Option wrapper.
type node[V, K any] struct {
	key          K
	item         opt.Option[V]
	rank         uint8
	firstChild   slotmap.Handle
	nextSibling  slotmap.Handle
	secondParent slotmap.Handle
}

func (n *node[V, K]) isHollow() bool { return n.item.IsNone() }

// addChild splices child to the front of parent's child list. childHandle
// is child's own handle (the node doesn't know it).
func addChild[V, K any](parent, child *node[V, K], childHandle slotmap.Handle) {
	child.nextSibling = parent.firstChild
	parent.firstChild = childHandle
}

// link compares a and b under h.compare and attaches the loser as a child
// of the winner. Ties favor b, matching the source's `if a > b { ... } else
// { ... }` shape under the heap's compare predicate.
func (h *Heap[V, K]) link(aHandle, bHandle slotmap.Handle) slotmap.Handle {
	a, b, ok := h.arena.Get2Mut(aHandle, bHandle)
	debug.Assert(ok, "link: invalid or aliased handles %s, %s", aHandle, bHandle)

	if h.compare(a.key, b.key) {
		addChild(a, b, bHandle)
		return aHandle
	}

	addChild(b, a, aHandle)
	return bHandle
}

// rankedLink links two trees of equal rank and bumps the winner's rank.
// This is the only place rank ever grows.
func (h *Heap[V, K]) rankedLink(aHandle, bHandle slotmap.Handle) slotmap.Handle {
	a, b, ok := h.arena.Get2Mut(aHandle, bHandle)
	debug.Assert(ok, "rankedLink: invalid or aliased handles %s, %s", aHandle, bHandle)
	debug.Assert(a.rank == b.rank, "rankedLink: rank mismatch (%d != %d)", a.rank, b.rank)

	if h.compare(a.key, b.key) {
		addChild(a, b, bHandle)
		a.rank++

		return aHandle
	}

	addChild(b, a, aHandle)
	b.rank++

	return bHandle
}

// saturatingSub2 computes max(0, rank-2), the rank a node inherits when it
// replaces a hollowed node during a key-improvement. The constant 2 is
// load-bearing for the amortization proof; implementations must not
// substitute a different one.
func saturatingSub2(rank uint8) uint8 {
	if rank < 2 {
		return 0
	}

	return rank - 2
}
