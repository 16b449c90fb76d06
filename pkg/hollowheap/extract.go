package hollowheap

import "github.com/gopherlabs/hollowheap/internal/debug"

// extractRebuild dismantles the current root, freeing every hollow node
// reachable from it and coalescing the living children it uncovers (plus any
// root-level siblings already queued behind it) into a single new root.
//
// This is the amortized-log(N) step of the algorithm; every other mutation
// is O(1). See the package design notes for the walk/dispatch ordering this
// implementation must preserve -- it is not obvious from the final code.
func (h *Heap[V, K]) extractRebuild() {
	root := h.root
	if root.IsZero() {
		return
	}

	if n, ok := h.arena.Get(root); ok {
		n.nextSibling = Handle{}
		n.secondParent = Handle{}
	}

	queue := []Handle{root}
	var rootsByRank []Handle

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		currentNode, ok := h.arena.Get(current)
		debug.Assert(ok, "extractRebuild: queued handle %s missing from arena", current)

		walk := currentNode.firstChild
		nextRoot := currentNode.nextSibling

		for !walk.IsZero() {
			childHandle := walk
			child, ok := h.arena.Get(childHandle)
			debug.Assert(ok, "extractRebuild: child handle %s missing from arena", childHandle)

			// Advance the walk pointer before dispatching on this child, so
			// the stop-case below can override it back to none.
			walk = child.nextSibling

			switch {
			case child.isHollow() && child.secondParent.IsZero():
				child.nextSibling = nextRoot
				nextRoot = childHandle

			case child.isHollow() && child.secondParent == current:
				child.secondParent = Handle{}
				walk = Handle{}

			case child.isHollow():
				child.nextSibling = Handle{}
				child.secondParent = Handle{}

			default:
				h.coalesce(childHandle, child.rank, &rootsByRank)
			}
		}

		if !nextRoot.IsZero() {
			queue = append(queue, nextRoot)
		}

		h.arena.Remove(current)
	}

	var finalRoot Handle
	for _, candidate := range rootsByRank {
		if candidate.IsZero() {
			continue
		}

		if finalRoot.IsZero() {
			finalRoot = candidate
			continue
		}

		finalRoot = h.link(finalRoot, candidate)
	}

	h.root = finalRoot
}

// coalesce files a newly discovered living root into rootsByRank, ranked-
// linking away any prior occupant at the same rank until a free slot is
// found -- the same by-rank merge every rank-based heap implementation uses.
func (h *Heap[V, K]) coalesce(handle Handle, rank uint8, rootsByRank *[]Handle) Handle {
	r := int(rank)

	for r >= len(*rootsByRank) {
		*rootsByRank = append(*rootsByRank, Handle{})
	}

	for !(*rootsByRank)[r].IsZero() {
		other := (*rootsByRank)[r]
		(*rootsByRank)[r] = Handle{}

		handle = h.rankedLink(other, handle)

		node, ok := h.arena.Get(handle)
		debug.Assert(ok, "extractRebuild: ranked-linked handle %s missing from arena", handle)
		r = int(node.rank)

		for r >= len(*rootsByRank) {
			*rootsByRank = append(*rootsByRank, Handle{})
		}
	}

	(*rootsByRank)[r] = handle

	return handle
}
