package hollowheap

import (
	"github.com/gopherlabs/hollowheap/internal/debug"
	"github.com/gopherlabs/hollowheap/pkg/opt"
	"github.com/gopherlabs/hollowheap/pkg/slotmap"
)

// Handle identifies one node of a Heap. Delete/ChangeKey/ChangeItem
// recognize it until the node is freed by an extraction (Pop, or Delete of
// the root). A Delete of a non-root node or a non-root key-improvement
// leaves the node hollow: ChangeKey/ChangeItem then reject the handle, and
// Delete still accepts it.
type Handle = slotmap.Handle

// Heap is an addressable priority queue on the hollow heap algorithm.
//
// The zero Heap is not usable; construct one with New, NewMin, or NewMax.
type Heap[V, K any] struct {
	arena     *slotmap.SlotMap[node[V, K]]
	root      slotmap.Handle
	compare   func(K, K) bool
	deriveKey func(V) K
}

// IsEmpty reports whether the heap holds no items.
func (h *Heap[V, K]) IsEmpty() bool { return h.arena.Len() == 0 }

// Len returns the number of nodes in the arena: living items plus the
// hollow nodes (left by a non-root Delete or a non-root ChangeKey/
// ChangeItem) that no extraction has freed yet. It is therefore not the
// count of live items.
func (h *Heap[V, K]) Len() int { return h.arena.Len() }

// Push inserts item, deriving its key via the heap's configured
// derive-key function.
func (h *Heap[V, K]) Push(item V) Handle {
	return h.PushWithKey(item, h.deriveKey(item))
}

// PushWithKey inserts item with an explicit key, bypassing derive-key.
func (h *Heap[V, K]) PushWithKey(item V, key K) Handle {
	handle := h.arena.Insert(node[V, K]{key: key, item: opt.Some(item)})

	if h.root.IsZero() {
		h.root = handle
		return handle
	}

	h.root = h.link(h.root, handle)

	return handle
}

// Peek returns the root item, or None if the heap is empty.
func (h *Heap[V, K]) Peek() opt.Option[V] {
	if h.root.IsZero() {
		return opt.None[V]()
	}

	root, ok := h.arena.Get(h.root)
	debug.Assert(ok, "Peek: root handle %s not found in arena", h.root)

	return root.item
}

// ChangeKey improves the key of the item identified by handle to newKey.
//
// Preconditions: the heap must be non-empty, handle must be live, handle
// must not already identify a hollowed node, and newKey must be strictly
// better (under the heap's compare) than the item's current key. Violating
// any of these aborts via panic(*PreconditionError) -- these are programmer
// errors, not recoverable run-time conditions.
//
// Returns the handle the item is now addressed by: the same handle if it
// was the root (updated in place), or a fresh handle otherwise (the old
// handle becomes a hollow structural shell and is no longer usable with
// ChangeKey/ChangeItem, though it remains valid to pass to Delete).
func (h *Heap[V, K]) ChangeKey(handle Handle, newKey K) Handle {
	return h.update(handle, newKey, opt.None[V]())
}

// ChangeItem replaces the item identified by handle with newItem, deriving
// its key via the heap's derive-key function. See ChangeKey for
// preconditions and the handle-identity contract.
func (h *Heap[V, K]) ChangeItem(handle Handle, newItem V) Handle {
	return h.update(handle, h.deriveKey(newItem), opt.Some(newItem))
}

// update implements ChangeKey and ChangeItem.
func (h *Heap[V, K]) update(handle Handle, newKey K, newItem opt.Option[V]) Handle {
	if h.root.IsZero() {
		abort(ErrEmptyHeap, "ChangeKey/ChangeItem called on an empty heap")
	}

	current, ok := h.arena.Get(handle)
	if !ok {
		abort(ErrStaleHandle, "handle %s does not identify a live node", handle)
	}

	if current.isHollow() {
		abort(ErrNodeAlreadyHollow, "handle %s already identifies a hollowed node", handle)
	}

	if !h.compare(newKey, current.key) {
		abort(ErrKeyNotImproved, "new key is not strictly better than the current key for handle %s", handle)
	}

	if handle == h.root {
		current.key = newKey
		if newItem.IsSome() {
			current.item = newItem
		}

		return handle
	}

	rank := current.rank
	item := current.item.Unwrap()

	if newItem.IsSome() {
		item = newItem.Unwrap()
	}

	// Hollow the old node. current is only valid until the next Insert,
	// which PushWithKey performs next -- do not touch current again.
	current.item = opt.None[V]()

	newHandle := h.PushWithKey(item, newKey)

	newNode, ok := h.arena.Get(newHandle)
	debug.Assert(ok, "update: freshly pushed handle %s not found", newHandle)
	newNode.rank = saturatingSub2(rank)

	if newHandle != h.root {
		newNode.firstChild = handle

		old, ok := h.arena.Get(handle)
		debug.Assert(ok, "update: old handle %s vanished mid-update", handle)
		old.secondParent = newHandle
	}

	return newHandle
}

// Delete removes the item identified by handle.
//
// If handle does not identify the root, the node is hollowed in place (O(1))
// and the current root handle is returned. If handle identifies the root,
// this triggers the extract rebuild (see Pop). If handle is stale, Delete
// is a silent no-op, returning the current root unchanged.
func (h *Heap[V, K]) Delete(handle Handle) opt.Option[Handle] {
	if handle == h.root && !handle.IsZero() {
		h.extractRebuild()
		return h.currentRoot()
	}

	if n, ok := h.arena.Get(handle); ok {
		n.item = opt.None[V]()
		n.secondParent = Handle{}
	}

	return h.currentRoot()
}

// Pop removes and returns the root item, or None if the heap is empty.
func (h *Heap[V, K]) Pop() opt.Option[V] {
	if h.root.IsZero() {
		return opt.None[V]()
	}

	root, ok := h.arena.Get(h.root)
	debug.Assert(ok, "Pop: root handle %s not found in arena", h.root)

	item := root.item

	h.extractRebuild()

	return item
}

func (h *Heap[V, K]) currentRoot() opt.Option[Handle] {
	if h.root.IsZero() {
		return opt.None[Handle]()
	}

	return opt.Some(h.root)
}
