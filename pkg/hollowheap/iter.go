package hollowheap

import "iter"

// Drain returns an iterator yielding every remaining item in extract order
// (the same order repeated Pop calls would produce), consuming the heap as
// it goes. The sequence is finite and not restartable: once a Drain loop
// breaks early, the items it never reached stay in the heap; once it runs to
// completion, the heap is empty.
func (h *Heap[V, K]) Drain() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			item := h.Pop()
			if item.IsNone() {
				return
			}

			if !yield(item.Unwrap()) {
				return
			}
		}
	}
}
