// Package hollowheap implements an addressable priority queue on the hollow
// heap algorithm (Hansen, Kaplan, Tarjan, Zwick, 2015).
//
// A Heap maps externally supplied items to an internal ordering by a key
// derived from each item. Beyond the usual Push/Peek/Pop, it supports
// improving an item's key in amortized O(1) via ChangeKey/ChangeItem, and
// deleting an arbitrary item by a stable Handle, via Delete.
//
// The structure is a rooted DAG, not a tree: a node may have up to two
// parents. Improving a key never moves or relinks the existing node.
// Instead the old node is made hollow -- it keeps its structural links but
// loses its item -- and a fresh node is inserted and stitched in as a new
// parent of the hollowed node. Hollow nodes accumulate and are only
// garbage-collected lazily, during the next extraction of the top item.
//
// Heap is single-owner and non-concurrent: no operation blocks, suspends,
// or accepts a context.Context, and mutating it from more than one goroutine
// at a time is not supported.
package hollowheap
