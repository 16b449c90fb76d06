package hollowheap

import (
	"cmp"

	"github.com/gopherlabs/hollowheap/pkg/slotmap"
)

// config collects the options passed to New before the Heap is built.
type config[V, K any] struct {
	compare   func(K, K) bool
	deriveKey func(V) K
	capacity  int
}

// Option configures a Heap at construction time.
type Option[V, K any] func(*config[V, K])

// WithCompare sets the strict ordering predicate: compare(x, y) reports
// whether x is "better" than y (less-than for a min-heap, greater-than for
// a max-heap).
func WithCompare[V, K any](compare func(K, K) bool) Option[V, K] {
	return func(c *config[V, K]) { c.compare = compare }
}

// WithDeriveKey sets the function mapping an item to the key it is ordered
// by.
func WithDeriveKey[V, K any](derive func(V) K) Option[V, K] {
	return func(c *config[V, K]) { c.deriveKey = derive }
}

// WithCapacity reserves storage for n nodes up front.
func WithCapacity[V, K any](n int) Option[V, K] {
	return func(c *config[V, K]) { c.capacity = n }
}

// New constructs an empty Heap. Both WithCompare and WithDeriveKey must be
// supplied, whatever V and K are -- there is no sound default to fall back
// on across two independent type parameters -- and New aborts with
// ErrMissingConfig if either is missing. Callers with V == K can use NewMin
// or NewMax instead, which supply both.
func New[V, K any](opts ...Option[V, K]) *Heap[V, K] {
	var cfg config[V, K]
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.compare == nil || cfg.deriveKey == nil {
		abort(ErrMissingConfig, "New[%T, %T] requires WithCompare and WithDeriveKey", *new(V), *new(K))
	}

	h := &Heap[V, K]{
		arena:     slotmap.New[node[V, K]](),
		compare:   cfg.compare,
		deriveKey: cfg.deriveKey,
	}

	if cfg.capacity > 0 {
		h.arena.Reserve(cfg.capacity)
	}

	return h
}

// NewMin is the min-heap shortcut: compare is "<", derive-key is identity.
func NewMin[K cmp.Ordered](opts ...Option[K, K]) *Heap[K, K] {
	defaults := []Option[K, K]{
		WithCompare[K, K](func(a, b K) bool { return a < b }),
		WithDeriveKey[K, K](identity[K]),
	}

	return New(append(defaults, opts...)...)
}

// NewMax is the max-heap shortcut: compare is ">", derive-key is identity.
func NewMax[K cmp.Ordered](opts ...Option[K, K]) *Heap[K, K] {
	defaults := []Option[K, K]{
		WithCompare[K, K](func(a, b K) bool { return a > b }),
		WithDeriveKey[K, K](identity[K]),
	}

	return New(append(defaults, opts...)...)
}

func identity[K any](k K) K { return k }
