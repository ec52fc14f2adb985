// Package queue provides a small value-based binary min-heap. It hands out
// free-list positions in ascending order during compaction.
package queue

import "cmp"

// Min is a binary min-heap over ordered values.
// Value-based storage for better cache locality and zero per-item allocations.
type Min[V cmp.Ordered] struct {
	items []V
}

// NewMin returns a heap seeded with items. The slice is copied.
func NewMin[V cmp.Ordered](items ...V) *Min[V] {
	h := &Min[V]{items: append([]V(nil), items...)}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h
}

// Len returns the number of queued values.
func (h *Min[V]) Len() int {
	return len(h.items)
}

// Push inserts a value while maintaining the heap invariant.
func (h *Min[V]) Push(v V) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Top returns the smallest value without removing it.
func (h *Min[V]) Top() (V, bool) {
	if len(h.items) == 0 {
		var zero V
		return zero, false
	}
	return h.items[0], true
}

// Pop removes and returns the smallest value while maintaining the heap
// invariant.
func (h *Min[V]) Pop() (V, bool) {
	n := len(h.items)
	if n == 0 {
		var zero V
		return zero, false
	}
	root := h.items[0]
	last := h.items[n-1]
	var zero V
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}
	return root, true
}

func (h *Min[V]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if h.items[i] >= h.items[p] {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Min[V]) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.items[r] < h.items[l] {
			best = r
		}
		if h.items[best] >= h.items[i] {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
