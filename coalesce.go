package stableid

import (
	"github.com/hupe1980/stableid/internal/queue"
)

// freeList walks the embedded free list from the head and returns every dead
// position in traversal order.
func (v *TombVec[T, I]) freeList() []I {
	max := sentinel[I]()
	acc := make([]I, 0, len(v.slots)-v.count)

	for cur := v.nextFree; cur != max; {
		s := v.slots[position(cur)]
		if s.alive {
			panic("stableid: live slot reached while walking the free list")
		}
		acc = append(acc, cur)
		cur = s.nextFree
	}
	return acc
}

// Coalesce eliminates every dead slot, leaving a dense [0, Len()) layout.
// Live payload is pulled down from the top of the storage into the lowest
// dead slots, so the number of relocations is minimal. onRelocate is invoked
// synchronously, exactly once per element that actually moved, with the
// handle it held before and after the move; use it to rewrite external
// references. It is never invoked for elements that stayed put. A nil
// onRelocate is allowed when no external references exist.
//
// Coalesce is a no-op when the free list is empty. Cost is O(d log d) for d
// dead slots; this is intended for occasional use, e.g. before serializing
// state, guided by UtilizationRatio.
func (v *TombVec[T, I]) Coalesce(onRelocate func(oldID, newID I)) {
	if position(v.nextFree) >= uint64(len(v.slots)) {
		// No dead slots at all; the no-trailing-dead invariant rules out
		// anything the loop below could find.
		return
	}

	relocated, removed := v.heapCoalesce(onRelocate)

	keep := len(v.slots) - removed
	clear(v.slots[keep:])
	v.slots = v.slots[:keep]
	v.nextFree = sentinel[I]()

	v.logger.Debug("coalesce completed",
		"relocated", relocated,
		"freed", removed,
		"len", v.count,
	)

	v.assertConsistent()
}

// heapCoalesce runs the two-cursor compaction. The forward side is a
// min-heap handing out dead positions in ascending order; the backward
// cursor scans from the top of the storage for live payload to pull down.
// Once the cursors meet, every remaining dead slot is part of a trailing
// suffix and needs no relocation. Returns the relocation count and the
// number of slots the caller must truncate.
//
// Only the d dead slots pass through the heap, so heap work is O(d log d);
// the backward cursor either relocates a live element or permanently retires
// a dead one per step, O(d) across the whole call.
func (v *TombVec[T, I]) heapCoalesce(onRelocate func(oldID, newID I)) (relocated, removed int) {
	h := queue.NewMin(v.freeList()...)
	removed = h.Len()

	max := sentinel[I]()
	back := len(v.slots) - 1

	for {
		target, ok := h.Pop()
		if !ok {
			return relocated, removed
		}

		for {
			if position(target) >= uint64(back) {
				return relocated, removed
			}
			if v.slots[back].alive {
				break
			}
			back--
		}

		v.slots[position(target)] = slot[T, I]{payload: v.slots[back].payload, alive: true}
		v.slots[back] = slot[T, I]{nextFree: max}
		relocated++

		if onRelocate != nil {
			onRelocate(idAt[I](back), target)
		}
	}
}
