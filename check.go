package stableid

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Verify re-derives the dead-slot set two independent ways — a linear scan
// of the backing storage and a walk of the embedded free list — and compares
// them, along with the live count, the trailing-alive invariant and the head
// link. A non-nil error means a bug in this package, not a caller mistake.
//
// Verify is O(capacity). It runs automatically after every mutating
// operation when the collection was built WithConsistencyChecks(true).
func (v *TombVec[T, I]) Verify() error {
	max := sentinel[I]()

	if v.count == 0 {
		if v.nextFree != max {
			return fmt.Errorf("empty container with free-list head %d", position(v.nextFree))
		}
		if len(v.slots) != 0 {
			return fmt.Errorf("empty container holds %d slots", len(v.slots))
		}
		return nil
	}

	if !v.slots[len(v.slots)-1].alive {
		return fmt.Errorf("trailing slot is dead at capacity %d", len(v.slots))
	}
	if v.nextFree != max && position(v.nextFree) >= uint64(len(v.slots)) {
		return fmt.Errorf("free-list head %d out of bounds at capacity %d", position(v.nextFree), len(v.slots))
	}

	scanned := roaring64.New()
	live := 0
	for i := range v.slots {
		if v.slots[i].alive {
			live++
		} else {
			scanned.Add(uint64(i))
		}
	}
	if live != v.count {
		return fmt.Errorf("count is %d but %d slots are live", v.count, live)
	}

	walked := roaring64.New()
	for cur := v.nextFree; cur != max; {
		p := position(cur)
		if p >= uint64(len(v.slots)) {
			return fmt.Errorf("free list leaves storage at %d", p)
		}
		if v.slots[p].alive {
			return fmt.Errorf("free list visits live slot %d", p)
		}
		if walked.Contains(p) {
			return fmt.Errorf("free list visits slot %d twice", p)
		}
		walked.Add(p)
		cur = v.slots[p].nextFree
	}

	if !scanned.Equals(walked) {
		return fmt.Errorf("dead-slot sets diverge: scanned %v, free list %v",
			scanned.ToArray(), walked.ToArray())
	}
	return nil
}
