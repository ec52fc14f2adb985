package stableid

// findTrailingDead locates the longest dead suffix of slots. It returns the
// storage position where the suffix starts and the suffix length; ok is
// false when slots is empty or its last slot is alive.
func findTrailingDead[T any, I ID](slots []slot[T, I]) (start, count int, ok bool) {
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i].alive {
			break
		}
		start = i
		count++
	}
	if count == 0 {
		return 0, 0, false
	}
	return start, count, true
}

// reclaimTrailingDead restores the no-trailing-dead-slot invariant after a
// removal: every free-list node that falls inside the dead suffix is spliced
// out, then the suffix is truncated. O(k) for a suffix of length k.
func (v *TombVec[T, I]) reclaimTrailingDead() {
	if start, dead, ok := findTrailingDead(v.slots); ok {
		if dead == len(v.slots) {
			v.Clear()
			return
		}

		capacity := uint64(len(v.slots))
		suffix := uint64(start)

		// Linked-list retain. cursor scans the free list; retained is the
		// last node known to survive the truncation.
		cursor := v.nextFree
		var retained I
		haveRetained := false

		for {
			s := v.slots[position(cursor)]
			if s.alive {
				panic("stableid: live slot reached while walking the free list")
			}
			if position(s.nextFree) >= capacity {
				break
			}
			cursor = s.nextFree

			// Nodes inside the suffix are skipped; the next surviving node
			// gets linked past them.
			if position(cursor) >= suffix {
				continue
			}

			if haveRetained {
				v.slots[position(retained)].nextFree = cursor
			} else {
				// The head itself sat in the suffix; repoint it.
				v.nextFree = cursor
			}
			retained = cursor
			haveRetained = true
		}

		keep := len(v.slots) - dead
		clear(v.slots[keep:]) // release payload references held by the suffix
		v.slots = v.slots[:keep]

		switch {
		case v.count == 0:
			v.Clear()
		case haveRetained:
			// The surviving tail of the free list terminates the walk.
			v.slots[position(retained)].nextFree = sentinel[I]()
		default:
			// The entire free list sat in the suffix.
			v.nextFree = sentinel[I]()
		}

		v.logger.Debug("reclaimed trailing dead slots",
			"count", dead,
			"capacity", len(v.slots),
		)
	}

	// The head can still point past the truncated storage when the suffix
	// held the only dead slots and was consumed above.
	if position(v.nextFree) > uint64(len(v.slots)) {
		v.nextFree = sentinel[I]()
	}
}
