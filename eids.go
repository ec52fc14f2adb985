package stableid

import (
	"github.com/google/btree"
)

const freeSetDegree = 32

// Eids issues recoverable entity ids: a counter paired with an ordered set
// of freed ids. Claim prefers the smallest freed id before growing the
// counter, so the issued id range stays as tight as the workload allows.
//
// Eids manages ids only; pair it with your own storage when TombVec's dense
// slice does not fit.
type Eids[I ID] struct {
	freed *btree.BTreeG[I]
	next  I
}

// NewEids returns an Eids whose first id is zero.
func NewEids[I ID]() *Eids[I] {
	return &Eids[I]{
		freed: btree.NewG(freeSetDegree, func(a, b I) bool { return a < b }),
	}
}

// InUse returns the number of ids currently claimed.
func (e *Eids[I]) InUse() int {
	return int(position(e.next)) - e.freed.Len()
}

// Claim issues an id: the smallest freed one when any exist, the next
// counter value otherwise. It fails with *ErrCapacityOverflow once the
// counter reaches the maximum value of I and the free set is empty.
func (e *Eids[I]) Claim() (I, error) {
	if id, ok := e.freed.DeleteMin(); ok {
		return id, nil
	}
	if e.next == sentinel[I]() {
		return e.next, &ErrCapacityOverflow{Capacity: position(e.next)}
	}
	id := e.next
	e.next++
	return id, nil
}

// Unclaim returns id to the free set for later reuse. It fails with
// *ErrInvalidIndex for an id that was never issued and with
// *ErrDoubleRemove for an id freed twice.
func (e *Eids[I]) Unclaim(id I) error {
	if id >= e.next {
		return &ErrInvalidIndex{Index: position(id), Capacity: int(position(e.next))}
	}
	if _, present := e.freed.ReplaceOrInsert(id); present {
		return &ErrDoubleRemove{Index: position(id)}
	}
	return nil
}

// Coalesce drains the free set by shrinking the counter instead of moving
// payload: the largest freed id is matched against the predecessor of the
// counter, and when the two differ, f(oldID, newID) asks the caller to
// rename the entity at oldID to newID. Matches where the freed id already
// sits at the top of the range produce no callback.
//
// After Coalesce the issued range is exactly [0, InUse()).
func (e *Eids[I]) Coalesce(f func(oldID, newID I)) {
	for {
		freed, ok := e.freed.DeleteMax()
		if !ok {
			return
		}
		e.next--
		if e.next != freed {
			f(e.next, freed)
		}
	}
}
