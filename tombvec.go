package stableid

import (
	"iter"
)

// TombVec is a tombstone-based vector: a dense slice of slots where removal
// leaves a dead marker instead of shifting elements, so every other handle
// stays valid. Dead slots are threaded into a singly linked free list (head
// in nextFree, terminated by the sentinel) and are reused by Alloc in LIFO
// order. A dead suffix never survives an operation: Remove truncates
// trailing dead slots eagerly, and Coalesce eliminates interior ones on
// demand.
//
// Handles issued by a TombVec keyed by I range over [0, sentinel); the
// sentinel itself terminates the free list.
type TombVec[T any, I ID] struct {
	slots    []slot[T, I]
	nextFree I
	count    int

	logger *Logger
	checks bool
}

// New creates an empty TombVec.
func New[T any, I ID](optFns ...Option) *TombVec[T, I] {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	v := &TombVec[T, I]{
		nextFree: sentinel[I](),
		logger:   o.logger,
		checks:   o.checks,
	}
	if o.capacity > 0 {
		v.slots = make([]slot[T, I], 0, o.capacity)
	}
	return v
}

// NewPopulated creates a TombVec holding n copies of value at handles
// 0..n-1. It fails when n exceeds the addressable range of I.
func NewPopulated[T any, I ID](value T, n int, optFns ...Option) (*TombVec[T, I], error) {
	if uint64(n) > position(sentinel[I]()) {
		return nil, &ErrCapacityOverflow{Capacity: uint64(n)}
	}

	v := New[T, I](optFns...)
	v.slots = make([]slot[T, I], n)
	for i := range v.slots {
		v.slots[i] = slot[T, I]{payload: value, alive: true}
	}
	v.count = n

	v.assertConsistent()
	return v, nil
}

// Len returns the number of live elements.
func (v *TombVec[T, I]) Len() int {
	return v.count
}

// IsEmpty reports whether the collection holds no live elements.
func (v *TombVec[T, I]) IsEmpty() bool {
	return v.count == 0
}

// Capacity returns the length of the backing storage, dead slots included.
// Len() <= Capacity() always holds.
func (v *TombVec[T, I]) Capacity() int {
	return len(v.slots)
}

// UtilizationRatio is live elements over backing-storage length, defined as
// 1.0 for an empty backing store. Layered collections use it to decide when
// a Coalesce pays off.
func (v *TombVec[T, I]) UtilizationRatio() float64 {
	if len(v.slots) == 0 {
		return 1
	}
	return float64(v.count) / float64(len(v.slots))
}

// Clear drops all storage and resets to the empty state.
func (v *TombVec[T, I]) Clear() {
	v.slots = nil
	v.count = 0
	v.nextFree = sentinel[I]()
}

// Alloc stores value and returns its handle. The head of the free list is
// reused when one exists; otherwise a slot is appended. O(1).
//
// Alloc fails with *ErrCapacityOverflow once the backing storage would need
// an index that the handle type reserves as the sentinel: a TombVec keyed by
// uint8 holds at most 255 elements.
func (v *TombVec[T, I]) Alloc(value T) (I, error) {
	if head := position(v.nextFree); head < uint64(len(v.slots)) {
		s := &v.slots[head]
		if s.alive {
			panic("stableid: free-list head points at a live slot")
		}

		id := v.nextFree
		v.nextFree = s.nextFree
		*s = slot[T, I]{payload: value, alive: true}
		v.count++

		v.assertConsistent()
		return id, nil
	}

	pos := len(v.slots)
	if !addressable[I](pos) {
		return sentinel[I](), &ErrCapacityOverflow{Capacity: uint64(pos)}
	}

	v.slots = append(v.slots, slot[T, I]{payload: value, alive: true})
	v.nextFree = sentinel[I]()
	v.count++

	v.assertConsistent()
	return idAt[I](pos), nil
}

// Get returns the payload at id. The boolean is false when id is out of
// bounds or the slot is dead; absence is a normal outcome, not an error.
func (v *TombVec[T, I]) Get(id I) (T, bool) {
	if p := position(id); p < uint64(len(v.slots)) && v.slots[p].alive {
		return v.slots[p].payload, true
	}
	var zero T
	return zero, false
}

// Ref returns a pointer to the payload at id for in-place mutation. The
// pointer is valid until the next mutating operation on the TombVec.
func (v *TombVec[T, I]) Ref(id I) (*T, bool) {
	if p := position(id); p < uint64(len(v.slots)) && v.slots[p].alive {
		return &v.slots[p].payload, true
	}
	return nil, false
}

// Remove deletes the element at id and returns its payload. The slot is
// pushed onto the free list and any dead suffix this exposes is truncated.
//
// Remove fails with ErrEmptyContainer, *ErrInvalidIndex or *ErrDoubleRemove;
// all preconditions are checked before any state changes.
func (v *TombVec[T, I]) Remove(id I) (T, error) {
	var zero T

	if v.count == 0 {
		return zero, ErrEmptyContainer
	}
	p := position(id)
	if p >= uint64(len(v.slots)) {
		return zero, &ErrInvalidIndex{Index: p, Capacity: len(v.slots)}
	}
	s := &v.slots[p]
	if !s.alive {
		return zero, &ErrDoubleRemove{Index: p}
	}

	value := s.payload
	*s = slot[T, I]{nextFree: v.nextFree}
	v.nextFree = id
	v.count--

	v.reclaimTrailingDead()

	v.assertConsistent()
	return value, nil
}

// Values returns a lazy, restartable sequence over live payloads in
// ascending storage order. Storage order is not allocation order once
// handles have been reused.
func (v *TombVec[T, I]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.slots {
			if v.slots[i].alive && !yield(v.slots[i].payload) {
				return
			}
		}
	}
}

// All returns a lazy, restartable sequence of (handle, payload) pairs over
// live slots in ascending storage order.
func (v *TombVec[T, I]) All() iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for i := range v.slots {
			if v.slots[i].alive && !yield(idAt[I](i), v.slots[i].payload) {
				return
			}
		}
	}
}

// Refs is All with payload pointers, for in-place mutation during
// iteration. The pointers are valid until the next mutating operation.
func (v *TombVec[T, I]) Refs() iter.Seq2[I, *T] {
	return func(yield func(I, *T) bool) {
		for i := range v.slots {
			if v.slots[i].alive && !yield(idAt[I](i), &v.slots[i].payload) {
				return
			}
		}
	}
}

func (v *TombVec[T, I]) assertConsistent() {
	if !v.checks {
		return
	}
	if err := v.Verify(); err != nil {
		panic("stableid: " + err.Error())
	}
}
