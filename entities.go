package stableid

import (
	"iter"
	"maps"
)

// Entities is a sparse collection: a hash map keyed by ids from a Sequence.
// Handles are stable and never recycled, holes in the id range cost nothing,
// and iteration order is unspecified.
//
// Use TombVec instead when the data is dense and cache locality matters.
type Entities[T any, I ID] struct {
	data map[I]T
	seq  Sequence[I]
}

// NewEntities creates an empty Entities collection.
func NewEntities[T any, I ID](optFns ...Option) *Entities[T, I] {
	o := options{}
	for _, fn := range optFns {
		fn(&o)
	}
	return &Entities[T, I]{
		data: make(map[I]T, o.capacity),
	}
}

// Len returns the number of stored elements.
func (e *Entities[T, I]) Len() int {
	return len(e.data)
}

// IsEmpty reports whether the collection holds no elements.
func (e *Entities[T, I]) IsEmpty() bool {
	return len(e.data) == 0
}

// Alloc stores value under a freshly issued id and returns the id. It fails
// with *ErrCapacityOverflow once the id space of I is exhausted.
func (e *Entities[T, I]) Alloc(value T) (I, error) {
	id, err := e.seq.Next()
	if err != nil {
		return id, err
	}
	e.data[id] = value
	return id, nil
}

// Get returns the payload at id; the boolean is false when the id holds
// nothing.
func (e *Entities[T, I]) Get(id I) (T, bool) {
	value, ok := e.data[id]
	return value, ok
}

// Update applies fn to the payload at id and stores the result back,
// reporting whether id held a value. Map values are not addressable, so this
// is the in-place mutation surface; fn runs on a copy that is written back
// when it returns.
func (e *Entities[T, I]) Update(id I, fn func(*T)) bool {
	value, ok := e.data[id]
	if !ok {
		return false
	}
	fn(&value)
	e.data[id] = value
	return true
}

// Remove deletes the element at id and returns its payload. It fails with
// *ErrInvalidIndex when nothing is stored under id.
func (e *Entities[T, I]) Remove(id I) (T, error) {
	value, ok := e.data[id]
	if !ok {
		return value, &ErrInvalidIndex{Index: position(id), Capacity: len(e.data)}
	}
	delete(e.data, id)
	return value, nil
}

// All returns a sequence of (id, payload) pairs in unspecified order.
func (e *Entities[T, I]) All() iter.Seq2[I, T] {
	return maps.All(e.data)
}
