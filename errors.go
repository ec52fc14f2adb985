package stableid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContainer is returned when Remove is called on an empty
	// collection.
	ErrEmptyContainer = errors.New("remove from an empty container")
)

// ErrInvalidIndex indicates a handle outside the bounds of the backing
// storage.
type ErrInvalidIndex struct {
	Index    uint64
	Capacity int
}

func (e *ErrInvalidIndex) Error() string {
	return fmt.Sprintf("invalid index %d: capacity is %d", e.Index, e.Capacity)
}

// ErrDoubleRemove indicates a handle whose slot is already dead. The first
// removal invalidated the handle; a second removal is a caller bug.
type ErrDoubleRemove struct {
	Index uint64
}

func (e *ErrDoubleRemove) Error() string {
	return fmt.Sprintf("index %d was already removed", e.Index)
}

// ErrCapacityOverflow indicates an allocation that would require an index
// beyond the representable range of the handle type.
type ErrCapacityOverflow struct {
	Capacity uint64
}

func (e *ErrCapacityOverflow) Error() string {
	return fmt.Sprintf("capacity overflow: %d slots exhaust the handle type", e.Capacity)
}
