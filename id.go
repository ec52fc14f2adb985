package stableid

// ID is the constraint for handle types. Any unsigned integer type works,
// including named types such as `type NodeID uint16`.
//
// The maximum value of the type is reserved: it terminates the embedded free
// list and is therefore never issued as a handle.
type ID interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// sentinel returns the maximum value of I, the "no free slot" marker.
func sentinel[I ID]() I {
	var zero I
	return ^zero
}

// position converts a handle to its raw storage position. Widening to uint64
// keeps comparisons against slice lengths well defined even when the handle
// is the sentinel.
func position[I ID](id I) uint64 {
	return uint64(id)
}

// idAt converts a raw storage position back to a handle. The caller must
// have checked that pos is below the sentinel of I.
func idAt[I ID](pos int) I {
	return I(pos)
}

// addressable reports whether pos is representable by I below the sentinel.
func addressable[I ID](pos int) bool {
	return uint64(pos) < position(sentinel[I]())
}
