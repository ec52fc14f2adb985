package stableid

// slot is one storage cell: either live payload or a dead marker carrying
// the next link of the embedded free list. The link is a plain index into
// the same backing slice, never a pointer.
type slot[T any, I ID] struct {
	payload  T
	nextFree I
	alive    bool
}
