package stableid

// Sequence is a monotonic id counter. Ids start at zero and are never
// recycled; use Eids when freed ids should be reclaimable.
//
// The zero Sequence is ready to use.
type Sequence[I ID] struct {
	counter I
}

// NewSequence returns a Sequence whose first id is zero.
func NewSequence[I ID]() *Sequence[I] {
	return &Sequence[I]{}
}

// ContinueFrom returns a Sequence whose next id is start. Useful when
// resuming from previously issued ids.
func ContinueFrom[I ID](start I) *Sequence[I] {
	return &Sequence[I]{counter: start}
}

// Next issues the next id. It fails with *ErrCapacityOverflow once the
// counter reaches the maximum value of I.
func (s *Sequence[I]) Next() (I, error) {
	if s.counter == sentinel[I]() {
		return s.counter, &ErrCapacityOverflow{Capacity: position(s.counter)}
	}
	id := s.counter
	s.counter++
	return id, nil
}

// Peek returns the id Next would issue, without issuing it.
func (s *Sequence[I]) Peek() I {
	return s.counter
}
