// Package stableid provides index-stable, removable storage and the id
// generators that go with it.
//
// The package solves one recurring problem: you want to keep entities in a
// dense array and hand out small-integer handles, removal must not invalidate
// the handles of unrelated entities, and after enough churn you want to
// compact the storage back to a dense layout while being told exactly which
// handles moved.
//
// # Types
//
//	TombVec   dense storage  — tombstone-based vector with an embedded free
//	          list and on-demand compaction. The load-bearing type.
//	Eids      id-only        — counter plus an ordered set of freed ids;
//	          compacts by shrinking the counter instead of moving payload.
//	Sequence  id-only        — monotonic counter, ids are never recycled.
//	Entities  sparse storage — hash map keyed by Sequence ids.
//
// # Quick Start
//
//	vec := stableid.New[string, uint16]()
//	id, _ := vec.Alloc("alpha")
//
//	vec.Remove(id) // other handles stay valid
//
//	vec.Coalesce(func(oldID, newID uint16) {
//	    // rewrite every external reference to oldID
//	})
//
// Handles are plain unsigned integers (any type satisfying the ID
// constraint). The maximum value of the handle type is reserved as the
// free-list terminator, so a TombVec keyed by uint8 addresses at most 255
// slots.
//
// # Handle Reuse
//
// A removed handle is recycled by a later Alloc and the reused handle is
// bit-identical to the old one. There is no generation tag; callers that
// need stale-handle detection must layer it on top.
//
// # Concurrency
//
// All types are single-threaded. Callers that share an instance across
// goroutines must serialize access externally.
package stableid
