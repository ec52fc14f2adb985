package stableid_test

import (
	"fmt"

	"github.com/hupe1980/stableid"
)

func ExampleTombVec_Coalesce() {
	vec := stableid.New[string, uint8]()

	ids := make([]uint8, 0, 6)
	for _, name := range []string{"ant", "bee", "cat", "dog", "eel", "fox"} {
		id, _ := vec.Alloc(name)
		ids = append(ids, id)
	}

	// punch holes in the middle; every other handle stays valid
	vec.Remove(ids[1])
	vec.Remove(ids[3])

	refs := map[string]uint8{}
	for id, name := range vec.All() {
		refs[name] = id
	}

	// compact and rewrite the external references that moved
	vec.Coalesce(func(oldID, newID uint8) {
		for name, id := range refs {
			if id == oldID {
				refs[name] = newID
			}
		}
	})

	fmt.Println("len:", vec.Len(), "capacity:", vec.Capacity())
	for name, id := range refs {
		got, _ := vec.Get(id)
		if got != name {
			fmt.Println("dangling reference for", name)
		}
	}
	// Output:
	// len: 4 capacity: 4
}

func ExampleEids_Coalesce() {
	gen := stableid.NewEids[uint8]()

	for i := 0; i < 6; i++ {
		gen.Claim()
	}
	gen.Unclaim(1)
	gen.Unclaim(5)

	gen.Coalesce(func(oldID, newID uint8) {
		fmt.Printf("rename %d -> %d\n", oldID, newID)
	})
	fmt.Println("in use:", gen.InUse())
	// Output:
	// rename 4 -> 1
	// in use: 4
}
