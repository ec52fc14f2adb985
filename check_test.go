package stableid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCleanStates(t *testing.T) {
	vec := New[int, uint8]()
	require.NoError(t, vec.Verify())

	for i := 0; i < 20; i++ {
		_, err := vec.Alloc(i)
		require.NoError(t, err)
	}
	require.NoError(t, vec.Verify())

	for _, target := range []uint8{3, 11, 7, 19, 18} {
		_, err := vec.Remove(target)
		require.NoError(t, err)
		require.NoError(t, vec.Verify())
	}

	vec.Coalesce(nil)
	require.NoError(t, vec.Verify())
}

func TestVerifyDetectsCorruption(t *testing.T) {
	// Corruption is staged by hand; none of these states are reachable
	// through the public API.
	newBroken := func() *TombVec[int, uint8] {
		vec := New[int, uint8]()
		for i := 0; i < 6; i++ {
			if _, err := vec.Alloc(i); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := vec.Remove(2); err != nil {
			t.Fatal(err)
		}
		return vec
	}

	t.Run("TrailingDeadSlot", func(t *testing.T) {
		vec := newBroken()
		vec.slots[len(vec.slots)-1].alive = false
		assert.Error(t, vec.Verify())
	})

	t.Run("CountMismatch", func(t *testing.T) {
		vec := newBroken()
		vec.count++
		assert.Error(t, vec.Verify())
	})

	t.Run("HeadOutOfBounds", func(t *testing.T) {
		vec := newBroken()
		vec.nextFree = uint8(len(vec.slots))
		assert.Error(t, vec.Verify())
	})

	t.Run("FreeListVisitsLiveSlot", func(t *testing.T) {
		vec := newBroken()
		vec.nextFree = 1 // slot 1 is alive
		assert.Error(t, vec.Verify())
	})

	t.Run("DeadSlotMissingFromFreeList", func(t *testing.T) {
		vec := newBroken()
		vec.nextFree = sentinel[uint8]()
		assert.Error(t, vec.Verify())
	})

	t.Run("FreeListCycle", func(t *testing.T) {
		vec := newBroken()
		if _, err := vec.Remove(4); err != nil {
			t.Fatal(err)
		}
		// 4 -> 2 -> 4 -> ...
		vec.slots[2].nextFree = 4
		assert.Error(t, vec.Verify())
	})

	t.Run("EmptyWithDanglingHead", func(t *testing.T) {
		vec := New[int, uint8]()
		vec.nextFree = 0
		assert.Error(t, vec.Verify())
	})
}

func TestConsistencyChecksUnderChurn(t *testing.T) {
	// WithConsistencyChecks re-verifies after every operation; any drift
	// between the free list and the slot states panics immediately.
	rng := rand.New(rand.NewSource(7))
	vec := newChecked[int, uint8]()

	live := map[uint8]struct{}{}
	for i := 0; i < 5000; i++ {
		switch {
		case len(live) > 0 && rng.Intn(5) == 0:
			for id := range live {
				_, err := vec.Remove(id)
				require.NoError(t, err)
				delete(live, id)
				break
			}
		case rng.Intn(97) == 0:
			vec.Coalesce(func(oldID, newID uint8) {
				delete(live, oldID)
				live[newID] = struct{}{}
			})
		default:
			id, err := vec.Alloc(i)
			if err != nil {
				// uint8 space exhausted; churn continues via removals
				continue
			}
			live[id] = struct{}{}
		}
	}

	assert.Equal(t, len(live), vec.Len())
	require.NoError(t, vec.Verify())
}
