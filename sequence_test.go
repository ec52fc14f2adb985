package stableid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	t.Run("FromZero", func(t *testing.T) {
		s := NewSequence[uint8]()
		for i := uint8(0); i < 3; i++ {
			id, err := s.Next()
			require.NoError(t, err)
			assert.Equal(t, i, id)
		}
	})

	t.Run("ContinueFrom", func(t *testing.T) {
		s := ContinueFrom[uint16](1234)
		assert.Equal(t, uint16(1234), s.Peek())

		for i := uint16(1234); i < 1237; i++ {
			id, err := s.Next()
			require.NoError(t, err)
			assert.Equal(t, i, id)
		}
		assert.Equal(t, uint16(1237), s.Peek())
	})

	t.Run("Overflow", func(t *testing.T) {
		s := ContinueFrom[uint8](254)

		id, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, uint8(254), id)

		// 255 is the sentinel and is never issued
		_, err = s.Next()
		var overflow *ErrCapacityOverflow
		assert.ErrorAs(t, err, &overflow)
	})

	t.Run("ZeroValueReady", func(t *testing.T) {
		var s Sequence[uint32]
		id, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, uint32(0), id)
	})
}
