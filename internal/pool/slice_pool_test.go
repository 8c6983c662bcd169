package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint64Slice(t *testing.T) {
	t.Run("Exact length", func(t *testing.T) {
		slice, cleanup := GetUint64Slice(10)
		defer cleanup()

		require.Len(t, slice, 10)
	})

	t.Run("Zero length", func(t *testing.T) {
		slice, cleanup := GetUint64Slice(0)
		defer cleanup()

		require.Empty(t, slice)
	})

	t.Run("Reused slices are zeroed", func(t *testing.T) {
		slice, cleanup := GetUint64Slice(8)
		for i := range slice {
			slice[i] = ^uint64(0)
		}
		cleanup()

		slice, cleanup = GetUint64Slice(4)
		defer cleanup()

		for i, w := range slice {
			require.Zero(t, w, "index %d", i)
		}
	})
}

func TestGetByteSlice(t *testing.T) {
	slice, cleanup := GetByteSlice(64)
	defer cleanup()

	require.Empty(t, slice)
	require.GreaterOrEqual(t, cap(slice), 64)
}
