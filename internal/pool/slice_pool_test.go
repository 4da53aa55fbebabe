package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetIntSlice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetIntSlice(100)
		defer cleanup()

		require.Equal(t, 100, len(slice))
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("zero size is valid", func(t *testing.T) {
		slice, cleanup := GetIntSlice(0)
		defer cleanup()

		require.Empty(t, slice)
	})

	t.Run("reuses pooled slice when capacity sufficient", func(t *testing.T) {
		slice1, cleanup1 := GetIntSlice(50)
		ptr1 := &slice1[0]
		cleanup1()

		slice2, cleanup2 := GetIntSlice(50)
		defer cleanup2()
		ptr2 := &slice2[0]

		require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetIntSlice(10)
		cleanup1()

		slice2, cleanup2 := GetIntSlice(1000)
		defer cleanup2()

		require.Equal(t, 1000, len(slice2))
		require.GreaterOrEqual(t, cap(slice2), 1000)
	})

	t.Run("cleanup returns slice to pool", func(t *testing.T) {
		slice, cleanup := GetIntSlice(100)
		require.NotNil(t, slice)

		// Should not panic
		cleanup()
	})
}

func TestGetIntSlice_Concurrency(t *testing.T) {
	const goroutines = 100
	done := make(chan bool, goroutines)

	for range goroutines {
		go func() {
			offsets, cleanup := GetIntSlice(64)
			defer cleanup()

			// Write record-offset-like pairs to ensure the slice is usable.
			for j := range offsets {
				offsets[j] = j * 4
			}

			done <- true
		}()
	}

	for range goroutines {
		<-done
	}
}
