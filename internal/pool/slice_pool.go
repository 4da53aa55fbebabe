package pool

import "sync"

// Int slice pool for reuse of record offset indexes built by readers.
var intSlicePool = sync.Pool{
	New: func() any { return &[]int{} },
}

// GetIntSlice retrieves and resizes an int slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []int: A slice with length equal to size
//   - func(): Cleanup function that must be called to return the slice to the pool
//
// Example:
//
//	offsets, cleanup := pool.GetIntSlice(2 * count)
//	defer cleanup()
//	// Use offsets slice...
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { intSlicePool.Put(ptr) }
}
