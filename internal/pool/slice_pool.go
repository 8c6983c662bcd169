package pool

import "sync"

// Slice pools for efficient reuse of scratch buffers. Array encoding builds a
// word slice per call before handing it to the packer; pooling the slice
// avoids one allocation per encode.
var (
	uint64SlicePool = sync.Pool{
		New: func() any { return &[]uint64{} },
	}
	byteSlicePool = sync.Pool{
		New: func() any { return &[]byte{} },
	}
)

// GetUint64Slice retrieves a uint64 slice of the given length from the pool,
// zeroed. The caller must call the returned cleanup function, typically with
// defer, once the slice is no longer referenced.
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		for i := range slice {
			slice[i] = 0
		}
		*ptr = slice
	}

	return slice, func() { uint64SlicePool.Put(ptr) }
}

// GetByteSlice retrieves a byte slice with zero length and at least the given
// capacity from the pool. The caller must call the returned cleanup function
// once the slice is no longer referenced.
func GetByteSlice(capacity int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < capacity {
		slice = make([]byte, 0, capacity)
		*ptr = slice
	}

	return slice, func() { byteSlicePool.Put(ptr) }
}
