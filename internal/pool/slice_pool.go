package pool

import "sync"

var (
	int64SlicePool = sync.Pool{
		New: func() any { return &[]int64{} },
	}
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
)

// GetInt64Slice returns a pooled int64 slice of length size and the cleanup
// function returning it to the pool.
//
// Example:
//
//	positions, cleanup := pool.GetInt64Slice(wellCount)
//	defer cleanup()
func GetInt64Slice(size int) ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	*ptr = resize(*ptr, size)

	return *ptr, func() { int64SlicePool.Put(ptr) }
}

// GetFloat64Slice returns a pooled float64 slice of length size and the
// cleanup function returning it to the pool.
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	*ptr = resize(*ptr, size)

	return *ptr, func() { float64SlicePool.Put(ptr) }
}

func resize[T any](s []T, size int) []T {
	if cap(s) < size {
		return make([]T, size)
	}

	return s[:size]
}
