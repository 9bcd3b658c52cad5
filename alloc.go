package lzarena

import "unsafe"

// Alloc returns a zeroed *T backed by the arena, aligned for T.
// The pointer stays valid until the next Reset or Close on the arena.
//
// With an OS-backed arena the memory is invisible to the garbage collector:
// T must not contain pointers into GC-managed memory, or those referents can
// be collected while still referenced. Pointer-free types are always safe.
func Alloc[T any](a *Arena) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T), nil
	}
	b, err := a.AllocZeroed(size, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// AllocSlice returns a zeroed []T of length n backed by the arena, aligned
// for T. Returns nil for n <= 0.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return make([]T, n), nil
	}
	b, err := a.AllocZeroed(elemSize*n, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}
