package lzarena

import (
	"fmt"

	"github.com/byteguy8/lzarena/internal/mmap"
)

// PageSource supplies the raw backing buffers behind every region. The arena
// routes all buffer traffic through its source, so supplying a custom
// implementation redirects the underlying memory (to instrumented, pooled or
// pre-faulted storage) without touching Arena or Region logic.
//
// Implementations do not need to be goroutine-safe; an arena calls its source
// from whatever goroutine the arena itself is used on.
type PageSource interface {
	// Acquire returns a zero-filled buffer of exactly size bytes.
	Acquire(size int) ([]byte, error)

	// Resize grows or shrinks an acquired buffer, preserving its contents
	// up to the smaller of the two sizes. The buffer may move; callers must
	// use the returned slice and forget buf. The arena never resizes region
	// buffers in place, but Resize is part of the source contract so custom
	// sources can be used standalone.
	Resize(buf []byte, newSize int) ([]byte, error)

	// Release returns a buffer to wherever Acquire got it from. It must use
	// the same mechanism the buffer was acquired with.
	Release(buf []byte) error
}

// Backend selects one of the built-in backing-store strategies.
type Backend int

const (
	// BackendMmap acquires buffers via anonymous memory mapping
	// (mmap on Unix, VirtualAlloc with immediate commit on Windows).
	// This is the default.
	BackendMmap Backend = iota

	// BackendHeap acquires buffers from the Go heap. Buffers are released
	// by dropping them for the garbage collector to reclaim.
	BackendHeap

	// BackendReserve reserves address space first and commits it before
	// handing the buffer out, so a stray access to anything beyond an
	// acquired buffer faults instead of silently touching memory.
	BackendReserve
)

func (b Backend) String() string {
	switch b {
	case BackendMmap:
		return "mmap"
	case BackendHeap:
		return "heap"
	case BackendReserve:
		return "reserve"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// NewSource returns the built-in PageSource for the given backend.
// Exactly one strategy backs every source; an unrecognized selector is a
// construction-time error, never a silent fallback.
func NewSource(backend Backend) (PageSource, error) {
	switch backend {
	case BackendMmap:
		return mapSource{}, nil
	case BackendHeap:
		return heapSource{}, nil
	case BackendReserve:
		return reserveSource{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(backend))
	}
}

// heapSource acquires buffers from the Go heap.
type heapSource struct{}

func (heapSource) Acquire(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return make([]byte, size), nil
}

func (heapSource) Resize(buf []byte, newSize int) ([]byte, error) {
	if newSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, newSize)
	}
	if newSize <= len(buf) {
		return buf[:newSize], nil
	}
	next := make([]byte, newSize)
	copy(next, buf)
	return next, nil
}

func (heapSource) Release(buf []byte) error {
	// The garbage collector reclaims the buffer once the arena drops it.
	return nil
}

// mapSource acquires buffers via anonymous memory mapping.
type mapSource struct{}

func (mapSource) Acquire(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return mmap.MapAnon(size)
}

func (mapSource) Resize(buf []byte, newSize int) ([]byte, error) {
	if newSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, newSize)
	}
	return mmap.Remap(buf, newSize)
}

func (mapSource) Release(buf []byte) error {
	return mmap.Unmap(buf)
}

// reserveSource acquires buffers by reserving address space and committing it.
type reserveSource struct{}

func (reserveSource) Acquire(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	buf, err := mmap.Reserve(size)
	if err != nil {
		return nil, err
	}
	if err := mmap.Commit(buf); err != nil {
		_ = mmap.Unmap(buf)
		return nil, err
	}
	return buf, nil
}

func (s reserveSource) Resize(buf []byte, newSize int) ([]byte, error) {
	if newSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, newSize)
	}
	if newSize == len(buf) {
		return buf, nil
	}
	next, err := s.Acquire(newSize)
	if err != nil {
		return nil, err
	}
	copy(next, buf)
	if err := mmap.Unmap(buf); err != nil {
		return nil, err
	}
	return next, nil
}

func (reserveSource) Release(buf []byte) error {
	return mmap.Unmap(buf)
}
