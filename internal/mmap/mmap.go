package mmap

import "errors"

var (
	// ErrInvalidSize is returned when a non-positive buffer size is requested.
	ErrInvalidSize = errors.New("mmap: invalid size")

	// errRemapUnsupported signals that the platform has no native remap and
	// the caller must fall back to map-copy-unmap.
	errRemapUnsupported = errors.New("mmap: remap not supported")
)

// MapAnon maps size bytes of committed, zero-filled anonymous memory.
// The returned slice spans the whole mapping and must be released with Unmap.
func MapAnon(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return mapAnon(size)
}

// Reserve reserves size bytes of address space without committing it.
// The returned slice must not be touched until Commit succeeds.
func Reserve(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return reserve(size)
}

// Commit makes a reserved buffer readable and writable.
func Commit(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return commit(buf)
}

// Remap grows buf to newSize bytes, preserving its contents. The mapping may
// move; callers must use the returned slice and forget buf.
func Remap(buf []byte, newSize int) ([]byte, error) {
	if newSize <= 0 {
		return nil, ErrInvalidSize
	}
	if newSize == len(buf) {
		return buf, nil
	}

	data, err := remap(buf, newSize)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, errRemapUnsupported) {
		return nil, err
	}

	// No native remap on this platform.
	data, err = mapAnon(newSize)
	if err != nil {
		return nil, err
	}
	copy(data, buf)
	if err := unmap(buf); err != nil {
		return nil, err
	}
	return data, nil
}

// Unmap releases a buffer obtained from MapAnon, Reserve or Remap.
func Unmap(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unmap(buf)
}
