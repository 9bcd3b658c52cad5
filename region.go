package lzarena

import (
	"unsafe"

	"github.com/byteguy8/lzarena/internal/align"
)

// Region is a bump allocator over one fixed buffer. It tracks a single
// forward-moving cursor and keeps no per-object metadata: individual
// allocations cannot be freed, only the whole region reset.
//
// A Region never grows and never reallocates its buffer. Arenas chain
// regions to grow; a standalone Region over a caller-supplied buffer is
// useful on its own for fixed-budget scratch space.
type Region struct {
	buf []byte
	off uintptr // offset of the next free byte; only moves forward until Reset
}

// NewRegion carves a region over a caller-supplied buffer. The region
// borrows the buffer for its lifetime; the caller keeps ownership.
// It panics if buf is empty.
func NewRegion(buf []byte) *Region {
	if len(buf) == 0 {
		panic("lzarena: region buffer must not be empty")
	}
	return &Region{buf: buf}
}

func (r *Region) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(r.buf)))
}

// Capacity returns the total byte length of the backing buffer.
func (r *Region) Capacity() int {
	return len(r.buf)
}

// Used returns the bytes consumed so far, alignment padding included.
func (r *Region) Used() int {
	return int(r.off)
}

// Available returns the bytes remaining before any alignment of the cursor.
func (r *Region) Available() int {
	return len(r.buf) - int(r.off)
}

// AvailableFor returns the bytes that remain once the cursor is aligned
// forward to alignment. Allocation must consult this, not Available, since
// the padding can consume the last usable bytes. It panics if alignment is
// not a power of two.
func (r *Region) AvailableFor(alignment int) int {
	base := r.base()
	end := base + uintptr(len(r.buf))
	cur := align.Forward(base+r.off, uintptr(alignment))
	if cur >= end {
		return 0
	}
	return int(end - cur)
}

// Alloc returns a buffer of size bytes whose address is a multiple of
// alignment, or ok=false when the region cannot fit the request. A false
// return is not an error: the owning arena reacts by growing the chain.
// Alloc never moves or invalidates earlier allocations from this region.
// The returned bytes are not zeroed; after a Reset they hold stale content.
func (r *Region) Alloc(size, alignment int) ([]byte, bool) {
	if size <= 0 {
		return nil, true
	}
	if size > r.AvailableFor(alignment) {
		return nil, false
	}
	base := r.base()
	start := align.Forward(base+r.off, uintptr(alignment)) - base
	r.off = start + uintptr(size)
	return r.buf[start:r.off:r.off], true
}

// AllocZeroed is Alloc with the returned bytes cleared.
func (r *Region) AllocZeroed(size, alignment int) ([]byte, bool) {
	b, ok := r.Alloc(size, alignment)
	if ok {
		clear(b)
	}
	return b, ok
}

// Realloc resizes an allocation from this region. Shrinking returns the same
// address without copying; the trailing bytes stay unreachable inside the
// region until Reset. Growing bump-allocates a fresh block and copies the old
// contents forward, leaving the old block as garbage. The operation is
// region-local: it knows nothing about other regions in an arena.
func (r *Region) Realloc(old []byte, newSize, alignment int) ([]byte, bool) {
	if newSize <= 0 {
		return nil, true
	}
	if newSize <= len(old) {
		return old[:newSize:newSize], true
	}
	b, ok := r.Alloc(newSize, alignment)
	if !ok {
		return nil, false
	}
	copy(b, old)
	return b, true
}

// Reset moves the cursor back to the start of the buffer. Contents are not
// wiped. Every allocation previously returned from this region becomes
// invalid; using one afterwards is a use-after-reset bug.
func (r *Region) Reset() {
	r.off = 0
}
