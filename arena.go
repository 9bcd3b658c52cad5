package lzarena

import (
	"fmt"
	"os"
	"unsafe"
)

const (
	// DefaultAlignment is used when an allocation passes alignment <= 0.
	DefaultAlignment = 8

	// DefaultBlockFactor is the number of pages in a default growth block.
	DefaultBlockFactor = 16
)

// DefaultBlockSize returns the default growth block length: the platform
// page size times DefaultBlockFactor.
func DefaultBlockSize() int {
	return os.Getpagesize() * DefaultBlockFactor
}

// regionOverhead is the per-region bookkeeping allowance included when
// sizing a growth block, so a request of exactly one block still fits.
var regionOverhead = int(unsafe.Sizeof(Region{}))

// Arena satisfies allocation requests from an ordered chain of regions,
// growing the chain through its page source when no region has room.
// It is not goroutine-safe; callers needing concurrency use one arena per
// goroutine or serialize access externally.
type Arena struct {
	src       PageSource
	blockSize int
	logger    *Logger
	regions   []*Region
	tail      int // index of the region the forward-only search starts from
	closed    bool
	allocs    uint64
	grows     uint64
}

// New creates an arena. With no options it acquires backing buffers from the
// operating system via anonymous memory mapping; see WithBackend and
// WithPageSource for the other strategies.
func New(opts ...Option) (*Arena, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src := o.src
	if src == nil {
		s, err := NewSource(o.backend)
		if err != nil {
			return nil, err
		}
		src = s
	}

	blockSize := o.blockSize
	if blockSize <= 0 {
		blockSize = DefaultBlockSize()
	}
	blockSize = roundUp(blockSize, os.Getpagesize())

	return &Arena{
		src:       src,
		blockSize: blockSize,
		logger:    o.logger,
	}, nil
}

// Alloc returns a buffer of size bytes whose address is a multiple of
// alignment. The buffer stays valid until the next Reset or Close on this
// arena. A request no region can hold grows the chain; a failed acquisition
// surfaces as the returned error with no partial state change.
//
// size <= 0 returns nil with no error. alignment <= 0 uses
// DefaultAlignment; a non-power-of-two alignment panics.
// The returned bytes are not zeroed once regions are being reused after
// Reset; use AllocZeroed when contents must start clean.
func (a *Arena) Alloc(size, alignment int) ([]byte, error) {
	if a.closed {
		return nil, ErrClosed
	}
	if size <= 0 {
		return nil, nil
	}
	if alignment <= 0 {
		alignment = DefaultAlignment
	}

	if len(a.regions) == 0 {
		if err := a.grow(size, alignment); err != nil {
			return nil, err
		}
	}

	// Forward-only search: tail never moves back, so residual space in a
	// region behind it is never revisited. Bounded search cost is worth
	// more here than reclaiming every hole.
	for a.tail < len(a.regions)-1 && a.regions[a.tail].AvailableFor(alignment) < size {
		a.tail++
	}
	if a.regions[a.tail].AvailableFor(alignment) < size {
		if err := a.grow(size, alignment); err != nil {
			return nil, err
		}
	}

	b, ok := a.regions[a.tail].Alloc(size, alignment)
	if !ok {
		panic("lzarena: region sized for request cannot satisfy it")
	}
	a.allocs++
	return b, nil
}

// AllocZeroed is Alloc with the returned bytes cleared.
func (a *Arena) AllocZeroed(size, alignment int) ([]byte, error) {
	b, err := a.Alloc(size, alignment)
	if err == nil {
		clear(b)
	}
	return b, err
}

// Realloc resizes an allocation from this arena. Shrinking returns the same
// address without copying. Growing always allocates a brand-new block
// through the full search-or-grow path and copies the old contents forward;
// it never extends in place. On failure old is left untouched.
func (a *Arena) Realloc(old []byte, newSize, alignment int) ([]byte, error) {
	if a.closed {
		return nil, ErrClosed
	}
	if newSize <= 0 {
		return nil, nil
	}
	if newSize <= len(old) {
		return old[:newSize:newSize], nil
	}
	b, err := a.Alloc(newSize, alignment)
	if err != nil {
		return nil, err
	}
	copy(b, old)
	return b, nil
}

// Reset moves every region's cursor back to its start and the search tail
// back to the first region. Backing buffers are retained and no source call
// is made, so previously grown capacity is reused by subsequent allocations.
// Every buffer this arena has handed out becomes invalid.
func (a *Arena) Reset() {
	for _, r := range a.regions {
		r.Reset()
	}
	a.tail = 0
	a.logger.Debug("arena reset", "regions", len(a.regions))
}

// Close releases every region's backing buffer through the page source and
// invalidates the arena. It is idempotent; the first error encountered is
// returned after all regions have been released.
func (a *Arena) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var firstErr error
	for _, r := range a.regions {
		if err := a.src.Release(r.buf); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.logger.Debug("arena closed", "regions", len(a.regions))
	a.regions = nil
	a.tail = 0
	return firstErr
}

// grow appends a region able to hold a size-byte allocation at the given
// alignment. Block length is the request plus region overhead and worst-case
// alignment padding, rounded up to the block-size granularity so most growth
// events leave room for many subsequent small allocations.
func (a *Arena) grow(size, alignment int) error {
	need := size + regionOverhead + (alignment - 1)
	length := a.blockSize
	if need > length {
		length = roundUp(need, a.blockSize)
	}

	buf, err := a.src.Acquire(length)
	if err != nil {
		return fmt.Errorf("lzarena: acquire %d bytes: %w", length, err)
	}

	a.regions = append(a.regions, NewRegion(buf))
	a.tail = len(a.regions) - 1
	a.grows++
	a.logger.Debug("region appended", "bytes", length, "regions", len(a.regions))
	return nil
}

// roundUp rounds n up to the nearest multiple of m. Unlike align.Padded,
// m does not have to be a power of two.
func roundUp(n, m int) int {
	factor := n / m
	if factor*m < n {
		factor++
	}
	return factor * m
}
