package lzarena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// header is deliberately pointer-free: typed allocations land in memory the
// garbage collector never scans.
type header struct {
	magic uint32
	flags uint16
	count uint64
}

func TestAlloc_Typed(t *testing.T) {
	a := newTestArena(t)

	h, err := Alloc[header](a)
	require.NoError(t, err)
	require.NotNil(t, h)

	// Zeroed and aligned for the type.
	assert.Zero(t, h.magic)
	assert.Zero(t, h.flags)
	assert.Zero(t, h.count)
	assert.Zero(t, uintptr(unsafe.Pointer(h))%unsafe.Alignof(header{}))

	h.magic = 0xCAFE
	h.count = 42

	// A second allocation does not alias the first.
	h2, err := Alloc[header](a)
	require.NoError(t, err)
	require.NotSame(t, h, h2)
	assert.Equal(t, uint32(0xCAFE), h.magic)
	assert.Equal(t, uint64(42), h.count)
	assert.Zero(t, h2.magic)
}

func TestAlloc_ZeroSizeType(t *testing.T) {
	a := newTestArena(t)

	p, err := Alloc[struct{}](a)
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Zero(t, a.Stats().Regions)
}

func TestAllocSlice(t *testing.T) {
	a := newTestArena(t)

	v, err := AllocSlice[uint64](a, 128)
	require.NoError(t, err)
	require.Len(t, v, 128)
	assert.Zero(t, uintptr(unsafe.Pointer(&v[0]))%unsafe.Alignof(uint64(0)))

	for i := range v {
		require.Zero(t, v[i], "element %d not zeroed", i)
		v[i] = uint64(i) * 3
	}

	w, err := AllocSlice[uint64](a, 64)
	require.NoError(t, err)
	for i := range w {
		w[i] = ^uint64(0)
	}

	// The first slice is untouched by the second.
	for i := range v {
		require.Equal(t, uint64(i)*3, v[i])
	}
}

func TestAllocSlice_Empty(t *testing.T) {
	a := newTestArena(t)

	v, err := AllocSlice[int](a, 0)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = AllocSlice[int](a, -3)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestAlloc_Closed(t *testing.T) {
	a, err := New(WithBackend(BackendHeap))
	require.NoError(t, err)
	require.NoError(t, a.Close())

	_, err = Alloc[header](a)
	require.ErrorIs(t, err, ErrClosed)

	_, err = AllocSlice[uint64](a, 8)
	require.ErrorIs(t, err, ErrClosed)
}
