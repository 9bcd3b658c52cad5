package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		x    uintptr
		want bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{7, false},
		{8, true},
		{4096, true},
		{4097, false},
		{1 << 30, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPowerOfTwo(tt.x), "x=%d", tt.x)
	}
}

func TestForward(t *testing.T) {
	tests := []struct {
		addr, alignment, want uintptr
	}{
		{0, 8, 0},
		{1, 8, 8},
		{7, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{100, 64, 128},
		{128, 64, 128},
		{1, 1, 1},
		{4095, 4096, 4096},
		{4097, 4096, 8192},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Forward(tt.addr, tt.alignment), "addr=%d alignment=%d", tt.addr, tt.alignment)
	}
}

func TestForward_PanicsOnBadAlignment(t *testing.T) {
	require.Panics(t, func() { Forward(100, 0) })
	require.Panics(t, func() { Forward(100, 3) })
	require.Panics(t, func() { Forward(100, 12) })
}

func TestPadded(t *testing.T) {
	tests := []struct {
		size, alignment, want int
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{100, 64, 128},
		{5, 1, 5},
		{4096, 4096, 4096},
		{4097, 4096, 8192},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Padded(tt.size, tt.alignment), "size=%d alignment=%d", tt.size, tt.alignment)
	}
}

func TestPadded_PanicsOnBadAlignment(t *testing.T) {
	require.Panics(t, func() { Padded(10, 0) })
	require.Panics(t, func() { Padded(10, 6) })
}

func TestIsAligned(t *testing.T) {
	assert.True(t, IsAligned(0, 8))
	assert.True(t, IsAligned(64, 8))
	assert.True(t, IsAligned(64, 64))
	assert.False(t, IsAligned(65, 64))
	assert.False(t, IsAligned(4, 8))
	assert.True(t, IsAligned(4, 4))
}
