// Package align provides the alignment arithmetic shared by regions and
// page sources.
//
// Every alignment argument in this module must be a power of two. Passing
// anything else is a programmer error and panics immediately rather than
// producing a misaligned address that corrupts downstream structures.
package align

// IsPowerOfTwo reports whether x has exactly one set bit.
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}

// Forward returns the smallest address >= addr that is a multiple of
// alignment. It panics if alignment is not a power of two.
func Forward(addr, alignment uintptr) uintptr {
	if !IsPowerOfTwo(alignment) {
		panic("align: alignment must be a power of two")
	}
	return (addr + alignment - 1) &^ (alignment - 1)
}

// Padded returns size rounded up to the nearest multiple of alignment.
// It panics if alignment is not a power of two.
func Padded(size int, alignment int) int {
	if alignment < 0 || !IsPowerOfTwo(uintptr(alignment)) {
		panic("align: alignment must be a power of two")
	}
	mask := alignment - 1
	return (size + mask) &^ mask
}

// IsAligned reports whether addr is a multiple of alignment.
// It panics if alignment is not a power of two.
func IsAligned(addr, alignment uintptr) bool {
	if !IsPowerOfTwo(alignment) {
		panic("align: alignment must be a power of two")
	}
	return addr&(alignment-1) == 0
}
