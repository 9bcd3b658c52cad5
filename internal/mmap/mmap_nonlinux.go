//go:build unix && !linux

package mmap

// Only Linux exposes mremap(2); everywhere else Remap falls back to
// map-copy-unmap.
func remap(buf []byte, newSize int) ([]byte, error) {
	return nil, errRemapUnsupported
}
