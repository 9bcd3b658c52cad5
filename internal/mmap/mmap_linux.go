//go:build linux

package mmap

import (
	"golang.org/x/sys/unix"
)

func remap(buf []byte, newSize int) ([]byte, error) {
	return unix.Mremap(buf, newSize, unix.MREMAP_MAYMOVE)
}
