//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

func mapAnon(size int) ([]byte, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE

	return unix.Mmap(-1, 0, size, prot, flags)
}

func reserve(size int) ([]byte, error) {
	// PROT_NONE keeps the range inaccessible until committed, so a stray
	// access faults instead of silently touching uncommitted memory.
	return unix.Mmap(-1, 0, size, unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func commit(buf []byte) error {
	return unix.Mprotect(buf, unix.PROT_READ|unix.PROT_WRITE)
}

func unmap(buf []byte) error {
	return unix.Munmap(buf)
}
