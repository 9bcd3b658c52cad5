//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapAnon(size int) ([]byte, error) {
	// MEM_COMMIT here still demand-pages: physical memory is only backed
	// when first touched, matching Unix mmap behavior.
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func reserve(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func commit(buf []byte) error {
	addr := uintptr(unsafe.Pointer(&buf[0]))
	_, err := windows.VirtualAlloc(addr, uintptr(len(buf)),
		windows.MEM_COMMIT, windows.PAGE_READWRITE)
	return err
}

func unmap(buf []byte) error {
	addr := uintptr(unsafe.Pointer(&buf[0]))
	// MEM_RELEASE frees the entire reservation regardless of length.
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}

// Windows has no mremap; Remap always goes through map-copy-unmap.
func remap(buf []byte, newSize int) ([]byte, error) {
	return nil, errRemapUnsupported
}
