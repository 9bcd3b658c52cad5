// Package mmap provides anonymous virtual-memory acquisition for the arena
// page sources.
//
// # Overview
//
// The package exposes three acquisition styles over a unified API:
//
//   - MapAnon: map committed, zero-filled anonymous memory
//   - Reserve + Commit: reserve address space first, then make it accessible
//   - Remap: grow an existing mapping, moving it if the kernel must
//
// All buffers handed out here are owned by the caller and must be returned
// with Unmap, never to the Go garbage collector.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2)/munmap(2) with mprotect(2) for
//     commit; Linux additionally uses mremap(2) for in-kernel growth
//   - Windows: VirtualAlloc/VirtualFree with MEM_RESERVE and MEM_COMMIT
//
// On platforms without a native remap, Remap falls back to map-copy-unmap.
package mmap
