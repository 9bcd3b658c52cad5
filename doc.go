// Package lzarena is a region-based memory allocator: it hands out raw,
// aligned byte buffers carved from large backing blocks and reclaims them
// all at once instead of one at a time.
//
// # Overview
//
// An arena chains bump-pointer regions and grows the chain on demand from a
// pluggable page source. Allocation is a cursor advance; cleanup is a single
// Reset (keep the memory, reuse it) or Close (return every block to the
// source). That trade suits workloads that allocate many short-lived objects
// in waves:
//
//   - per-request scratch buffers in servers
//   - parser and AST construction
//   - batch processing with a reset between batches
//
// # Quick Start
//
//	a, _ := lzarena.New()
//	defer a.Close()
//
//	buf, err := a.Alloc(1024, 16)     // 1 KiB at a 16-byte boundary
//	node, err := lzarena.Alloc[Node](a)
//	ids, err := lzarena.AllocSlice[uint64](a, 128)
//
//	a.Reset() // all previous allocations are dead; capacity is reused
//
// # Backing Stores
//
// The operating system backs arenas through one of three built-in
// strategies, chosen at construction:
//
//	a, _ := lzarena.New(lzarena.WithBackend(lzarena.BackendHeap))
//
// BackendMmap (the default) uses anonymous memory mapping, BackendHeap the
// Go heap, BackendReserve an explicit reserve-then-commit of address space.
// A custom PageSource redirects all buffer traffic instead:
//
//	a, _ := lzarena.New(lzarena.WithPageSource(myPool))
//
// # Ownership and Lifetime
//
// The arena exclusively owns every region buffer. Callers get borrowed
// views valid until the next Reset or Close; holding one across either is a
// use-after-reset bug, exactly like use-after-free. There is no per-object
// free by design.
//
// # Thread Safety
//
// Arenas are not synchronized. Use one arena per goroutine, or serialize
// access externally.
package lzarena
