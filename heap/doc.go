// Package heap implements a drop-in, process-global, general-purpose heap
// allocator backed by anonymous memory mappings.
//
// # Overview
//
// The allocator owns a set of OS-acquired regions and threads a single
// singly linked list of block headers through all of them. One header
// record plays three roles at once: list node, block descriptor, and -
// when its region back-reference points at itself - region descriptor.
// Placement, splitting, reallocation, and whole-region reclamation are
// all local edits on that list.
//
// # Public surface
//
// The package-level functions mirror the C memory API and operate on a
// shared default heap:
//
//	p := heap.Alloc(64)
//	q := heap.Calloc(8, 16)
//	p = heap.Realloc(p, 128)
//	heap.Free(p)
//	heap.Free(q)
//	heap.Dump(os.Stdout)
//
// Independent heaps can be built with New for tests or embedding.
//
// # Placement policies
//
// When an allocation can be carved from the tail slack of an existing
// block, the block is chosen by the policy named in the
// ALLOCATOR_ALGORITHM environment variable: first_fit (default),
// best_fit, or worst_fit. The variable is re-read on every allocation,
// so the policy can be switched at runtime. If no block fits, a new
// region is mapped.
//
// # Splitting and reclamation
//
// Splits always carve from a chosen block's tail slack, so a region has
// at most one free block and it is always the last header in the region.
// Freed non-tail blocks are not reused; space returns to the OS only
// when every block in a region is free, at which point the whole region
// is unmapped and the list is stitched past it.
//
// # Environment variables
//
//	ALLOCATOR_ALGORITHM  placement policy: first_fit, best_fit, worst_fit
//	ALLOCATOR_SCRIBBLE   "1" fills fresh payloads with 0xAA
//	ALLOCATOR_LOG        non-empty enables allocation diagnostics on stderr
//
// # Thread safety
//
// Every public entry takes a single per-heap mutex. The introspection
// writer renders pointers and counters with hand-rolled formatters so
// the dump path never allocates through the heap it is dumping.
package heap
