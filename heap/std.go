package heap

import (
	"io"
	"unsafe"
)

// std is the process-wide default heap behind the package-level
// functions. All state lives in the Heap value; teardown is implicit at
// process exit because the OS reclaims the mappings.
var std = New()

// Default returns the process-wide default heap.
func Default() *Heap {
	return std
}

// Alloc allocates size bytes on the default heap.
func Alloc(size uintptr) unsafe.Pointer {
	return std.Alloc(size)
}

// AllocNamed allocates size bytes on the default heap with a name
// attached to the block.
func AllocNamed(size uintptr, name string) unsafe.Pointer {
	return std.AllocNamed(size, name)
}

// Calloc allocates nmemb elements of size bytes each on the default
// heap, zero-filled.
func Calloc(nmemb, size uintptr) unsafe.Pointer {
	return std.Calloc(nmemb, size)
}

// Realloc resizes a default-heap block.
func Realloc(ptr unsafe.Pointer, size uintptr) unsafe.Pointer {
	return std.Realloc(ptr, size)
}

// Free releases a default-heap block.
func Free(ptr unsafe.Pointer) {
	std.Free(ptr)
}

// Dump writes the default heap's state to w.
func Dump(w io.Writer) error {
	return std.Dump(w)
}
