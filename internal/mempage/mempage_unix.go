//go:build unix

package mempage

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Map acquires nPages whole pages of private, anonymous, read-write
// memory directly from the OS. The returned slice covers the full
// mapping; its length is nPages * Size().
func Map(nPages int) ([]byte, error) {
	if nPages <= 0 {
		return nil, ErrBadPageCount
	}
	data, err := unix.Mmap(-1, 0, nPages*Size(),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Unmap releases a mapping previously returned by Map, identified by its
// base address and total byte length. The address must be the start of
// the mapping and size must be its full extent.
func Unmap(addr unsafe.Pointer, size uintptr) error {
	if addr == nil {
		return ErrBadAddress
	}
	return unix.Munmap(unsafe.Slice((*byte)(addr), size))
}

// Size reports the OS page size in bytes.
func Size() int {
	return unix.Getpagesize()
}
