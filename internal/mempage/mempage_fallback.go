//go:build !unix

package mempage

import (
	"os"
	"unsafe"
)

// Map reports failure on platforms without anonymous mmap support.
func Map(nPages int) ([]byte, error) {
	if nPages <= 0 {
		return nil, ErrBadPageCount
	}
	return nil, ErrUnsupported
}

// Unmap is a no-op on platforms without anonymous mmap support.
func Unmap(addr unsafe.Pointer, size uintptr) error {
	if addr == nil {
		return ErrBadAddress
	}
	return ErrUnsupported
}

// Size reports the OS page size in bytes.
func Size() int {
	return os.Getpagesize()
}
