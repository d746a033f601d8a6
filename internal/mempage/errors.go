// Package mempage provides whole-page anonymous memory mappings acquired
// directly from the operating system.
package mempage

import "errors"

var (
	// ErrBadPageCount indicates a request for zero or negative pages.
	ErrBadPageCount = errors.New("mempage: page count must be positive")

	// ErrBadAddress indicates a nil mapping address.
	ErrBadAddress = errors.New("mempage: nil mapping address")

	// ErrUnsupported indicates the platform has no anonymous mmap support.
	ErrUnsupported = errors.New("mempage: anonymous mappings not supported on this platform")
)
