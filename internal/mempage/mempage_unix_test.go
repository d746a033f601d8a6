//go:build unix

package mempage

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func Test_MapUnmapRoundTrip(t *testing.T) {
	data, err := Map(2)
	require.NoError(t, err)
	require.Len(t, data, 2*Size())

	// Fresh anonymous pages are zero-filled and writable.
	require.Equal(t, byte(0), data[0])
	require.Equal(t, byte(0), data[len(data)-1])
	data[0] = 0xAB
	data[len(data)-1] = 0xCD
	require.Equal(t, byte(0xAB), data[0])

	err = Unmap(unsafe.Pointer(&data[0]), uintptr(len(data)))
	require.NoError(t, err)
}

func Test_MapRejectsBadCount(t *testing.T) {
	_, err := Map(0)
	require.ErrorIs(t, err, ErrBadPageCount)

	_, err = Map(-3)
	require.ErrorIs(t, err, ErrBadPageCount)
}

func Test_UnmapRejectsNil(t *testing.T) {
	err := Unmap(nil, 4096)
	require.ErrorIs(t, err, ErrBadAddress)
}

func Test_PageSize(t *testing.T) {
	sz := Size()
	require.Positive(t, sz)
	require.Zero(t, sz&(sz-1), "page size should be a power of two")
}
