//go:build linux || darwin

package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/mempage"
)

// checkInvariants walks the global list and verifies the structural
// invariants of the free-space manager:
//
//   - every header lies inside its region and block sizes sum to the
//     region size
//   - a header's successor is either in the same region or the first
//     header of a later region
//   - usage never exceeds size
//   - allocation ids are unique
func checkInvariants(t *testing.T, h *Heap) {
	t.Helper()

	seen := make(map[uint64]bool)
	for b := h.head; b != nil; b = b.next {
		require.False(t, seen[b.allocID], "alloc id %d reused", b.allocID)
		seen[b.allocID] = true

		require.LessOrEqual(t, b.usage, b.size, "usage exceeds size at %#x", b.addr())

		start := b.regionStart.addr()
		end := start + b.regionStart.regionSize
		require.GreaterOrEqual(t, b.addr(), start, "header before its region")
		require.LessOrEqual(t, b.addr()+b.size, end, "block spills past its region")

		if b.next != nil {
			same := b.next.regionStart == b.regionStart
			laterHead := b.next.isRegionHead()
			require.True(t, same || laterHead,
				"successor of %#x is neither in-region nor a region head", b.addr())
		}
	}

	// Per-region size accounting.
	for b := h.head; b != nil; b = b.next {
		if !b.isRegionHead() {
			continue
		}
		start := b.addr()
		end := start + b.regionSize
		var sum uintptr
		for r := b; r != nil && r.addr() >= start && r.addr() < end; r = r.next {
			sum += r.size
		}
		require.Equal(t, b.regionSize, sum,
			"block sizes in region %#x do not sum to region size", start)
	}
}

// fillRegion allocates one block whose tail slack in a fresh region is
// exactly slack bytes, assuming nothing else can absorb the request.
// Returns the header of the allocated block.
func fillRegion(t *testing.T, h *Heap, slack uintptr) *block {
	t.Helper()

	payload := uintptr(mempage.Size()) - headerSize - slack
	ptr := h.Alloc(payload)
	require.NotNil(t, ptr)
	return blockOf(ptr)
}
