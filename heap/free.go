package heap

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/joshuapare/heapkit/internal/mempage"
)

// freeUnsafe is the deallocation engine. The caller holds h.mu and ptr
// is non-nil.
//
// The block's usage drops to zero; if that leaves every block in the
// containing region free, the region is unmapped and the global list is
// stitched past it. A failing unmap is diagnostic only - the list is
// stitched regardless.
func (h *Heap) freeUnsafe(ptr unsafe.Pointer) {
	cur := blockOf(ptr)
	cur.usage = 0

	regionHead := cur.regionStart
	regionAddr := regionHead.addr()
	regionSize := regionHead.regionSize
	regionEnd := regionAddr + regionSize

	// Walk the region's headers; any in-use block keeps it alive.
	scan := regionHead
	for scan != nil && scan.addr() >= regionAddr && scan.addr() < regionEnd {
		if scan.usage != 0 {
			return
		}
		scan = scan.next
	}

	// scan is now the first header past the region, or nil.
	after := scan

	diagf("region %#x drained, unmapping %d bytes", regionAddr, regionSize)
	if err := mempage.Unmap(unsafe.Pointer(regionHead), regionSize); err != nil {
		fmt.Fprintf(os.Stderr, "heap: munmap: %v\n", err)
	}

	// Stitch the list past the freed region. Only the pointer values of
	// the region's headers are compared from here on.
	if h.head == regionHead {
		h.head = after
		return
	}
	prev := h.head
	for prev.next != nil && prev.next != regionHead {
		prev = prev.next
	}
	if prev.next != nil {
		prev.next = after
	}
}
