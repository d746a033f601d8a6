package heap

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/mempage"
)

// scribbleByte fills fresh payloads when ALLOCATOR_SCRIBBLE=1, making
// use-before-init visible.
const scribbleByte = 0xAA

// allocUnsafe is the allocation engine. The caller holds h.mu.
//
// The request is aligned to 8 bytes, a block is chosen by placement or a
// fresh region is mapped, and the allocation either takes over the
// chosen free block or is split off its tail slack.
func (h *Heap) allocUnsafe(size uintptr) unsafe.Pointer {
	size = format.Align8(size)
	need := size + headerSize

	chosen := h.placeFor(need)
	if chosen == nil {
		chosen = h.expand(need)
		if chosen == nil {
			return nil
		}
	}

	// Unreachable given the placement post-condition.
	if chosen.size < chosen.usage+need {
		diagf("chosen block %#x cannot hold %d bytes", chosen.addr(), need)
	}

	if chosen.usage == 0 {
		// The chosen block is the region's lone free tail: take it
		// whole, no split.
		chosen.usage = need
	} else {
		// Split: carve the new block from the chosen block's tail
		// slack, immediately after its used bytes.
		nb := (*block)(unsafe.Add(unsafe.Pointer(chosen), chosen.usage))
		nb.regionStart = chosen.regionStart
		nb.regionSize = chosen.regionSize
		nb.next = chosen.next
		nb.size = chosen.size - chosen.usage
		nb.allocID = h.nextID()
		nb.usage = need
		nb.name = [NameCap]byte{}

		chosen.size = chosen.usage
		chosen.next = nb
		chosen = nb
	}

	if os.Getenv(EnvScribble) == "1" {
		b := chosen.payloadBytes(size)
		for i := range b {
			b[i] = scribbleByte
		}
	}

	return chosen.payload()
}

// expand maps a new region large enough for need bytes and installs it
// at the tail of the global list as a single free block. Returns nil on
// mapping failure; the OS error goes to the diagnostic stream.
func (h *Heap) expand(need uintptr) *block {
	pageSize := uintptr(mempage.Size())
	nPages := need / pageSize
	if need%pageSize != 0 {
		nPages++
	}

	data, err := mempage.Map(int(nPages))
	if err != nil {
		fmt.Fprintf(os.Stderr, "heap: mmap: %v\n", err)
		return nil
	}

	b := (*block)(unsafe.Pointer(&data[0]))
	b.allocID = h.nextID()
	b.name = [NameCap]byte{}
	b.size = uintptr(len(data))
	b.usage = 0
	b.regionStart = b
	b.regionSize = uintptr(len(data))
	b.next = nil

	if h.head == nil {
		h.head = b
	} else {
		cur := h.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = b
	}

	diagf("mapped new region at %#x (%d bytes)", b.addr(), b.regionSize)
	return b
}
