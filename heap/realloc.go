package heap

import (
	"unsafe"

	"github.com/joshuapare/heapkit/internal/format"
)

// reallocUnsafe is the reallocation engine. The caller holds h.mu.
//
// A nil ptr degenerates to allocation, a zero size to deallocation.
// Otherwise the block is resized in place when its slot permits; when it
// does not, a fresh block is allocated, min(old, new) payload bytes are
// copied, and the old block is freed. If the fresh allocation fails the
// old block is left untouched.
func (h *Heap) reallocUnsafe(ptr unsafe.Pointer, size uintptr) unsafe.Pointer {
	if ptr == nil {
		return h.allocUnsafe(size)
	}
	if size == 0 {
		h.freeUnsafe(ptr)
		return nil
	}

	aligned := format.Align8(size)
	need := aligned + headerSize

	cur := blockOf(ptr)
	if cur.size >= need {
		cur.usage = need
		return ptr
	}

	np := h.allocUnsafe(size)
	if np == nil {
		return nil
	}

	n := cur.usage - headerSize
	if size < n {
		n = size
	}
	copy(unsafe.Slice((*byte)(np), n), unsafe.Slice((*byte)(ptr), n))

	h.freeUnsafe(ptr)
	return np
}
