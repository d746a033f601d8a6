package heap

import (
	"io"

	"github.com/joshuapare/heapkit/internal/format"
)

// dumpUnsafe writes the allocator state to w in list order. The caller
// holds h.mu.
//
// The writer renders every value through the allocation-free helpers in
// internal/format: a heap that stands in for the process allocator must
// not allocate while reporting on itself.
func (h *Heap) dumpUnsafe(w io.Writer) error {
	if _, err := io.WriteString(w, "-- Current Memory State --\n"); err != nil {
		return err
	}

	for b := h.head; b != nil; b = b.next {
		if b.isRegionHead() {
			if err := writeRegionLine(w, b); err != nil {
				return err
			}
		}
		if err := writeBlockLine(w, b); err != nil {
			return err
		}
	}
	return nil
}

// writeRegionLine emits "[REGION] <start>-<end> <size>".
func writeRegionLine(w io.Writer, b *block) error {
	if _, err := io.WriteString(w, "[REGION] "); err != nil {
		return err
	}
	if err := format.WritePointer(w, b.addr()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "-"); err != nil {
		return err
	}
	if err := format.WritePointer(w, b.addr()+b.regionSize); err != nil {
		return err
	}
	if _, err := io.WriteString(w, " "); err != nil {
		return err
	}
	if err := format.WriteUnsigned(w, uint64(b.regionSize)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeBlockLine emits
// "[BLOCK]  <start>-<end> (<id>) '<name>' <size> <usage> <payload>"
// where <payload> is the user-visible byte count, 0 for a free block.
func writeBlockLine(w io.Writer, b *block) error {
	if _, err := io.WriteString(w, "[BLOCK]  "); err != nil {
		return err
	}
	if err := format.WritePointer(w, b.addr()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "-"); err != nil {
		return err
	}
	if err := format.WritePointer(w, b.addr()+b.size); err != nil {
		return err
	}
	if _, err := io.WriteString(w, " ("); err != nil {
		return err
	}
	if err := format.WriteUnsigned(w, b.allocID); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ") '"); err != nil {
		return err
	}
	if _, err := w.Write(b.nameBytes()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "' "); err != nil {
		return err
	}
	if err := format.WriteUnsigned(w, uint64(b.size)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, " "); err != nil {
		return err
	}
	if err := format.WriteUnsigned(w, uint64(b.usage)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, " "); err != nil {
		return err
	}
	visible := uint64(0)
	if b.usage != 0 {
		visible = uint64(b.usage - headerSize)
	}
	if err := format.WriteUnsigned(w, visible); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
