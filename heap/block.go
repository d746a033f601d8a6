package heap

import (
	"unsafe"
)

// NameCap is the capacity of a block's name field, including the
// terminating NUL.
const NameCap = 32

// block is the fixed-layout record at offset 0 of every block. It is the
// list node, the block descriptor, and - when regionStart points at the
// block itself - the region descriptor.
type block struct {
	allocID     uint64
	name        [NameCap]byte // NUL-terminated; empty if unnamed
	size        uintptr       // total bytes of this block, header included
	usage       uintptr       // bytes in use, header included; 0 = free
	regionStart *block        // first header of the containing region
	regionSize  uintptr       // total bytes of the containing region
	next        *block        // next header in global order
}

// headerSize is the byte size of the block header record.
const headerSize = unsafe.Sizeof(block{})

// blockOf recovers the header from a payload pointer.
func blockOf(p unsafe.Pointer) *block {
	return (*block)(unsafe.Add(p, -int(headerSize)))
}

// payload returns the address immediately after the header.
func (b *block) payload() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(b), headerSize)
}

// payloadBytes exposes n bytes of payload as a slice.
func (b *block) payloadBytes(n uintptr) []byte {
	return unsafe.Slice((*byte)(b.payload()), n)
}

func (b *block) addr() uintptr {
	return uintptr(unsafe.Pointer(b))
}

// slack is the free tail of the block available for splitting.
func (b *block) slack() uintptr {
	return b.size - b.usage
}

func (b *block) isRegionHead() bool {
	return b.regionStart == b
}

// setName copies s into the name field, truncated to capacity and always
// NUL-terminated.
func (b *block) setName(s string) {
	n := copy(b.name[:NameCap-1], s)
	for i := n; i < NameCap; i++ {
		b.name[i] = 0
	}
}

// nameBytes returns the name up to its terminating NUL.
func (b *block) nameBytes() []byte {
	for i, c := range b.name {
		if c == 0 {
			return b.name[:i]
		}
	}
	return b.name[:NameCap-1]
}
