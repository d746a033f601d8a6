package heap

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unsafe"
)

// Environment variables consulted by the allocator. Algorithm and
// scribble are re-read on every allocation; the log gate is read once.
const (
	EnvAlgorithm = "ALLOCATOR_ALGORITHM"
	EnvScribble  = "ALLOCATOR_SCRIBBLE"
	EnvLog       = "ALLOCATOR_LOG"
)

// Runtime diagnostics gate, controlled by the ALLOCATOR_LOG env var.
var logAlloc = os.Getenv(EnvLog) != ""

// diagf writes an allocation diagnostic to stderr when logging is on.
func diagf(format string, args ...any) {
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[HEAP] "+format+"\n", args...)
	}
}

// Heap is a free-space manager over OS-acquired regions. The zero value
// is ready to use; every exported method is safe for concurrent callers.
type Heap struct {
	mu     sync.Mutex
	head   *block // global list, in placement order
	allocs uint64 // next allocation id
}

// New returns an empty heap with no regions mapped.
func New() *Heap {
	return &Heap{}
}

// Alloc allocates size bytes and returns the payload pointer, or nil if
// the OS refuses to map a new region. The payload is 8-byte aligned and
// uninitialized unless ALLOCATOR_SCRIBBLE=1, in which case it is filled
// with 0xAA.
func (h *Heap) Alloc(size uintptr) unsafe.Pointer {
	diagf("alloc %d", size)
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.allocUnsafe(size)
}

// AllocNamed is Alloc with a short label attached to the block. The name
// is truncated to the header's capacity and shows up in Dump output.
func (h *Heap) AllocNamed(size uintptr, name string) unsafe.Pointer {
	diagf("alloc %d name=%q", size, name)
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.allocUnsafe(size)
	if p == nil {
		return nil
	}
	blockOf(p).setName(name)
	return p
}

// Calloc allocates nmemb elements of size bytes each and zero-fills the
// payload. Returns nil on mapping failure or if nmemb*size overflows.
// Zeroing happens last, so it overrides scribbling.
func (h *Heap) Calloc(nmemb, size uintptr) unsafe.Pointer {
	h.mu.Lock()
	defer h.mu.Unlock()
	if nmemb != 0 && size > ^uintptr(0)/nmemb {
		return nil
	}
	total := nmemb * size
	p := h.allocUnsafe(total)
	if p == nil {
		return nil
	}
	clear(unsafe.Slice((*byte)(p), total))
	return p
}

// Realloc resizes the block at ptr to size bytes. A nil ptr behaves like
// Alloc; a zero size frees the block and returns nil. The block grows or
// shrinks in place when its slot permits, otherwise the payload moves and
// the old block is freed. On mapping failure the original block is left
// intact and nil is returned.
func (h *Heap) Realloc(ptr unsafe.Pointer, size uintptr) unsafe.Pointer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.reallocUnsafe(ptr, size)
}

// Free releases the block at ptr. A nil ptr is a no-op. When the last
// in-use block of a region is freed the whole region is unmapped and
// returned to the OS.
func (h *Heap) Free(ptr unsafe.Pointer) {
	diagf("free %p", ptr)
	if ptr == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.freeUnsafe(ptr)
}

// Dump writes the full allocator state to w, one line per header, in
// list order. See the package documentation for the line formats.
func (h *Heap) Dump(w io.Writer) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dumpUnsafe(w)
}

// nextID hands out the next allocation id. Ids are assigned when a
// header is created and never reused.
func (h *Heap) nextID() uint64 {
	id := h.allocs
	h.allocs++
	return id
}

// Stats is a point-in-time snapshot of heap state.
type Stats struct {
	Regions     int    // regions currently mapped
	Blocks      int    // headers currently live
	FreeBlocks  int    // headers with usage == 0
	BytesMapped uint64 // sum of region sizes
	BytesInUse  uint64 // sum of usage over all headers
	NextAllocID uint64 // id the next created header will receive
}

// Stats walks the global list and returns a snapshot.
func (h *Heap) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	var s Stats
	s.NextAllocID = h.allocs
	for b := h.head; b != nil; b = b.next {
		if b.isRegionHead() {
			s.Regions++
			s.BytesMapped += uint64(b.regionSize)
		}
		s.Blocks++
		if b.usage == 0 {
			s.FreeBlocks++
		}
		s.BytesInUse += uint64(b.usage)
	}
	return s
}
