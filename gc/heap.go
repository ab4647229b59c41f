package gc

import (
	"encoding/binary"
	"io"

	"github.com/stella-lang/stella-gc/internal/rootlist"
)

// heapOrigin biases every managed-heap Word far away from the small scalar
// values a mutator might store unboxed in a field (small integers, a
// nil/zero sentinel, …), so IsManaged never mistakes mutator-native data for
// a heap offset. Both half-spaces live in one arena (see Heap.arena) purely
// so from/to membership tests are ordinary offset comparisons within a
// single Go slice, resolving the spec's open question about pointer
// comparisons across unrelated allocations being undefined on some
// platforms.
const heapOrigin Word = 1 << 40

// Heap is a semi-space copying heap: two equally sized half-spaces backed
// by one contiguous arena, four cursors partitioning the active half, and
// the root list the mutator registers its frames' pointer slots with. The
// zero value is not usable; construct with NewHeap.
type Heap struct {
	opts Options

	arena []byte // len == 2*opts.MaxAllocSize
	// fromBegin/toBegin are arena byte offsets (0 or opts.MaxAllocSize)
	// identifying which half currently plays which role. Swapped on every
	// flip.
	fromBegin, toBegin int

	// scan, next, limit are arena byte offsets within the current
	// to-space, satisfying toBegin <= scan <= next <= limit <= toBegin+S.
	scan, next, limit int

	initialized bool

	roots *rootlist.List[*Word]

	counters
}

// NewHeap constructs a Heap with the given options. Initialization of the
// arena and cursors is lazy (spec §4.1): it happens on the first Alloc,
// PushRoot, or PopRoot call, not here.
func NewHeap(opts Options) *Heap {
	opts.setDefaults()
	return &Heap{
		opts:  opts,
		roots: rootlist.New[*Word](),
	}
}

// init performs the one-time, idempotent setup of the arena and cursors.
func (h *Heap) init() {
	if h.initialized {
		return
	}
	S := h.opts.MaxAllocSize
	h.arena = make([]byte, 2*S)
	h.fromBegin = 0
	h.toBegin = S
	h.scan = h.toBegin
	h.next = h.toBegin
	h.limit = h.toBegin + S
	h.initialized = true
}

// halfSize returns the configured half-space size S.
func (h *Heap) halfSize() int {
	return h.opts.MaxAllocSize
}

// toOffset translates a managed Word into an arena byte offset. ok is false
// if p does not carry the heap-origin bias, meaning it is mutator-native
// data rather than a heap pointer.
func (h *Heap) toOffset(p Word) (int, bool) {
	if p < heapOrigin {
		return 0, false
	}
	off := int(p - heapOrigin)
	return off, true
}

// toWord translates an arena byte offset into a managed Word.
func (h *Heap) toWord(offset int) Word {
	return heapOrigin + Word(offset)
}

// inRegion reports whether an arena offset falls within the half-space
// beginning at regionBegin. The upper bound is strict: no object may end at
// or straddle the last byte of its half (spec §4.1).
func (h *Heap) inRegion(offset, regionBegin int) bool {
	return offset >= regionBegin && offset < regionBegin+h.halfSize()
}

// belongsTo reports whether a managed Word falls within the half-space
// beginning at regionBegin.
func (h *Heap) belongsTo(p Word, regionBegin int) bool {
	off, ok := h.toOffset(p)
	if !ok {
		return false
	}
	return h.inRegion(off, regionBegin)
}

// IsManaged reports whether p lies in either half-space.
func (h *Heap) IsManaged(p Word) bool {
	h.init()
	return h.belongsTo(p, h.fromBegin) || h.belongsTo(p, h.toBegin)
}

func (h *Heap) readHeader(offset int) Header {
	return Header(binary.LittleEndian.Uint64(h.arena[offset : offset+WordSize]))
}

func (h *Heap) writeHeader(offset int, hdr Header) {
	binary.LittleEndian.PutUint64(h.arena[offset:offset+WordSize], uint64(hdr))
}

func (h *Heap) readField(offset int, field int) Word {
	base := offset + WordSize + field*WordSize
	return Word(binary.LittleEndian.Uint64(h.arena[base : base+WordSize]))
}

func (h *Heap) writeField(offset int, field int, v Word) {
	base := offset + WordSize + field*WordSize
	binary.LittleEndian.PutUint64(h.arena[base:base+WordSize], uint64(v))
}

// Tag returns the tag of the object p refers to. p must be a managed Word.
func (h *Heap) Tag(p Word) Tag {
	off, _ := h.toOffset(p)
	return h.readHeader(off).Tag()
}

// FieldCount returns the field count of the object p refers to. p must be a
// managed Word.
func (h *Heap) FieldCount(p Word) int {
	off, _ := h.toOffset(p)
	return h.readHeader(off).FieldCount()
}

// SetOut redirects diagnostic output (PrintState, PrintStats, fatal dumps)
// to w. Intended for callers that want to mirror a dump to more than one
// destination between calls; the collector itself never runs concurrent
// diagnostics, so this needs no synchronization.
func (h *Heap) SetOut(w io.Writer) {
	h.opts.Out = w
}

// ToSpaceBytes returns the raw bytes of the current to-space half, for
// diagnostic export (see the snapshot package). The returned slice aliases
// the heap's arena; callers must not retain it across further allocations
// or collections.
func (h *Heap) ToSpaceBytes() []byte {
	h.init()
	return h.arena[h.toBegin : h.toBegin+h.halfSize()]
}

// Field returns the raw value currently stored in field i of the object p
// refers to, bypassing the read barrier. Prefer ReadBarrier for mutator
// reads; this is for diagnostics and tests that need to observe
// not-yet-forwarded state.
func (h *Heap) Field(p Word, i int) Word {
	off, _ := h.toOffset(p)
	return h.readField(off, i)
}
