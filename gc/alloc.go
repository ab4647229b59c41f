package gc

import "fmt"

// Alloc allocates one object with the given tag and field values, returning
// a managed Word referring to it. Requesting more fields than fit in a
// half-space, or running a full collection cycle without freeing enough
// space, is fatal (spec §7): this function does not return to its caller
// on those paths (it calls h.fatal, which calls the configured Exit after
// dumping state). Tests that need to observe a fatal condition without
// killing the process should inject a non-exiting Options.Exit.
func (h *Heap) Alloc(tag Tag, fields []Word) Word {
	h.init()

	size := WordSize * (1 + len(fields))
	if size > h.halfSize() {
		h.fatal(FatalError{
			Kind: ErrOutOfMemory,
			Msg:  fmt.Sprintf("requested %d bytes exceeds half-space size %d", size, h.halfSize()),
		})
		return 0
	}

	if h.opts.Debug {
		fmt.Fprintf(h.opts.Out, "gc: alloc %s with %d field(s), %d bytes\n", tag, len(fields), size)
	}

	if h.opts.Mode == StopTheWorld {
		return h.allocStopTheWorld(tag, fields, size)
	}
	return h.allocIncremental(tag, fields, size)
}

// allocIncremental implements spec §4.2's incremental allocator: reserve by
// shrinking limit, collect-if-needed, commit, and pay for proportional
// scanning work before returning.
func (h *Heap) allocIncremental(tag Tag, fields []Word, size int) Word {
	newLimit := h.limit - size

	if newLimit < h.next {
		h.collect()
		newLimit = h.limit - size

		if newLimit < h.next {
			h.fatal(FatalError{Kind: ErrOutOfMemory, Msg: "insufficient free region after collection cycle"})
			return 0
		}
	}

	h.limit = newLimit
	ptr := h.limit

	h.writeObject(ptr, tag, fields)

	h.advanceScan(size)
	h.recordAlloc(uint64(size))

	return h.toWord(ptr)
}

// allocStopTheWorld implements the non-incremental testing mode (spec
// §4.2, last paragraph): allocations grow upward from next, and exhaustion
// triggers a full stop-the-world collection that evacuates everything
// reachable before the allocation is retried.
func (h *Heap) allocStopTheWorld(tag Tag, fields []Word, size int) Word {
	newNext := h.next + size

	if newNext > h.limit {
		h.collect()
		h.copyAllReachable()

		newNext = h.next + size
		if newNext > h.limit {
			h.fatal(FatalError{Kind: ErrOutOfMemory, Msg: "insufficient free region after stop-the-world collection"})
			return 0
		}
	}

	ptr := h.next
	h.next = newNext

	h.writeObject(ptr, tag, fields)
	// The new object lies in [scan, next). Scanning it right away forwards
	// any field that still names a from-space object and keeps scan == next,
	// so the next flip's unfinished-cycle check holds.
	h.copyAllReachable()
	h.recordAlloc(uint64(size))

	return h.toWord(ptr)
}

func (h *Heap) writeObject(offset int, tag Tag, fields []Word) {
	h.writeHeader(offset, MakeHeader(tag, len(fields)))
	for i, f := range fields {
		h.writeField(offset, i, f)
	}
}

// collect performs a flip (spec §4.4): it verifies the previous cycle
// finished, swaps the half-spaces' identities, resets the cursors and
// residency counters for the new epoch, and forwards every registered root.
// A cycle beginning while the grey region is still non-empty means the
// mutator demanded more memory than one cycle could evacuate, which is
// fatal.
func (h *Heap) collect() {
	if h.scan != h.next {
		h.fatal(FatalError{
			Kind: ErrOutOfMemory,
			Msg:  "previous collection cycle had not finished scanning (scan != next)",
		})
		return
	}

	h.resetResidency()
	h.cycles++

	h.fromBegin, h.toBegin = h.toBegin, h.fromBegin
	h.scan = h.toBegin
	h.next = h.toBegin
	h.limit = h.toBegin + h.halfSize()

	h.roots.Each(func(slot *Word) {
		*slot = h.forward(*slot)
	})
}
