package gc

// forward returns a Word with the invariant that it never points into
// from-space (spec §4.5):
//   - non-managed words and to-space pointers pass through unchanged;
//   - an already-evacuated from-space object's forwarding address (stashed
//     in its own field[0]) is returned directly;
//   - otherwise the object is evacuated via chase, which installs the
//     forwarding address before forward reads it back out.
func (h *Heap) forward(p Word) Word {
	off, ok := h.toOffset(p)
	if !ok || !h.inRegion(off, h.fromBegin) {
		return p
	}

	if !h.isForwarded(off) {
		h.chase(off)
	}

	return h.readField(off, 0)
}

// isForwarded reports whether the from-space object at offset has already
// been evacuated: its field[0] has been overwritten with a pointer into
// to-space. Every from-space object is either untouched (original header
// and fields) or forwarded (field[0] repurposed this way); no other state
// exists (spec §3 invariant 2).
func (h *Heap) isForwarded(offset int) bool {
	field0 := h.readField(offset, 0)
	off, ok := h.toOffset(field0)
	return ok && h.inRegion(off, h.toBegin)
}

// chase evacuates the object at start and, iteratively rather than
// recursively, follows the first unforwarded from-space field it finds —
// so a single root traversal copies a whole chain without growing the Go
// call stack. Ties for "first unforwarded field" are broken by lowest field
// index (spec §4.5). Safe against cycles: forwarding is installed in each
// object before the loop moves on to its chosen successor, so an
// already-forwarded object reached again terminates the inner chain.
func (h *Heap) chase(start int) {
	obj := start
	haveObj := true

	for haveObj {
		header := h.readHeader(obj)
		size := header.CellSize()

		dest := h.next
		newNext := dest + size
		if newNext > h.limit {
			h.fatal(FatalError{Kind: ErrOutOfMemory, Msg: "evacuation exceeded to-space"})
			return
		}
		h.next = newNext

		h.writeHeader(dest, header)

		fieldCount := header.FieldCount()
		successor := -1
		haveSuccessor := false

		for i := 0; i < fieldCount; i++ {
			v := h.readField(obj, i)

			if !haveSuccessor {
				if off, ok := h.toOffset(v); ok && h.inRegion(off, h.fromBegin) && !h.isForwarded(off) {
					successor = off
					haveSuccessor = true
				}
			}

			h.writeField(dest, i, v)
		}

		h.updateResidency(1, uint64(size))

		// Overwriting obj.field[0] is legal precisely because the
		// original no longer needs its first field: it is discarded on
		// the next flip, and this forwarding record replaces the old
		// value.
		h.writeField(obj, 0, h.toWord(dest))

		obj = successor
		haveObj = haveSuccessor
	}
}
