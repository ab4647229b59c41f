package gc

// ReadBarrier must be invoked before the mutator dereferences
// obj.field[i]. If the field currently points into from-space it is
// forwarded in place and the barrier-activation counter is incremented;
// every read of a managed object increments the read-operations counter
// regardless (spec §4.7).
func (h *Heap) ReadBarrier(obj Word, field int) {
	if h.IsManaged(obj) {
		h.readOps++
	}

	off, ok := h.toOffset(obj)
	if !ok {
		return
	}

	v := h.readField(off, field)
	if foff, fok := h.toOffset(v); fok && h.inRegion(foff, h.fromBegin) {
		h.readBarrierActivation++
		h.writeField(off, field, h.forward(v))
	}
}

// WriteBarrier must be invoked before writing contents into obj.field[i].
// Baker's algorithm needs no forwarding on write — the [to_space_begin,
// scan) invariant holds because the mutator only ever holds forwarded
// pointers, which ReadBarrier has already cleansed — so this only
// maintains statistics (spec §4.7).
func (h *Heap) WriteBarrier(obj Word, field int, contents Word) {
	if h.IsManaged(obj) {
		h.writeOps++
	}
}
