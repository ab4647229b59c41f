package gc

// PushRoot registers the address of a pointer-typed mutator-owned storage
// cell as a root (spec §4.3). Roots are traversed in insertion order
// whenever the collector forwards them during a flip.
func (h *Heap) PushRoot(slot *Word) {
	h.init()
	h.roots.PushTail(slot)
}

// PopRoot removes the most recently pushed root. slot must match the top
// of the root stack; a mismatch is fatal (spec §9 open question, resolved
// in favor of checking), as is popping an empty stack (spec §4.3).
func (h *Heap) PopRoot(slot *Word) {
	h.init()
	top, ok := h.roots.Tail()
	if !ok {
		h.fatal(FatalError{Kind: ErrRootUnderflow, Msg: "pop_root on empty root stack"})
		return
	}
	if top != slot {
		h.fatal(FatalError{Kind: ErrRootMismatch})
		return
	}
	h.roots.PopTail()
}

// RootCount reports how many roots are currently registered.
func (h *Heap) RootCount() int {
	return h.roots.Len()
}

// Roots visits every registered root slot in insertion order.
func (h *Heap) Roots(fn func(*Word)) {
	h.roots.Each(fn)
}
