package gc

import "math"

// advanceScan processes grey objects — those evacuated but not yet
// scanned, in [scan, next) — until either scan catches up with next or the
// cumulative size of newly scanned objects reaches budget (spec §4.6).
// Every allocation of size n pays for n bytes of scanning, which is what
// guarantees a cycle completes within a bounded number of allocations
// proportional to the live set.
func (h *Heap) advanceScan(budget int) {
	scanned := 0

	for h.scan < h.next && scanned < budget {
		obj := h.scan
		header := h.readHeader(obj)
		fieldCount := header.FieldCount()

		for i := 0; i < fieldCount; i++ {
			field := h.readField(obj, i)
			h.writeField(obj, i, h.forward(field))
		}

		size := header.CellSize()
		scanned += size
		h.scan += size
	}
}

// copyAllReachable scans every grey object there is, equivalent to
// advanceScan with an unbounded budget. Used by the stop-the-world
// allocation path.
func (h *Heap) copyAllReachable() {
	h.advanceScan(math.MaxInt)
}
