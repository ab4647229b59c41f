package gc

// counters holds every statistic print_stats/print_state report (spec
// §4.8, §8 "Residency accounting").
type counters struct {
	totalObjects uint64
	totalBytes   uint64

	cycles uint64

	residentObjects uint64
	residentBytes   uint64

	maxResidentObjects uint64
	maxResidentBytes   uint64

	readOps                uint64
	writeOps               uint64
	readBarrierActivation  uint64
	writeBarrierActivation uint64
}

// updateResidency credits newly evacuated objects to the current cycle's
// residency and tracks the running maximum. Per the spec's resolution of
// its own open question, residency is credited at evacuation time (in
// chase), not on every incremental allocation, so ResidentObjects/Bytes
// measure objects that survived a cycle rather than conflating "allocated"
// with "live".
func (c *counters) updateResidency(objects, bytes uint64) {
	c.residentObjects += objects
	c.residentBytes += bytes

	if c.residentBytes > c.maxResidentBytes {
		c.maxResidentBytes = c.residentBytes
		c.maxResidentObjects = c.residentObjects
	}
}

func (c *counters) resetResidency() {
	c.residentObjects = 0
	c.residentBytes = 0
}

func (c *counters) recordAlloc(bytes uint64) {
	c.totalObjects++
	c.totalBytes += bytes
}

// Stats is a snapshot of the collector's counters, safe to copy and hold
// onto after the call that produced it.
type Stats struct {
	TotalObjects            uint64
	TotalBytes              uint64
	Cycles                  uint64
	ResidentObjects         uint64
	ResidentBytes           uint64
	MaxResidentObjects      uint64
	MaxResidentBytes        uint64
	ReadOps                 uint64
	WriteOps                uint64
	ReadBarrierActivations  uint64
	WriteBarrierActivations uint64
}

// Stats returns a snapshot of the current counters.
func (h *Heap) Stats() Stats {
	return Stats{
		TotalObjects:            h.totalObjects,
		TotalBytes:              h.totalBytes,
		Cycles:                  h.cycles,
		ResidentObjects:         h.residentObjects,
		ResidentBytes:           h.residentBytes,
		MaxResidentObjects:      h.maxResidentObjects,
		MaxResidentBytes:        h.maxResidentBytes,
		ReadOps:                 h.readOps,
		WriteOps:                h.writeOps,
		ReadBarrierActivations:  h.readBarrierActivation,
		WriteBarrierActivations: h.writeBarrierActivation,
	}
}
