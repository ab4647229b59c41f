package gc

import (
	"fmt"

	"github.com/inhies/go-bytesize"
	"github.com/sigurn/crc16"
)

// fatal dumps the collector's full state to opts.Out and then terminates
// the process via opts.Exit, using the exit code the fatal condition maps
// to (spec §7). Exit is injectable so tests can observe a fatal condition
// without killing the test binary; when it does not actually terminate the
// process, callers of fatal return immediately afterward.
func (h *Heap) fatal(err FatalError) {
	fmt.Fprintf(h.opts.Out, "\nfatal: %s\n", err.Error())
	h.PrintState()
	h.opts.Exit(err.exitCode())
}

// PrintState dumps cursor values, the evacuated and free regions of
// to-space, the root list (dereferencing managed roots), and aggregate
// counters (spec §4.8). At most opts.StatsObjectsToDump objects are dumped
// per region.
func (h *Heap) PrintState() {
	w := h.opts.Out

	fmt.Fprintln(w, "------------------------------------------------------------")
	fmt.Fprintln(w, "Garbage collector variables:")
	fmt.Fprintf(w, "from: %#x  to: %#x\n", h.fromBegin, h.toBegin)
	fmt.Fprintf(w, "scan: %#x  next: %#x  limit: %#x\n", h.scan, h.next, h.limit)

	fmt.Fprintln(w, "\nEvacuated region:")
	h.dumpObjects(h.toBegin, h.next)

	fmt.Fprintln(w, "\nFree region (reserved for this cycle's allocations):")
	h.dumpObjects(h.limit, h.toBegin+h.halfSize())

	h.printRoots()

	fmt.Fprintf(w, "\nResident: %s (%d objects)\n",
		bytesize.New(float64(h.residentBytes)), h.residentObjects)
	fmt.Fprintf(w, "Free: %s\n", bytesize.New(float64(h.limit-h.next)))
}

// PrintStats emits the aggregate totals spec §4.8 lists: bytes/objects
// allocated over the collector's lifetime, GC cycles, maximum residency,
// read/write counts, and barrier activations.
func (h *Heap) PrintStats() {
	w := h.opts.Out
	s := h.Stats()

	fmt.Fprintf(w, "Total memory allocation:  %s (%d objects)\n", bytesize.New(float64(s.TotalBytes)), s.TotalObjects)
	fmt.Fprintf(w, "Total GC cycles count:    %d\n", s.Cycles)
	fmt.Fprintf(w, "Maximum residency:        %s (%d objects)\n", bytesize.New(float64(s.MaxResidentBytes)), s.MaxResidentObjects)
	fmt.Fprintf(w, "Total memory use:         %d reads, %d writes\n", s.ReadOps, s.WriteOps)
	fmt.Fprintf(w, "Read barrier activation:  %d activation(s)\n", s.ReadBarrierActivations)
	fmt.Fprintf(w, "Write barrier activation: %d activation(s)\n", s.WriteBarrierActivations)
}

// dumpObjects walks objects from start to end, printing at most
// opts.StatsObjectsToDump of them. Each dumped object includes a CRC-16 of
// its header+fields bytes so a torn or corrupted dump (e.g. a snapshot
// taken mid-evacuation) is detectable by comparing two dumps of the same
// object, the same way tinygo uses crc16 to verify a flashed firmware image
// rather than trusting the transfer blindly.
func (h *Heap) dumpObjects(start, end int) {
	w := h.opts.Out
	p := start
	dumped := 0

	for p < end && dumped < h.opts.StatsObjectsToDump {
		header := h.readHeader(p)
		size := header.CellSize()

		fmt.Fprintf(w, "  object at +%#x { tag: %s, fields: %d, crc16: %#04x\n",
			p, header.Tag(), header.FieldCount(), crc16.Checksum(h.arena[p:p+size], crc16.MakeTable(crc16.CRC16_XMODEM)))

		for i := 0; i < header.FieldCount(); i++ {
			fmt.Fprintf(w, "    field #%d: %#x\n", i, h.readField(p, i))
		}
		fmt.Fprintln(w, "  }")

		p += size
		dumped++
	}
}

// printRoots prints each registered root slot. If it currently holds a
// managed pointer, the pointed-to object is dumped; otherwise the raw word
// value is printed.
func (h *Heap) printRoots() {
	w := h.opts.Out
	fmt.Fprintln(w, "\nRoots:")

	i := 1
	h.roots.Each(func(slot *Word) {
		fmt.Fprintf(w, "Root #%d:\n", i)
		i++

		p := *slot
		if h.IsManaged(p) {
			off, _ := h.toOffset(p)
			header := h.readHeader(off)
			fmt.Fprintf(w, "  object at +%#x { tag: %s, fields: %d }\n", off, header.Tag(), header.FieldCount())
		} else {
			fmt.Fprintf(w, "  %#x\n", p)
		}
	})
}
