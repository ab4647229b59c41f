// Package snapshot exports durable heap-inspection artifacts the original
// runtime never produced (it only ever printed state to stdout): an Intel
// HEX dump of a to-space byte range, and an ar archive bundling that dump
// together with textual stats/roots output for attaching to a bug report.
// Neither format participates in collection semantics; this package only
// ever reads heap bytes, never mutates them.
package snapshot

import (
	"github.com/marcinbor85/gohex"
)

// HexDump renders region as Intel HEX records, with addresses starting at
// base. region is typically a to-space byte slice taken from a Heap (e.g.
// via gc.Heap.ToSpaceBytes, see gc/heap.go), and base the offset that
// range begins at within the heap's arena, so the resulting file's
// addresses line up with PrintState's dumps.
func HexDump(region []byte, base uint32) string {
	mem := gohex.NewMemory()
	// AddBinary never fails for a contiguous, non-overlapping range; any
	// error here would indicate region/base describe an address space the
	// Intel HEX format itself cannot represent.
	if err := mem.AddBinary(base, region); err != nil {
		return ""
	}
	return mem.DumpIntelHex()
}
