// Package telemetry streams collector statistics over a serial port. It
// targets the same deployment shape tinygo itself does: a cooperative,
// single-threaded mutator running on a microcontroller whose only
// connection to the outside world is a UART. Nothing here runs on a
// background goroutine or timer — the caller decides when to report,
// preserving the single-threaded cooperative model the collector requires
// (spec §5: no reentrancy, no preemption points).
package telemetry

import (
	"fmt"

	"go.bug.st/serial"

	"github.com/stella-lang/stella-gc/gc"
)

// Reporter writes periodic, caller-driven stats lines to an open serial
// port.
type Reporter struct {
	port serial.Port
}

// Open opens portName at baud and returns a Reporter writing to it. The
// caller owns the Reporter's lifetime and must call Close when done.
func Open(portName string, baud int) (*Reporter, error) {
	port, err := serial.Open(portName, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, err
	}
	return &Reporter{port: port}, nil
}

// Close releases the underlying serial port.
func (r *Reporter) Close() error {
	return r.port.Close()
}

// Report writes a single compact stats line, suitable for a host-side
// logger tailing the port. The caller decides the cadence (e.g. once per N
// allocations, or once per GC cycle) — Report itself performs no I/O
// beyond the one write.
func (r *Reporter) Report(s gc.Stats) error {
	_, err := fmt.Fprintf(r.port,
		"alloc=%d bytes=%d cycles=%d resident=%d/%d maxresident=%d/%d reads=%d writes=%d rbarrier=%d wbarrier=%d\n",
		s.TotalObjects, s.TotalBytes, s.Cycles,
		s.ResidentObjects, s.ResidentBytes,
		s.MaxResidentObjects, s.MaxResidentBytes,
		s.ReadOps, s.WriteOps,
		s.ReadBarrierActivations, s.WriteBarrierActivations,
	)
	return err
}
