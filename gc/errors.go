package gc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrKind enumerates the collector's fatal error conditions. All of them
// are unrecoverable in-process (spec §7): there is no exception surface,
// only a diagnostic dump followed by termination.
type ErrKind int

const (
	// ErrOutOfMemory covers an oversized allocation request, a collection
	// cycle that failed to free enough space, and a new cycle starting
	// while the grey region is still non-empty (the previous cycle could
	// not keep up).
	ErrOutOfMemory ErrKind = iota
	// ErrRootUnderflow is PopRoot called on an empty root stack.
	ErrRootUnderflow
	// ErrRootMismatch is PopRoot called with a slot that does not match
	// the top of the root stack (spec §9 open question, resolved: fail
	// loudly rather than silently popping the wrong entry).
	ErrRootMismatch
)

func (k ErrKind) String() string {
	switch k {
	case ErrOutOfMemory:
		return "out of memory"
	case ErrRootUnderflow:
		return "root stack underflow"
	case ErrRootMismatch:
		return "pop_root argument does not match top of root stack"
	default:
		return "unknown fatal error"
	}
}

// FatalError describes one of the collector's unrecoverable conditions. The
// mutator never receives this as a Go error it can branch on in the
// incremental-allocation path; alloc/push_root/pop_root are treated as
// infallible by callers and any fault surfaces as process termination
// (spec §7), mediated by fatal() in diagnostics.go.
type FatalError struct {
	Kind ErrKind
	Msg  string
}

func (e FatalError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// exitCode maps a fatal condition to a process exit status. Out-of-memory
// conditions report the OS-level ENOMEM errno, exactly as the original's
// raise_no_memory_error() set errno before calling perror/exit; root-stack
// faults use a plain non-zero status, matching the source's `exit(-1)`.
func (e FatalError) exitCode() int {
	switch e.Kind {
	case ErrOutOfMemory:
		return int(unix.ENOMEM)
	default:
		return 1
	}
}
