package gc

import "fmt"

// fatalSignal is panicked by the test Exit function installed by
// newTestHeap so fatal conditions can be asserted with require.PanicsWithValue
// instead of killing the test binary.
type fatalSignal struct {
	code int
}

func (f fatalSignal) String() string {
	return fmt.Sprintf("exit(%d)", f.code)
}

// newTestHeap builds a Heap with a discarding output writer and an Exit
// function that panics a fatalSignal instead of calling os.Exit, so fatal
// paths are observable from ordinary table-driven tests.
func newTestHeap(halfSize int, mode Mode) *Heap {
	opts := DefaultOptions()
	opts.MaxAllocSize = halfSize
	opts.Mode = mode
	opts.Out = discard{}
	opts.Exit = func(code int) { panic(fatalSignal{code}) }
	return NewHeap(opts)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
