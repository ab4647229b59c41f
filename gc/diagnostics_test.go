package gc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintStateDoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHeap(128, Incremental)
	h.SetOut(&buf)

	var root Word = h.Alloc(TagCons, []Word{Word(1), Word(0)})
	h.PushRoot(&root)

	assert.NotPanics(t, func() { h.PrintState() })
	assert.Contains(t, buf.String(), "Garbage collector variables")
	assert.Contains(t, buf.String(), "Roots:")

	h.PopRoot(&root)
}

func TestPrintStatsDoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHeap(128, Incremental)
	h.SetOut(&buf)

	h.Alloc(TagRef, []Word{Word(1)})

	assert.NotPanics(t, func() { h.PrintStats() })
	out := buf.String()
	assert.Contains(t, out, "Total memory allocation")
	assert.Contains(t, out, "Total GC cycles count")
	assert.Contains(t, out, "Read barrier activation")
}

func TestDumpObjectsRespectsCap(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxAllocSize = 512
	opts.StatsObjectsToDump = 2
	opts.Exit = func(code int) { panic(fatalSignal{code}) }
	var buf bytes.Buffer
	opts.Out = &buf
	h := NewHeap(opts)
	h.init()

	var root Word = h.Alloc(TagEmpty, nil)
	h.PushRoot(&root)
	for i := 0; i < 5; i++ {
		root = h.Alloc(TagCons, []Word{Word(i), root})
	}
	h.collect()

	buf.Reset()
	h.PrintState()

	// Right after a flip, limit == toBegin+halfSize (nothing has narrowed it
	// yet), so the free region is empty: the evacuated region dump
	// contributes lines capped at StatsObjectsToDump (2), and the single
	// managed root adds one more.
	require.Equal(t, 3, strings.Count(buf.String(), "object at"))

	h.PopRoot(&root)
}
