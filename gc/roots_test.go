package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootPushPopLIFO(t *testing.T) {
	h := newTestHeap(64, Incremental)

	var a, b, c Word
	h.PushRoot(&a)
	h.PushRoot(&b)
	h.PushRoot(&c)
	require.Equal(t, 3, h.RootCount())

	h.PopRoot(&c)
	h.PopRoot(&b)
	h.PopRoot(&a)
	assert.Equal(t, 0, h.RootCount())
}

func TestRootPopUnderflowIsFatal(t *testing.T) {
	h := newTestHeap(64, Incremental)
	var a Word

	assert.PanicsWithValue(t, fatalSignal{code: 1}, func() {
		h.PopRoot(&a)
	})
}

func TestRootPopMismatchIsFatal(t *testing.T) {
	h := newTestHeap(64, Incremental)
	var a, b Word

	h.PushRoot(&a)

	assert.PanicsWithValue(t, fatalSignal{code: 1}, func() {
		h.PopRoot(&b)
	})

	// The mismatched pop must not have been applied to the stack.
	assert.Equal(t, 1, h.RootCount())
}

func TestRootsVisitsInInsertionOrder(t *testing.T) {
	h := newTestHeap(64, Incremental)
	var a, b, c Word = 1, 2, 3

	h.PushRoot(&a)
	h.PushRoot(&b)
	h.PushRoot(&c)

	var seen []Word
	h.Roots(func(slot *Word) {
		seen = append(seen, *slot)
	})

	assert.Equal(t, []Word{1, 2, 3}, seen)

	h.PopRoot(&c)
	h.PopRoot(&b)
	h.PopRoot(&a)
}
