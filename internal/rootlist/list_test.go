package rootlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyListPopAndTail(t *testing.T) {
	l := New[int]()
	assert.Equal(t, 0, l.Len())

	_, ok := l.PopTail()
	assert.False(t, ok)

	_, ok = l.Tail()
	assert.False(t, ok)
}

func TestPushTailThenPopTailIsLIFO(t *testing.T) {
	l := New[int]()
	l.PushTail(1)
	l.PushTail(2)
	l.PushTail(3)
	require.Equal(t, 3, l.Len())

	v, ok := l.Tail()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	for _, want := range []int{3, 2, 1} {
		got, ok := l.PopTail()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, l.Len())
}

func TestEachVisitsInInsertionOrder(t *testing.T) {
	l := New[string]()
	l.PushTail("a")
	l.PushTail("b")
	l.PushTail("c")

	var seen []string
	l.Each(func(s string) { seen = append(seen, s) })
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestPushPopInterleaved(t *testing.T) {
	l := New[int]()
	l.PushTail(1)
	v, ok := l.PopTail()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, l.Len())

	l.PushTail(2)
	l.PushTail(3)
	v, ok = l.PopTail()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, l.Len())
}

func TestListOfPointers(t *testing.T) {
	l := New[*int]()
	a, b := 1, 2
	l.PushTail(&a)
	l.PushTail(&b)

	top, ok := l.Tail()
	require.True(t, ok)
	assert.Same(t, &b, top)
}
