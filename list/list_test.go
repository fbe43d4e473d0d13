package list_test

import (
	"testing"

	"github.com/dastralib/dastra/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArrayList_InsertDelete covers shifting inserts/deletes, bounds and
// the capacity sentinel.
func TestArrayList_InsertDelete(t *testing.T) {
	l := list.NewArrayList[int](4)
	require.NoError(t, l.Append(1))
	require.NoError(t, l.Append(3))
	require.NoError(t, l.Insert(1, 2)) // middle insert shifts 3 right
	assert.Equal(t, []int{1, 2, 3}, l.Slice())

	require.NoError(t, l.Insert(0, 0))
	assert.Equal(t, []int{0, 1, 2, 3}, l.Slice())
	assert.ErrorIs(t, l.Append(9), list.ErrFull)

	v, err := l.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{0, 2, 3}, l.Slice())

	assert.ErrorIs(t, l.Set(3, 9), list.ErrIndexRange)
	_, err = l.Get(-1)
	assert.ErrorIs(t, err, list.ErrIndexRange)
	_, err = l.Delete(3)
	assert.ErrorIs(t, err, list.ErrIndexRange)
	assert.ErrorIs(t, l.Insert(5, 9), list.ErrIndexRange)

	assert.Equal(t, 2, l.IndexOf(3))
	assert.Equal(t, -1, l.IndexOf(42))
}

// TestDifference removes every element of lb from la, keeping order.
func TestDifference(t *testing.T) {
	la := list.NewArrayList[int](8)
	for _, v := range []int{5, 1, 9, 3, 5, 7} {
		require.NoError(t, la.Append(v))
	}
	lb := list.NewArrayList[int](4)
	for _, v := range []int{5, 3} {
		require.NoError(t, lb.Append(v))
	}

	list.Difference(la, lb)
	assert.Equal(t, []int{1, 9, 7}, la.Slice())

	// Difference against an empty list is the identity.
	list.Difference(la, list.NewArrayList[int](0))
	assert.Equal(t, []int{1, 9, 7}, la.Slice())
}

// TestSinglyList exercises positional ops and in-place reversal.
func TestSinglyList(t *testing.T) {
	l := list.NewSingly[string]()
	l.Append("b")
	require.NoError(t, l.Insert(0, "a"))
	l.Append("c")
	assert.Equal(t, []string{"a", "b", "c"}, l.Slice())
	assert.Equal(t, 3, l.Len())

	v, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = l.Get(3)
	assert.ErrorIs(t, err, list.ErrIndexRange)

	v, err = l.Delete(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"b", "c"}, l.Slice())

	l.Append("d")
	l.Reverse()
	assert.Equal(t, []string{"d", "c", "b"}, l.Slice())

	empty := list.NewSingly[string]()
	empty.Reverse() // no-op, must not panic
	assert.Empty(t, empty.Slice())
}

// TestDoublyList exercises both-end pushes, positional access from both
// sentinels and deletion.
func TestDoublyList(t *testing.T) {
	l := list.NewDoubly[int]()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	require.NoError(t, l.Insert(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, l.Slice())

	// nodeAt walks from the tail for the upper half.
	v, err := l.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	v, err = l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, l.Set(1, 20))
	v, err = l.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)
	assert.Equal(t, []int{1, 3, 4}, l.Slice())

	_, err = l.Delete(3)
	assert.ErrorIs(t, err, list.ErrIndexRange)
	assert.ErrorIs(t, l.Insert(-1, 0), list.ErrIndexRange)
}

// TestCircularList_Append keeps rear.next pointing at the front.
func TestCircularList_Append(t *testing.T) {
	l := list.NewCircular[int]()
	assert.Empty(t, l.Slice())
	for i := 1; i <= 4; i++ {
		l.Append(i)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, l.Slice())
	assert.Equal(t, 4, l.Len())
}

// TestJosephus pins the classic n=5, m=3 elimination order and edge
// cases.
func TestJosephus(t *testing.T) {
	assert.Equal(t, []int{3, 1, 5, 2, 4}, list.Josephus(5, 3))
	assert.Equal(t, []int{1, 2, 3, 4}, list.Josephus(4, 1), "m=1 eliminates in order")
	assert.Equal(t, []int{1}, list.Josephus(1, 7))
	assert.Nil(t, list.Josephus(0, 3))
	assert.Nil(t, list.Josephus(3, 0))
}
