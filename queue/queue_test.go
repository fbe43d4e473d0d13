package queue_test

import (
	"testing"

	"github.com/dastralib/dastra/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinkedQueue_FIFO verifies ordering and the empty sentinel.
func TestLinkedQueue_FIFO(t *testing.T) {
	var q queue.LinkedQueue[int]
	assert.True(t, q.Empty())

	for _, v := range []int{1, 2, 3} {
		q.Enqueue(v)
	}
	assert.Equal(t, 3, q.Len())

	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, 1, front, "Front does not remove")

	for want := 1; want <= 3; want++ {
		v, deqErr := q.Dequeue()
		require.NoError(t, deqErr)
		assert.Equal(t, want, v)
	}

	_, err = q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmpty)

	// Rear pointer must reset: enqueue after drain still works.
	q.Enqueue(9)
	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

// TestRingQueue_WrapAround drives the circular indices past the end of
// the backing array several times.
func TestRingQueue_WrapAround(t *testing.T) {
	q := queue.NewRing[string](3)
	assert.Equal(t, 3, q.Cap())

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	require.NoError(t, q.Enqueue("c"))
	assert.True(t, q.Full())
	assert.ErrorIs(t, q.Enqueue("d"), queue.ErrFull)

	// Interleave dequeues and enqueues so indices wrap.
	for i := 0; i < 7; i++ {
		v, err := q.Dequeue()
		require.NoError(t, err)
		_ = v
		require.NoError(t, q.Enqueue("x"))
		assert.True(t, q.Full())
		assert.Equal(t, 3, q.Len())
	}

	for i := 0; i < 3; i++ {
		_, err := q.Dequeue()
		require.NoError(t, err)
	}
	assert.True(t, q.Empty())
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmpty)
	_, err = q.Front()
	assert.ErrorIs(t, err, queue.ErrEmpty)
}

// TestRingQueue_Order confirms FIFO order survives wraparound.
func TestRingQueue_Order(t *testing.T) {
	q := queue.NewRing[int](4)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	for _, x := range []int{3, 4, 5} {
		require.NoError(t, q.Enqueue(x))
	}

	var got []int
	for !q.Empty() {
		v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 3, 4, 5}, got)
}

// TestRingQueue_ZeroCapacity is always empty and always full.
func TestRingQueue_ZeroCapacity(t *testing.T) {
	q := queue.NewRing[int](0)
	assert.True(t, q.Empty())
	assert.True(t, q.Full())
	assert.ErrorIs(t, q.Enqueue(1), queue.ErrFull)
}
