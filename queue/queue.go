package queue

import "errors"

// Sentinel errors shared by the queue containers.
var (
	// ErrEmpty indicates Dequeue or Front on an empty queue.
	ErrEmpty = errors.New("queue: empty")

	// ErrFull indicates Enqueue on a full RingQueue.
	ErrFull = errors.New("queue: full")
)

// node is one cell of a LinkedQueue.
type node[T any] struct {
	val  T
	next *node[T]
}

// LinkedQueue is an unbounded FIFO container backed by a singly linked
// list with front and rear pointers. The zero value is ready for use.
type LinkedQueue[T any] struct {
	front *node[T]
	rear  *node[T]
	n     int
}

// Len reports the number of queued elements.
func (q *LinkedQueue[T]) Len() int { return q.n }

// Empty reports whether the queue holds no elements.
func (q *LinkedQueue[T]) Empty() bool { return q.n == 0 }

// Enqueue appends v at the rear. O(1).
func (q *LinkedQueue[T]) Enqueue(v T) {
	nd := &node[T]{val: v}
	if q.rear == nil {
		q.front = nd
	} else {
		q.rear.next = nd
	}
	q.rear = nd
	q.n++
}

// Front returns the front element without removing it.
func (q *LinkedQueue[T]) Front() (T, error) {
	var zero T
	if q.front == nil {
		return zero, ErrEmpty
	}

	return q.front.val, nil
}

// Dequeue removes and returns the front element. O(1).
func (q *LinkedQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.front == nil {
		return zero, ErrEmpty
	}
	v := q.front.val
	q.front = q.front.next
	if q.front == nil {
		q.rear = nil
	}
	q.n--

	return v, nil
}

// RingQueue is a fixed-capacity FIFO container over a circular array.
// One slot is kept free to distinguish full from empty:
// empty ⇔ front == rear, full ⇔ (rear+1) % len == front.
type RingQueue[T any] struct {
	elems []T
	front int // index of the front element
	rear  int // index one past the last element
}

// NewRing returns a RingQueue that can hold capacity elements.
func NewRing[T any](capacity int) *RingQueue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &RingQueue[T]{elems: make([]T, capacity+1)}
}

// Cap reports the maximum number of elements the queue can hold.
func (q *RingQueue[T]) Cap() int { return len(q.elems) - 1 }

// Len reports the number of queued elements.
func (q *RingQueue[T]) Len() int {
	return (q.rear - q.front + len(q.elems)) % len(q.elems)
}

// Empty reports whether the queue holds no elements.
func (q *RingQueue[T]) Empty() bool { return q.front == q.rear }

// Full reports whether the queue is at capacity.
func (q *RingQueue[T]) Full() bool {
	return (q.rear+1)%len(q.elems) == q.front
}

// Enqueue appends v at the rear, or returns ErrFull.
func (q *RingQueue[T]) Enqueue(v T) error {
	if q.Full() {
		return ErrFull
	}
	q.elems[q.rear] = v
	q.rear = (q.rear + 1) % len(q.elems)

	return nil
}

// Front returns the front element without removing it.
func (q *RingQueue[T]) Front() (T, error) {
	var zero T
	if q.Empty() {
		return zero, ErrEmpty
	}

	return q.elems[q.front], nil
}

// Dequeue removes and returns the front element.
func (q *RingQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.Empty() {
		return zero, ErrEmpty
	}
	v := q.elems[q.front]
	q.elems[q.front] = zero
	q.front = (q.front + 1) % len(q.elems)

	return v, nil
}
