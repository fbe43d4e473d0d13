// Package queue provides the two FIFO containers of the course.
//
//   - LinkedQueue[T] - unbounded, singly linked with a tail pointer, so
//     Enqueue and Dequeue are both O(1).
//   - RingQueue[T]   - fixed-capacity circular array using the
//     one-slot-free convention: the queue is full when
//     (rear+1) % size == front, so a queue created for capacity n
//     allocates n+1 slots.
//
// Both report underflow with ErrEmpty; RingQueue reports overflow with
// ErrFull.
package queue
