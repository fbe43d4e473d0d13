package stack

import "errors"

// Sentinel errors shared by the stack containers.
var (
	// ErrEmpty indicates Pop or Top on an empty stack.
	ErrEmpty = errors.New("stack: empty")

	// ErrFull indicates Push on a fixed-capacity stack with no free slot.
	ErrFull = errors.New("stack: full")
)

// Stack is a growable LIFO container backed by a slice.
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	elems []T
}

// New returns an empty Stack with capacity hint cap.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[T]{elems: make([]T, 0, capacity)}
}

// Len reports the number of stacked elements.
func (s *Stack[T]) Len() int { return len(s.elems) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.elems) == 0 }

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) { s.elems = append(s.elems, v) }

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	var zero T
	if len(s.elems) == 0 {
		return zero, ErrEmpty
	}

	return s.elems[len(s.elems)-1], nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.elems) == 0 {
		return zero, ErrEmpty
	}
	v := s.elems[len(s.elems)-1]
	s.elems[len(s.elems)-1] = zero // release the reference
	s.elems = s.elems[:len(s.elems)-1]

	return v, nil
}

// Clear removes all elements, keeping the allocated capacity.
func (s *Stack[T]) Clear() {
	var zero T
	for i := range s.elems {
		s.elems[i] = zero
	}
	s.elems = s.elems[:0]
}

// linkedNode is one cell of a LinkedStack.
type linkedNode[T any] struct {
	val  T
	next *linkedNode[T]
}

// LinkedStack is a LIFO container backed by a singly linked list.
// The zero value is an empty stack ready for use.
type LinkedStack[T any] struct {
	top *linkedNode[T]
	n   int
}

// Len reports the number of stacked elements.
func (s *LinkedStack[T]) Len() int { return s.n }

// Empty reports whether the stack holds no elements.
func (s *LinkedStack[T]) Empty() bool { return s.n == 0 }

// Push places v on top of the stack.
func (s *LinkedStack[T]) Push(v T) {
	s.top = &linkedNode[T]{val: v, next: s.top}
	s.n++
}

// Top returns the top element without removing it.
func (s *LinkedStack[T]) Top() (T, error) {
	var zero T
	if s.top == nil {
		return zero, ErrEmpty
	}

	return s.top.val, nil
}

// Pop removes and returns the top element.
func (s *LinkedStack[T]) Pop() (T, error) {
	var zero T
	if s.top == nil {
		return zero, ErrEmpty
	}
	v := s.top.val
	s.top = s.top.next
	s.n--

	return v, nil
}
