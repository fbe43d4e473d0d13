package list

import "errors"

// Sentinel errors for the list containers.
var (
	// ErrIndexRange indicates a position outside the valid range.
	ErrIndexRange = errors.New("list: index out of range")

	// ErrFull indicates an insert into an ArrayList at capacity.
	ErrFull = errors.New("list: full")
)

// ArrayList is a bounded sequential list over a pre-allocated array.
// Insertion keeps existing order by shifting the tail right; deletion
// shifts it left.
type ArrayList[T comparable] struct {
	elems []T
	n     int
}

// NewArrayList returns an empty ArrayList with the given fixed capacity.
func NewArrayList[T comparable](capacity int) *ArrayList[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &ArrayList[T]{elems: make([]T, capacity)}
}

// Len reports the number of stored elements.
func (l *ArrayList[T]) Len() int { return l.n }

// Cap reports the fixed capacity.
func (l *ArrayList[T]) Cap() int { return len(l.elems) }

// Get returns the element at position i.
func (l *ArrayList[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.n {
		return zero, ErrIndexRange
	}

	return l.elems[i], nil
}

// Set overwrites the element at position i.
func (l *ArrayList[T]) Set(i int, v T) error {
	if i < 0 || i >= l.n {
		return ErrIndexRange
	}
	l.elems[i] = v

	return nil
}

// Insert places v at position i (0 ≤ i ≤ Len), shifting the tail right.
// O(n).
func (l *ArrayList[T]) Insert(i int, v T) error {
	if i < 0 || i > l.n {
		return ErrIndexRange
	}
	if l.n == len(l.elems) {
		return ErrFull
	}
	copy(l.elems[i+1:l.n+1], l.elems[i:l.n])
	l.elems[i] = v
	l.n++

	return nil
}

// Append places v after the last element.
func (l *ArrayList[T]) Append(v T) error { return l.Insert(l.n, v) }

// Delete removes the element at position i, shifting the tail left. O(n).
func (l *ArrayList[T]) Delete(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.n {
		return zero, ErrIndexRange
	}
	v := l.elems[i]
	copy(l.elems[i:l.n-1], l.elems[i+1:l.n])
	l.n--
	l.elems[l.n] = zero

	return v, nil
}

// IndexOf reports the position of the first element equal to v, or -1.
func (l *ArrayList[T]) IndexOf(v T) int {
	for i := 0; i < l.n; i++ {
		if l.elems[i] == v {
			return i
		}
	}

	return -1
}

// Slice returns a copy of the stored elements in order.
func (l *ArrayList[T]) Slice() []T {
	out := make([]T, l.n)
	copy(out, l.elems[:l.n])

	return out
}

// Difference removes from la every element that also occurs in lb,
// preserving the order of the survivors: la ← la \ lb.
//
// Complexity: Time O(la.Len · lb.Len), Space O(1), matching the course's
// sequential-scan formulation.
func Difference[T comparable](la, lb *ArrayList[T]) {
	for i := 0; i < la.n; {
		if lb.IndexOf(la.elems[i]) >= 0 {
			_, _ = la.Delete(i) // in range by construction
		} else {
			i++
		}
	}
}
