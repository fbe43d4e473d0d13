package list

// snode is one cell of a SinglyList or CircularList.
type snode[T any] struct {
	val  T
	next *snode[T]
}

// SinglyList is a singly linked list with a data-free sentinel head, so
// insertion and deletion never special-case the first element.
type SinglyList[T any] struct {
	head *snode[T] // sentinel
	n    int
}

// NewSingly returns an empty SinglyList.
func NewSingly[T any]() *SinglyList[T] {
	return &SinglyList[T]{head: &snode[T]{}}
}

// Len reports the number of stored elements.
func (l *SinglyList[T]) Len() int { return l.n }

// nodeBefore returns the node preceding position i, walking from the
// sentinel. Valid for 0 ≤ i ≤ Len.
func (l *SinglyList[T]) nodeBefore(i int) *snode[T] {
	p := l.head
	for ; i > 0; i-- {
		p = p.next
	}

	return p
}

// Get returns the element at position i. O(n).
func (l *SinglyList[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.n {
		return zero, ErrIndexRange
	}

	return l.nodeBefore(i).next.val, nil
}

// Insert places v at position i (0 ≤ i ≤ Len). O(n).
func (l *SinglyList[T]) Insert(i int, v T) error {
	if i < 0 || i > l.n {
		return ErrIndexRange
	}
	prev := l.nodeBefore(i)
	prev.next = &snode[T]{val: v, next: prev.next}
	l.n++

	return nil
}

// Append places v after the last element. O(n).
func (l *SinglyList[T]) Append(v T) { _ = l.Insert(l.n, v) }

// Delete removes and returns the element at position i. O(n).
func (l *SinglyList[T]) Delete(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.n {
		return zero, ErrIndexRange
	}
	prev := l.nodeBefore(i)
	nd := prev.next
	prev.next = nd.next
	l.n--

	return nd.val, nil
}

// Slice returns the stored elements in order.
func (l *SinglyList[T]) Slice() []T {
	out := make([]T, 0, l.n)
	for p := l.head.next; p != nil; p = p.next {
		out = append(out, p.val)
	}

	return out
}

// Reverse reverses the list in place by re-linking, O(n) time, O(1)
// space.
func (l *SinglyList[T]) Reverse() {
	var prev *snode[T]
	p := l.head.next
	for p != nil {
		next := p.next
		p.next = prev
		prev = p
		p = next
	}
	l.head.next = prev
}
