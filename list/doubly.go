package list

// dnode is one cell of a DoublyList.
type dnode[T any] struct {
	val  T
	prev *dnode[T]
	next *dnode[T]
}

// DoublyList is a doubly linked list with head and tail sentinels.
// Both ends support O(1) insertion and removal; positional access walks
// from the nearer sentinel.
type DoublyList[T any] struct {
	head *dnode[T] // sentinel before the first element
	tail *dnode[T] // sentinel after the last element
	n    int
}

// NewDoubly returns an empty DoublyList.
func NewDoubly[T any]() *DoublyList[T] {
	l := &DoublyList[T]{head: &dnode[T]{}, tail: &dnode[T]{}}
	l.head.next = l.tail
	l.tail.prev = l.head

	return l
}

// Len reports the number of stored elements.
func (l *DoublyList[T]) Len() int { return l.n }

// nodeAt returns the node at position i (0 ≤ i < Len), walking from
// whichever sentinel is closer.
func (l *DoublyList[T]) nodeAt(i int) *dnode[T] {
	if i < l.n/2 {
		p := l.head.next
		for ; i > 0; i-- {
			p = p.next
		}

		return p
	}
	p := l.tail.prev
	for i = l.n - 1 - i; i > 0; i-- {
		p = p.prev
	}

	return p
}

// insertBefore links a new node holding v before at.
func (l *DoublyList[T]) insertBefore(at *dnode[T], v T) {
	nd := &dnode[T]{val: v, prev: at.prev, next: at}
	at.prev.next = nd
	at.prev = nd
	l.n++
}

// Get returns the element at position i. O(min(i, n-i)).
func (l *DoublyList[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.n {
		return zero, ErrIndexRange
	}

	return l.nodeAt(i).val, nil
}

// Set overwrites the element at position i.
func (l *DoublyList[T]) Set(i int, v T) error {
	if i < 0 || i >= l.n {
		return ErrIndexRange
	}
	l.nodeAt(i).val = v

	return nil
}

// Insert places v at position i (0 ≤ i ≤ Len).
func (l *DoublyList[T]) Insert(i int, v T) error {
	if i < 0 || i > l.n {
		return ErrIndexRange
	}
	if i == l.n {
		l.insertBefore(l.tail, v)
	} else {
		l.insertBefore(l.nodeAt(i), v)
	}

	return nil
}

// PushFront places v before the first element. O(1).
func (l *DoublyList[T]) PushFront(v T) { l.insertBefore(l.head.next, v) }

// PushBack places v after the last element. O(1).
func (l *DoublyList[T]) PushBack(v T) { l.insertBefore(l.tail, v) }

// Delete removes and returns the element at position i.
func (l *DoublyList[T]) Delete(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.n {
		return zero, ErrIndexRange
	}
	nd := l.nodeAt(i)
	nd.prev.next = nd.next
	nd.next.prev = nd.prev
	l.n--

	return nd.val, nil
}

// Slice returns the stored elements in order.
func (l *DoublyList[T]) Slice() []T {
	out := make([]T, 0, l.n)
	for p := l.head.next; p != l.tail; p = p.next {
		out = append(out, p.val)
	}

	return out
}
