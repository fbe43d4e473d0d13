package list

// CircularList is a circular singly linked list. A single rear pointer is
// kept; rear.next is the front, so both ends are reachable in O(1).
type CircularList[T any] struct {
	rear *snode[T]
	n    int
}

// NewCircular returns an empty CircularList.
func NewCircular[T any]() *CircularList[T] { return &CircularList[T]{} }

// Len reports the number of stored elements.
func (l *CircularList[T]) Len() int { return l.n }

// Append places v at the rear. O(1).
func (l *CircularList[T]) Append(v T) {
	nd := &snode[T]{val: v}
	if l.rear == nil {
		nd.next = nd
	} else {
		nd.next = l.rear.next
		l.rear.next = nd
	}
	l.rear = nd
	l.n++
}

// Slice returns the stored elements front to rear.
func (l *CircularList[T]) Slice() []T {
	out := make([]T, 0, l.n)
	if l.rear == nil {
		return out
	}
	p := l.rear.next
	for i := 0; i < l.n; i++ {
		out = append(out, p.val)
		p = p.next
	}

	return out
}

// Josephus plays the Josephus elimination game: n people numbered 1..n
// stand in a circle and every m-th person leaves until the circle is
// empty. The elimination order is returned. Counting restarts at the
// person after each elimination.
//
// Complexity: Time O(n·m), Space O(n).
func Josephus(n, m int) []int {
	if n <= 0 || m <= 0 {
		return nil
	}
	ring := NewCircular[int]()
	for i := 1; i <= n; i++ {
		ring.Append(i)
	}

	order := make([]int, 0, n)
	prev := ring.rear // node before the current count position
	for ring.n > 0 {
		// Advance m-1 steps; prev.next is the one to eliminate.
		for i := 1; i < m; i++ {
			prev = prev.next
		}
		victim := prev.next
		order = append(order, victim.val)
		prev.next = victim.next
		if victim == ring.rear {
			ring.rear = prev
		}
		ring.n--
		if ring.n == 0 {
			ring.rear = nil
		}
	}

	return order
}
