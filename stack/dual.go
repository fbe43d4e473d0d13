package stack

// Side selects one of the two stacks sharing a DualStack's array.
type Side int

const (
	// Left grows from index 0 upward.
	Left Side = iota
	// Right grows from the last index downward.
	Right
)

// DualStack packs two stacks into one fixed array. The left stack grows
// from the low end, the right stack from the high end; the structure is
// full only when the two tops meet, so the free space is shared instead
// of split in advance.
type DualStack[T any] struct {
	elems []T
	ltop  int // index of the next free slot for Left
	rtop  int // index of the next free slot for Right
}

// NewDual returns a DualStack with a shared capacity of size elements.
func NewDual[T any](size int) *DualStack[T] {
	if size < 0 {
		size = 0
	}

	return &DualStack[T]{elems: make([]T, size), ltop: 0, rtop: size - 1}
}

// Len reports the number of elements on the given side.
func (d *DualStack[T]) Len(side Side) int {
	if side == Left {
		return d.ltop
	}

	return len(d.elems) - 1 - d.rtop
}

// Push places v on the given side. Returns ErrFull when the two stacks
// have consumed the whole array.
func (d *DualStack[T]) Push(side Side, v T) error {
	if d.ltop > d.rtop {
		return ErrFull
	}
	if side == Left {
		d.elems[d.ltop] = v
		d.ltop++
	} else {
		d.elems[d.rtop] = v
		d.rtop--
	}

	return nil
}

// Pop removes and returns the top element of the given side.
func (d *DualStack[T]) Pop(side Side) (T, error) {
	var zero T
	if side == Left {
		if d.ltop == 0 {
			return zero, ErrEmpty
		}
		d.ltop--
		v := d.elems[d.ltop]
		d.elems[d.ltop] = zero

		return v, nil
	}
	if d.rtop == len(d.elems)-1 {
		return zero, ErrEmpty
	}
	d.rtop++
	v := d.elems[d.rtop]
	d.elems[d.rtop] = zero

	return v, nil
}
