package matrix

// Triple is one non-zero cell of a Sparse matrix.
type Triple[T comparable] struct {
	Row, Col int
	Value    T
}

// Sparse is a sparse matrix stored as a triple table: only non-zero
// cells are kept, sorted row-major (by row, then column). Setting a cell
// to the zero value removes its triple, so the table never stores
// zeroes.
type Sparse[T comparable] struct {
	rows, cols int
	tri        []Triple[T]
}

// NewSparse returns an empty rows×cols sparse matrix.
func NewSparse[T comparable](rows, cols int) (*Sparse[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimension
	}

	return &Sparse[T]{rows: rows, cols: cols}, nil
}

// Rows reports the row count.
func (m *Sparse[T]) Rows() int { return m.rows }

// Cols reports the column count.
func (m *Sparse[T]) Cols() int { return m.cols }

// NumNonZero reports the number of stored triples.
func (m *Sparse[T]) NumNonZero() int { return len(m.tri) }

// Triples returns a copy of the triple table in row-major order.
func (m *Sparse[T]) Triples() []Triple[T] {
	out := make([]Triple[T], len(m.tri))
	copy(out, m.tri)

	return out
}

// locate finds the table position of (i,j): pos is where the triple is
// or would be inserted, found tells which.
func (m *Sparse[T]) locate(i, j int) (pos int, found bool) {
	// Binary search over the row-major order.
	lo, hi := 0, len(m.tri)
	for lo < hi {
		mid := lo + (hi-lo)/2
		t := m.tri[mid]
		if t.Row < i || (t.Row == i && t.Col < j) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(m.tri) && m.tri[lo].Row == i && m.tri[lo].Col == j {
		return lo, true
	}

	return lo, false
}

// Get returns cell (i,j); absent cells read the zero value.
//
// Complexity: Time O(log t).
func (m *Sparse[T]) Get(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return zero, ErrIndexRange
	}
	if pos, found := m.locate(i, j); found {
		return m.tri[pos].Value, nil
	}

	return zero, nil
}

// Set writes cell (i,j), keeping the table sorted. Writing the zero
// value deletes the triple if present; otherwise the triple is updated
// in place or inserted at its row-major position.
//
// Complexity: Time O(t) worst case for the shift.
func (m *Sparse[T]) Set(i, j int, v T) error {
	var zero T
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrIndexRange
	}
	pos, found := m.locate(i, j)
	switch {
	case found && v == zero:
		m.tri = append(m.tri[:pos], m.tri[pos+1:]...)
	case found:
		m.tri[pos].Value = v
	case v == zero:
		// Nothing stored and nothing to store.
	default:
		m.tri = append(m.tri, Triple[T]{})
		copy(m.tri[pos+1:], m.tri[pos:])
		m.tri[pos] = Triple[T]{Row: i, Col: j, Value: v}
	}

	return nil
}

// Transpose returns the transposed matrix using the simple column-scan
// algorithm: for each source column in order, emit its triples with row
// and column swapped. The output is row-major sorted by construction.
//
// Complexity: Time O(cols·t), Space O(t).
func (m *Sparse[T]) Transpose() *Sparse[T] {
	dest := &Sparse[T]{
		rows: m.cols,
		cols: m.rows,
		tri:  make([]Triple[T], 0, len(m.tri)),
	}
	for col := 0; col < m.cols; col++ {
		for _, t := range m.tri {
			if t.Col == col {
				dest.tri = append(dest.tri, Triple[T]{Row: t.Col, Col: t.Row, Value: t.Value})
			}
		}
	}

	return dest
}

// FastTranspose returns the transposed matrix in a single pass over the
// triples. It first counts the triples per source column, prefix-sums
// the counts into starting positions, then drops every triple directly
// into its final slot.
//
// Complexity: Time O(cols + t), Space O(cols + t).
func (m *Sparse[T]) FastTranspose() *Sparse[T] {
	dest := &Sparse[T]{
		rows: m.cols,
		cols: m.rows,
		tri:  make([]Triple[T], len(m.tri)),
	}
	if len(m.tri) == 0 {
		return dest
	}

	// 1) Count non-zeros per source column.
	count := make([]int, m.cols)
	for _, t := range m.tri {
		count[t.Col]++
	}
	// 2) Prefix-sum into the first destination index of each column.
	pos := make([]int, m.cols)
	for col := 1; col < m.cols; col++ {
		pos[col] = pos[col-1] + count[col-1]
	}
	// 3) Place each triple at its column's next free slot.
	for _, t := range m.tri {
		p := pos[t.Col]
		pos[t.Col]++
		dest.tri[p] = Triple[T]{Row: t.Col, Col: t.Row, Value: t.Value}
	}

	return dest
}
