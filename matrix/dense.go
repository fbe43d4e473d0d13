package matrix

// Dense is an r×c matrix stored row-major in a single slice, the mapping
// the whole chapter builds on: cell (i,j) lives at index i·c + j.
type Dense[T any] struct {
	rows, cols int
	cells      []T
}

// NewDense returns an r×c matrix of zero values.
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimension
	}

	return &Dense[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}, nil
}

// Rows reports the row count.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols reports the column count.
func (m *Dense[T]) Cols() int { return m.cols }

// inBounds reports whether (i,j) addresses a cell.
func (m *Dense[T]) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// Get returns cell (i,j). O(1).
func (m *Dense[T]) Get(i, j int) (T, error) {
	var zero T
	if !m.inBounds(i, j) {
		return zero, ErrIndexRange
	}

	return m.cells[i*m.cols+j], nil
}

// Set overwrites cell (i,j). O(1).
func (m *Dense[T]) Set(i, j int, v T) error {
	if !m.inBounds(i, j) {
		return ErrIndexRange
	}
	m.cells[i*m.cols+j] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.rows {
		return nil, ErrIndexRange
	}
	out := make([]T, m.cols)
	copy(out, m.cells[i*m.cols:(i+1)*m.cols])

	return out, nil
}
