package matrix

// Symmetric is an n×n symmetric matrix storing only the lower triangle:
// n(n+1)/2 cells instead of n². Cell (i,j) with i ≥ j lives at index
// i(i+1)/2 + j; (i,j) with i < j reads the mirrored cell.
type Symmetric[T any] struct {
	n     int
	cells []T
}

// NewSymmetric returns an n×n symmetric matrix of zero values.
func NewSymmetric[T any](n int) (*Symmetric[T], error) {
	if n <= 0 {
		return nil, ErrBadDimension
	}

	return &Symmetric[T]{n: n, cells: make([]T, n*(n+1)/2)}, nil
}

// Order reports n.
func (m *Symmetric[T]) Order() int { return m.n }

// Stored reports the number of cells actually allocated.
func (m *Symmetric[T]) Stored() int { return len(m.cells) }

// index maps (i,j) onto the packed lower triangle.
func (m *Symmetric[T]) index(i, j int) int {
	if i < j {
		i, j = j, i
	}

	return i*(i+1)/2 + j
}

// Get returns cell (i,j) == cell (j,i). O(1).
func (m *Symmetric[T]) Get(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return zero, ErrIndexRange
	}

	return m.cells[m.index(i, j)], nil
}

// Set overwrites cell (i,j), and therefore (j,i) as well. O(1).
func (m *Symmetric[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrIndexRange
	}
	m.cells[m.index(i, j)] = v

	return nil
}

// Region selects which triangle a Triangular matrix stores.
type Region int

const (
	// Lower stores cells with i ≥ j.
	Lower Region = iota
	// Upper stores cells with i ≤ j.
	Upper
)

// Triangular is an n×n triangular matrix: the stored triangle is packed
// like Symmetric, the other region reads a single shared constant.
type Triangular[T comparable] struct {
	n        int
	region   Region
	constant T // value of every cell outside the stored triangle
	cells    []T
}

// NewTriangular returns an n×n triangular matrix whose unstored region
// reads constant.
func NewTriangular[T comparable](n int, region Region, constant T) (*Triangular[T], error) {
	if n <= 0 {
		return nil, ErrBadDimension
	}

	return &Triangular[T]{
		n:        n,
		region:   region,
		constant: constant,
		cells:    make([]T, n*(n+1)/2),
	}, nil
}

// Order reports n.
func (m *Triangular[T]) Order() int { return m.n }

// inRegion reports whether (i,j) lies in the stored triangle.
func (m *Triangular[T]) inRegion(i, j int) bool {
	if m.region == Lower {
		return i >= j
	}

	return i <= j
}

// index maps an in-region (i,j) onto the packed triangle. Upper storage
// mirrors the coordinates so the same row-prefix formula applies.
func (m *Triangular[T]) index(i, j int) int {
	if m.region == Upper {
		i, j = j, i
	}

	return i*(i+1)/2 + j
}

// Get returns cell (i,j); outside the stored region it returns the
// region constant. O(1).
func (m *Triangular[T]) Get(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return zero, ErrIndexRange
	}
	if !m.inRegion(i, j) {
		return m.constant, nil
	}

	return m.cells[m.index(i, j)], nil
}

// Set overwrites cell (i,j). Writing into the unstored region is allowed
// only when v equals the region constant (a no-op); anything else
// returns ErrOutOfRegion.
func (m *Triangular[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrIndexRange
	}
	if !m.inRegion(i, j) {
		if v == m.constant {
			return nil
		}

		return ErrOutOfRegion
	}
	m.cells[m.index(i, j)] = v

	return nil
}

// Tridiagonal is an n×n band matrix storing the main diagonal and its
// two neighbors in 3n-2 cells. Cell (i,j) with |i-j| ≤ 1 lives at index
// 2i + j; everything else is zero.
type Tridiagonal[T comparable] struct {
	n     int
	cells []T
}

// NewTridiagonal returns an n×n tridiagonal matrix of zero values.
func NewTridiagonal[T comparable](n int) (*Tridiagonal[T], error) {
	if n <= 0 {
		return nil, ErrBadDimension
	}

	return &Tridiagonal[T]{n: n, cells: make([]T, 3*n-2)}, nil
}

// Order reports n.
func (m *Tridiagonal[T]) Order() int { return m.n }

// Stored reports the number of cells actually allocated: 3n-2.
func (m *Tridiagonal[T]) Stored() int { return len(m.cells) }

// Get returns cell (i,j); off the band it is the zero value. O(1).
func (m *Tridiagonal[T]) Get(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return zero, ErrIndexRange
	}
	if i-j > 1 || j-i > 1 {
		return zero, nil
	}

	return m.cells[2*i+j], nil
}

// Set overwrites cell (i,j) on the band. Writing the zero value off the
// band is a no-op; any other value there returns ErrOutOfRegion.
func (m *Tridiagonal[T]) Set(i, j int, v T) error {
	var zero T
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrIndexRange
	}
	if i-j > 1 || j-i > 1 {
		if v == zero {
			return nil
		}

		return ErrOutOfRegion
	}
	m.cells[2*i+j] = v

	return nil
}
