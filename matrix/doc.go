// Package matrix implements the array chapter of the course: a dense
// row-major matrix and the compressed storage schemes for matrices whose
// shape makes most cells redundant.
//
// Storage schemes (n×n unless noted):
//
//   - Dense[T]       - r×c, row-major, r·c cells.
//   - Symmetric[T]   - stores only the lower triangle, n(n+1)/2 cells;
//     Set(i,j,v) is indistinguishable from Set(j,i,v).
//   - Triangular[T]  - Lower or Upper; stores the triangle plus one
//     shared constant for the other region.
//   - Tridiagonal[T] - stores the three diagonals, 3n-2 cells.
//   - Sparse[T]      - ordered triple table (row, col, value) holding
//     only non-zero cells; includes the simple O(c·t) and the fast
//     O(c+t) transpose, t = number of stored triples.
//
// All indices are 0-based and bounds-checked; violations return
// ErrIndexRange. Writing a non-constant value outside a compressed
// region returns ErrOutOfRegion; writing the constant there is a no-op.
package matrix
