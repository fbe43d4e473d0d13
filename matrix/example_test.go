package matrix_test

import (
	"fmt"

	"github.com/dastralib/dastra/matrix"
)

// ExampleSparse_FastTranspose transposes a triple table in one pass.
func ExampleSparse_FastTranspose() {
	m, _ := matrix.NewSparse[int](3, 4)
	_ = m.Set(0, 2, 5)
	_ = m.Set(2, 1, 7)

	for _, tr := range m.FastTranspose().Triples() {
		fmt.Println(tr.Row, tr.Col, tr.Value)
	}
	// Output:
	// 1 2 7
	// 2 0 5
}

// ExampleNewTriangular reads the unstored region as its constant.
func ExampleNewTriangular() {
	m, _ := matrix.NewTriangular[int](3, matrix.Lower, 0)
	_ = m.Set(2, 0, 9)

	v, _ := m.Get(2, 0)
	fmt.Println(v)
	v, _ = m.Get(0, 2)
	fmt.Println(v)
	// Output:
	// 9
	// 0
}
