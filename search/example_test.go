package search_test

import (
	"fmt"

	"github.com/dastralib/dastra/search"
)

// ExampleBinary halves the search interval per comparison.
func ExampleBinary() {
	fmt.Println(search.Binary([]int{2, 5, 8, 11, 14}, 11))
	fmt.Println(search.Binary([]int{2, 5, 8, 11, 14}, 9))
	// Output:
	// 3
	// -1
}

// ExampleNewAVL stays balanced under ascending inserts.
func ExampleNewAVL() {
	t := search.NewAVL[int, string]()
	for k := 1; k <= 7; k++ {
		t.Insert(k, "")
	}

	fmt.Println(t.Height())
	fmt.Println(t.Keys())
	// Output:
	// 3
	// [1 2 3 4 5 6 7]
}
