package sorting_test

import (
	"fmt"

	"github.com/dastralib/dastra/sorting"
)

// ExampleQuick sorts the running example of the course slides.
func ExampleQuick() {
	elems := []int{49, 38, 65, 97, 76, 13, 27, 49}
	sorting.Quick(elems)
	fmt.Println(elems)
	// Output:
	// [13 27 38 49 49 65 76 97]
}

// ExampleRadixLSD distributes by decimal digit, least significant first.
func ExampleRadixLSD() {
	elems := []int{278, 109, 63, 930, 589, 184, 505, 269, 8, 83}
	if err := sorting.RadixLSD(elems, 10); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(elems)
	// Output:
	// [8 63 83 109 184 269 278 505 589 930]
}
