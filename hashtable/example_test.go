package hashtable_test

import (
	"fmt"

	"github.com/dastralib/dastra/hashtable"
)

// ExampleNewOpen stores two colliding keys; deleting the first leaves a
// tombstone so the probe chain to the second stays intact.
func ExampleNewOpen() {
	ht, _ := hashtable.NewOpen[string](13, hashtable.Linear)
	_ = ht.Set(19, "ace")
	_ = ht.Set(32, "bolt")

	v, ok := ht.Get(32)
	fmt.Println(v, ok)

	ht.Delete(19)
	v, ok = ht.Get(32)
	fmt.Println(v, ok)
	// Output:
	// bolt true
	// bolt true
}
