package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/dastralib/dastra/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// comparison sorts under test, by name.
var sorts = map[string]func([]int){
	"Insertion": sorting.Insertion[int],
	"Shell":     sorting.Shell[int],
	"Bubble":    sorting.Bubble[int],
	"Quick":     sorting.Quick[int],
	"Selection": sorting.Selection[int],
	"Heap":      sorting.Heap[int],
	"Merge":     sorting.Merge[int],
}

// fixtures covers the edge shapes every algorithm must handle.
var fixtures = map[string][]int{
	"empty":      {},
	"single":     {42},
	"sorted":     {1, 2, 3, 4, 5, 6, 7, 8},
	"reversed":   {8, 7, 6, 5, 4, 3, 2, 1},
	"duplicates": {5, 1, 5, 3, 5, 1, 3, 5},
	"course":     {49, 38, 65, 97, 76, 13, 27, 49},
	"negative":   {3, -1, 0, -7, 2, -1},
}

// freq builds a value->count multiset for permutation checks.
func freq(elems []int) map[int]int {
	m := make(map[int]int, len(elems))
	for _, v := range elems {
		m[v]++
	}

	return m
}

// TestSorts_SortedPermutation verifies the defining property for every
// algorithm and fixture: the output is sorted and a permutation of the
// input.
func TestSorts_SortedPermutation(t *testing.T) {
	for name, sortFn := range sorts {
		for shape, in := range fixtures {
			t.Run(name+"/"+shape, func(t *testing.T) {
				got := append([]int(nil), in...)
				sortFn(got)
				assert.True(t, sort.IntsAreSorted(got), "not sorted: %v", got)
				assert.Equal(t, freq(in), freq(got), "not a permutation")
			})
		}
	}
}

// TestSorts_Random cross-checks every algorithm against the standard
// library on random inputs of varying size.
func TestSorts_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for name, sortFn := range sorts {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{2, 3, 17, 100, 500} {
				in := make([]int, n)
				for i := range in {
					in[i] = rng.Intn(200) - 100
				}
				want := append([]int(nil), in...)
				sort.Ints(want)
				sortFn(in)
				require.Equal(t, want, in, "n=%d", n)
			}
		})
	}
}

// TestShellWith_CourseIncrements runs the explicit increment sequence
// from the course slides.
func TestShellWith_CourseIncrements(t *testing.T) {
	in := []int{49, 38, 65, 97, 76, 13, 27, 49, 55, 4}
	want := append([]int(nil), in...)
	sort.Ints(want)
	sorting.ShellWith(in, []int{5, 3, 1})
	assert.Equal(t, want, in)
}

// TestRadixLSD covers the happy path, both radices, and the sentinel
// errors for invalid input.
func TestRadixLSD(t *testing.T) {
	in := []int{278, 109, 63, 930, 589, 184, 505, 269, 8, 83}
	want := append([]int(nil), in...)
	sort.Ints(want)
	require.NoError(t, sorting.RadixLSD(in, 10))
	assert.Equal(t, want, in)

	bin := []int{13, 7, 2, 9, 0, 255}
	wantBin := append([]int(nil), bin...)
	sort.Ints(wantBin)
	require.NoError(t, sorting.RadixLSD(bin, 2))
	assert.Equal(t, wantBin, bin)

	neg := []int{3, -1, 2}
	err := sorting.RadixLSD(neg, 10)
	assert.ErrorIs(t, err, sorting.ErrNegative)
	assert.Equal(t, []int{3, -1, 2}, neg, "slice untouched on error")

	assert.ErrorIs(t, sorting.RadixLSD([]int{1}, 1), sorting.ErrBadRadix)
}

// TestDigits pins digit counting in several radices.
func TestDigits(t *testing.T) {
	assert.Equal(t, 1, sorting.Digits(0, 10))
	assert.Equal(t, 3, sorting.Digits(930, 10))
	assert.Equal(t, 8, sorting.Digits(255, 2))
	assert.Equal(t, 0, sorting.Digits(5, 1), "invalid radix")
}

// TestSorts_Strings exercises the generic instantiation on a non-integer
// element type.
func TestSorts_Strings(t *testing.T) {
	in := []string{"pear", "apple", "fig", "banana", "fig"}
	want := append([]string(nil), in...)
	sort.Strings(want)

	got := append([]string(nil), in...)
	sorting.Quick(got)
	assert.Equal(t, want, got)

	got = append([]string(nil), in...)
	sorting.Heap(got)
	assert.Equal(t, want, got)
}
