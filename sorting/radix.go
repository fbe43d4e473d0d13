package sorting

import "errors"

// Sentinel errors for radix sort input validation.
var (
	// ErrNegative indicates a negative value in the input slice; LSD radix
	// sort as taught distributes by digit and has no sign handling.
	ErrNegative = errors.New("sorting: radix sort requires non-negative integers")

	// ErrBadRadix indicates a radix smaller than 2.
	ErrBadRadix = errors.New("sorting: radix must be at least 2")
)

// RadixLSD sorts elems in place using least-significant-digit-first radix
// sort in the given radix. Each pass distributes the values into radix
// buckets by the current digit and collects them back in bucket order,
// so the overall sort is stable.
//
// Returns ErrBadRadix if radix < 2 and ErrNegative if any value is
// negative. The slice is left untouched on error.
//
// Complexity: Time O(d·(n+r)) for d digits and radix r; Space O(n+r).
func RadixLSD(elems []int, radix int) error {
	if radix < 2 {
		return ErrBadRadix
	}
	maxVal := 0
	for _, v := range elems {
		if v < 0 {
			return ErrNegative
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if len(elems) < 2 {
		return nil
	}

	buckets := make([][]int, radix)
	// One distribution/collection pass per digit, least significant first.
	for exp := 1; maxVal/exp > 0; exp *= radix {
		for i := range buckets {
			buckets[i] = buckets[i][:0]
		}
		for _, v := range elems {
			d := (v / exp) % radix
			buckets[d] = append(buckets[d], v)
		}
		k := 0
		for _, b := range buckets {
			k += copy(elems[k:], b)
		}
	}

	return nil
}

// Digits reports how many digits x has in the given radix; 0 has one
// digit. Used by the radix demo to size the pass count.
func Digits(x, radix int) int {
	if radix < 2 || x < 0 {
		return 0
	}
	n := 1
	for x >= radix {
		x /= radix
		n++
	}

	return n
}
