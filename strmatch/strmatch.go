package strmatch

// Index reports the first occurrence of pat in text using brute-force
// sliding, or -1 if pat does not occur. An empty pattern matches at 0.
//
// Complexity: Time O(n·m), Space O(1).
func Index(text, pat string) int {
	if len(pat) == 0 {
		return 0
	}
	if len(pat) > len(text) {
		return -1
	}
	// start is the candidate alignment of pat against text.
	start := 0
	i, j := 0, 0 // cursors into text and pat
	for i < len(text) && j < len(pat) {
		if text[i] == pat[j] {
			i++
			j++
		} else {
			// Mismatch: restart one position to the right of start.
			start++
			i = start
			j = 0
		}
	}
	if j >= len(pat) {
		return start
	}

	return -1
}

// NextTable builds the KMP failure function for pat.
//
// The returned slice has length len(pat)+1 with next[0] == -1: next[j] is
// the length of the longest proper prefix of pat[:j] that is also a suffix
// of it, i.e. the position the pattern cursor falls back to on a mismatch
// at j.
//
// Complexity: Time O(m), Space O(m).
func NextTable(pat string) []int {
	next := make([]int, len(pat)+1)
	next[0] = -1
	i, j := 0, -1
	for i < len(pat) {
		if j == -1 || pat[i] == pat[j] {
			i++
			j++
			next[i] = j
		} else {
			j = next[j] // fall back along the failure chain
		}
	}

	return next
}

// IndexKMP reports the first occurrence of pat in text using
// Knuth-Morris-Pratt matching, or -1 if pat does not occur.
// An empty pattern matches at 0.
//
// The text cursor never moves backwards: on a mismatch only the pattern
// cursor falls back, following NextTable(pat).
//
// Complexity: Time O(n+m), Space O(m).
func IndexKMP(text, pat string) int {
	if len(pat) == 0 {
		return 0
	}
	next := NextTable(pat)
	i, j := 0, 0
	for i < len(text) && j < len(pat) {
		if j == -1 || text[i] == pat[j] {
			i++
			j++
		} else {
			j = next[j]
		}
	}
	if j >= len(pat) {
		return i - len(pat)
	}

	return -1
}

// FindAll reports every position at which pat occurs in text, in
// increasing order, overlapping occurrences included. It returns nil for
// an empty pattern.
func FindAll(text, pat string) []int {
	if len(pat) == 0 {
		return nil
	}
	var pos []int
	next := NextTable(pat)
	i, j := 0, 0
	for i < len(text) {
		if j == -1 || text[i] == pat[j] {
			i++
			j++
		} else {
			j = next[j]
		}
		if j == len(pat) {
			pos = append(pos, i-len(pat))
			// Restart as if a mismatch occurred at the end of pat, so
			// overlapping matches are found.
			j = next[j]
		}
	}

	return pos
}
