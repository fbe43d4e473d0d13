// Package strmatch implements classic substring search: brute-force
// matching and the Knuth-Morris-Pratt (KMP) algorithm.
//
// Both matchers answer the same question - the first index i such that
// text[i:i+len(pat)] == pat, or -1 when no such index exists - they only
// differ in how failed comparisons are handled:
//
//   - Index slides the pattern one position right after every mismatch and
//     restarts the comparison. Worst case O(n·m).
//   - IndexKMP precomputes the failure function NextTable(pat) and never
//     moves the text cursor backwards. Worst case O(n+m).
//
// FindAll reports every occurrence, overlapping matches included, which is
// the convention used throughout the course material.
//
// Complexity:
//
//   - Index:     Time O(n·m), Space O(1)
//   - NextTable: Time O(m),   Space O(m)
//   - IndexKMP:  Time O(n+m), Space O(m)
//   - FindAll:   Time O(k·(n+m)) for k matches
//
// All functions operate on bytes, not runes; the course material matches
// raw character sequences and multi-byte boundaries are the caller's
// concern.
package strmatch
