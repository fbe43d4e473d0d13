package strmatch_test

import (
	"strings"
	"testing"

	"github.com/dastralib/dastra/strmatch"
)

// benchText is the pathological input for brute force: a long run of 'a'
// with the only full match at the very end.
var (
	benchText = strings.Repeat("a", 1<<14) + "b"
	benchPat  = strings.Repeat("a", 64) + "b"
)

func BenchmarkIndex_Naive(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = strmatch.Index(benchText, benchPat)
	}
}

func BenchmarkIndex_KMP(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = strmatch.IndexKMP(benchText, benchPat)
	}
}
