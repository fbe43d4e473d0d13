package hashtable_test

import (
	"math/rand"
	"testing"

	"github.com/dastralib/dastra/hashtable"
)

// benchKeys returns a fresh pseudo-random key set; the seed is fixed so
// every table variant hashes identical data.
func benchKeys(n int) []int {
	rng := rand.New(rand.NewSource(1))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Intn(1 << 20)
	}

	return keys
}

func benchOpenSet(b *testing.B, probing hashtable.Probing) {
	b.Helper()
	keys := benchKeys(1 << 12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ht, _ := hashtable.NewOpen[int](13, probing)
		for _, k := range keys {
			_ = ht.Set(k, k)
		}
	}
}

func BenchmarkOpenSet_Linear(b *testing.B)    { benchOpenSet(b, hashtable.Linear) }
func BenchmarkOpenSet_Quadratic(b *testing.B) { benchOpenSet(b, hashtable.Quadratic) }

func BenchmarkChainSet(b *testing.B) {
	keys := benchKeys(1 << 12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ct, _ := hashtable.NewChain[int](13)
		for _, k := range keys {
			ct.Set(k, k)
		}
	}
}

func BenchmarkOpenGet(b *testing.B) {
	keys := benchKeys(1 << 12)
	ht, _ := hashtable.NewOpen[int](13, hashtable.Linear)
	for _, k := range keys {
		_ = ht.Set(k, k)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ht.Get(keys[i%len(keys)])
	}
}
