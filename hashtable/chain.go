package hashtable

// chainEntry is one node of a bucket list.
type chainEntry[V any] struct {
	key  int
	val  V
	next *chainEntry[V]
}

// ChainTable is a separate-chaining hash table from int keys to
// values. Colliding entries hang off per-slot bucket lists, so the
// table never fills; chains just grow.
// Construct with NewChain.
type ChainTable[V any] struct {
	buckets []*chainEntry[V]
	n       int
}

// NewChain returns a chaining table with the given bucket count.
// The count should be prime for a good ModPrime spread.
func NewChain[V any](buckets int) (*ChainTable[V], error) {
	if buckets <= 0 {
		return nil, ErrBadCapacity
	}

	return &ChainTable[V]{buckets: make([]*chainEntry[V], buckets)}, nil
}

// Len reports the number of stored keys.
func (t *ChainTable[V]) Len() int { return t.n }

// LoadFactor reports stored keys over bucket count; it may exceed 1.
func (t *ChainTable[V]) LoadFactor() float64 {
	return float64(t.n) / float64(len(t.buckets))
}

// Set stores val under key, replacing an existing value. New entries
// are pushed at the head of their bucket.
//
// Complexity: Time O(1 + α) average, α the load factor.
func (t *ChainTable[V]) Set(key int, val V) {
	j := ModPrime(key, len(t.buckets))
	for e := t.buckets[j]; e != nil; e = e.next {
		if e.key == key {
			e.val = val

			return
		}
	}
	t.buckets[j] = &chainEntry[V]{key: key, val: val, next: t.buckets[j]}
	t.n++
}

// Get returns the value stored under key.
func (t *ChainTable[V]) Get(key int) (V, bool) {
	j := ModPrime(key, len(t.buckets))
	for e := t.buckets[j]; e != nil; e = e.next {
		if e.key == key {
			return e.val, true
		}
	}
	var zero V

	return zero, false
}

// Delete removes key and reports whether it was present.
func (t *ChainTable[V]) Delete(key int) bool {
	j := ModPrime(key, len(t.buckets))
	for p := &t.buckets[j]; *p != nil; p = &(*p).next {
		if (*p).key == key {
			*p = (*p).next
			t.n--

			return true
		}
	}

	return false
}
