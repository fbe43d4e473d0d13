package hashtable

import "errors"

// Sentinel errors for open-addressing tables.
var (
	// ErrFull indicates a probe chain visited every slot without
	// finding a free one.
	ErrFull = errors.New("hashtable: table full")

	// ErrBadCapacity indicates a non-positive initial capacity.
	ErrBadCapacity = errors.New("hashtable: capacity must be positive")
)

// Probing selects the open-addressing probe sequence.
type Probing int

const (
	// Linear probes h, h+1, h+2, ... modulo m. Simple but prone to
	// primary clustering.
	Linear Probing = iota

	// Quadratic probes h, h+1², h+2², ... modulo m, breaking up the
	// clusters linear probing builds.
	Quadratic
)

// maxLoad is the load factor above which Set grows the table.
const maxLoad = 0.7

// slot states.
type slotState uint8

const (
	empty slotState = iota
	occupied
	tombstone
)

type slot[V any] struct {
	key   int
	val   V
	state slotState
}

// OpenTable is an open-addressing hash table from int keys to values.
// Deletes leave tombstones; Set rehashes into 2m+1 slots once the load
// factor, counting tombstones, exceeds 0.7.
// Construct with NewOpen.
type OpenTable[V any] struct {
	slots   []slot[V]
	probing Probing
	n       int // occupied
	used    int // occupied + tombstones
}

// NewOpen returns an open-addressing table with capacity slots.
// Capacity should be prime for a good ModPrime spread.
func NewOpen[V any](capacity int, probing Probing) (*OpenTable[V], error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	return &OpenTable[V]{
		slots:   make([]slot[V], capacity),
		probing: probing,
	}, nil
}

// Len reports the number of stored keys.
func (t *OpenTable[V]) Len() int { return t.n }

// Cap reports the current slot count.
func (t *OpenTable[V]) Cap() int { return len(t.slots) }

// LoadFactor reports occupied slots over capacity, tombstones excluded.
func (t *OpenTable[V]) LoadFactor() float64 {
	return float64(t.n) / float64(len(t.slots))
}

// probe returns the i-th slot index of key's probe sequence.
func (t *OpenTable[V]) probe(key, i int) int {
	h := ModPrime(key, len(t.slots))
	if t.probing == Quadratic {
		return (h + i*i) % len(t.slots)
	}

	return (h + i) % len(t.slots)
}

// Set stores val under key, replacing an existing value. The table
// grows before insertion when the incoming entry would push the load
// factor past 0.7.
//
// Complexity: Time O(1) average, O(m) worst.
func (t *OpenTable[V]) Set(key int, val V) error {
	if float64(t.used+1)/float64(len(t.slots)) > maxLoad {
		t.rehash(2*len(t.slots) + 1)
	}

	// First pass: replace in place, or remember the first tombstone
	// to reuse.
	free := -1
	for i := 0; i < len(t.slots); i++ {
		j := t.probe(key, i)
		s := &t.slots[j]
		switch s.state {
		case occupied:
			if s.key == key {
				s.val = val

				return nil
			}
		case tombstone:
			if free < 0 {
				free = j
			}
		case empty:
			if free < 0 {
				free = j
			}
			t.place(free, key, val)

			return nil
		}
	}
	if free >= 0 {
		t.place(free, key, val)

		return nil
	}

	// Quadratic probing reaches only about half the slots, so the
	// sequence can be exhausted while the table still has room. Grow
	// and retry rather than reporting a full table.
	if t.n < len(t.slots) {
		t.rehash(2*len(t.slots) + 1)

		return t.Set(key, val)
	}

	return ErrFull
}

func (t *OpenTable[V]) place(j, key int, val V) {
	if t.slots[j].state == empty {
		t.used++
	}
	t.slots[j] = slot[V]{key: key, val: val, state: occupied}
	t.n++
}

// Get returns the value stored under key.
//
// Complexity: Time O(1) average.
func (t *OpenTable[V]) Get(key int) (V, bool) {
	for i := 0; i < len(t.slots); i++ {
		j := t.probe(key, i)
		s := &t.slots[j]
		switch s.state {
		case empty:
			var zero V

			return zero, false
		case occupied:
			if s.key == key {
				return s.val, true
			}
		}
	}
	var zero V

	return zero, false
}

// Delete removes key, leaving a tombstone so probe chains through the
// slot keep working. Reports whether the key was present.
func (t *OpenTable[V]) Delete(key int) bool {
	for i := 0; i < len(t.slots); i++ {
		j := t.probe(key, i)
		s := &t.slots[j]
		switch s.state {
		case empty:
			return false
		case occupied:
			if s.key == key {
				var zero V
				s.val = zero
				s.state = tombstone
				t.n--

				return true
			}
		}
	}

	return false
}

// rehash moves every live entry into a fresh table of newCap slots,
// discarding tombstones.
func (t *OpenTable[V]) rehash(newCap int) {
	old := t.slots
	t.slots = make([]slot[V], newCap)
	t.n, t.used = 0, 0
	for i := range old {
		if old[i].state == occupied {
			// Cannot fail: the new table is strictly larger.
			_ = t.Set(old[i].key, old[i].val)
		}
	}
}
