// Package hashtable provides classic hash tables over integer keys:
// open addressing with linear or quadratic probing, and separate
// chaining with bucket lists.
//
// # Hash functions
//
//   - ModPrime divides by a table-sized prime, the workhorse scheme.
//   - MidSquare squares the key and extracts the middle digits.
//
// # Collision handling
//
//   - OpenTable keeps every entry in one slot array. A delete leaves a
//     tombstone so later probe chains stay intact; inserts reuse
//     tombstones. When the load factor passes 0.7 the table rehashes
//     into 2m+1 slots, which also drops accumulated tombstones.
//   - ChainTable hangs colliding entries off per-slot bucket lists and
//     never fills up.
//
// # Quick start
//
//	ht := hashtable.NewOpen[string](11, hashtable.Linear)
//	_ = ht.Set(19, "a")
//	v, ok := ht.Get(19)
//
// Average probe cost stays O(1) while the load factor is bounded;
// worst case is O(m) for open addressing and O(n) for one chain.
package hashtable
