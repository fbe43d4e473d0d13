// Package list provides the linear-list containers of the course:
// a bounded array list and three linked variants.
//
//   - ArrayList[T]    - slice-backed list with a fixed capacity; Insert
//     and Delete shift elements and cost O(n), Get/Set are O(1).
//   - SinglyList[T]   - singly linked list with a sentinel head node.
//   - CircularList[T] - circular singly linked list; the basis for the
//     Josephus elimination demo.
//   - DoublyList[T]   - doubly linked list with head and tail sentinels,
//     O(1) insertion and removal at both ends.
//
// All positions in this package are 0-based; out-of-range positions
// return ErrIndexRange.
//
// Difference implements the set-difference exercise of the course:
// remove from one list every element the other contains.
package list
