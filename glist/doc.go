// Package glist implements generalized lists: sequences whose elements
// are either atoms or generalized lists themselves.
//
// The textual form is the one used throughout the course:
//
//	()            the empty list
//	(a,b,c)       three atoms
//	(a,(b,c),d)   an atom, a sublist, an atom
//	(a,())        an atom and an empty sublist
//
// Atoms are single runes. Parse reads the textual form, String writes it
// back canonically (no spaces), and the two round-trip.
//
// Depth follows the course definition: an empty list has depth 1, and a
// non-empty list has depth 1 + the maximum depth of its sublists (atoms
// contribute nothing). Len counts top-level elements only.
//
// Sublists are never shared between lists: Clone produces genuinely
// independent copies and the garbage collector handles reclamation, so
// no reference counts are kept.
package glist
