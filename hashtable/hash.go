package hashtable

// ModPrime maps key into [0, m) by division. m should be prime, which
// spreads keys that share factors with the table size.
func ModPrime(key, m int) int {
	h := key % m
	if h < 0 {
		h += m
	}

	return h
}

// MidSquare squares the key and returns the middle digits of the
// square, digits wide. The middle of the square depends on every digit
// of the key, so clustered keys still spread.
func MidSquare(key, digits int) int {
	sq := key * key
	if sq < 0 {
		sq = -sq
	}

	// Count the square's digits, then strip the low ones so that
	// digits of them sit in the middle.
	total := 0
	for v := sq; v > 0; v /= 10 {
		total++
	}
	if total <= digits {
		return sq
	}
	drop := (total - digits) / 2
	for ; drop > 0; drop-- {
		sq /= 10
	}
	mod := 1
	for i := 0; i < digits; i++ {
		mod *= 10
	}

	return sq % mod
}
