package ladder

import "unicode/utf8"

// WordLen returns the length of w in Unicode code points.
func WordLen(w string) int {
	return utf8.RuneCountInString(w)
}

// IsNeighbor reports whether a and b differ in exactly one position.
// Words of different lengths are never neighbors, and a word is never its own
// neighbor. The scan stops at the second difference.
//
// Positions are compared by their encoded bytes, so each byte of invalid
// UTF-8 is a position of its own and distinct invalid bytes never match.
func IsNeighbor(a, b string) bool {
	diff := 0
	for len(a) > 0 && len(b) > 0 {
		_, na := utf8.DecodeRuneInString(a)
		_, nb := utf8.DecodeRuneInString(b)
		if a[:na] != b[:nb] {
			diff++
			if diff > 1 {
				return false
			}
		}
		a, b = a[na:], b[nb:]
	}
	if len(a) != 0 || len(b) != 0 {
		return false
	}

	return diff == 1
}
