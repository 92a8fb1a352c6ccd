// file: internal/spelling/matcher.go
// version: 1.1.0
// guid: 4c8e0b2d-6f1a-4d3b-8a5c-9e1f3b5d7a9c

package spelling

// IsInconsistent reports whether two road names look like alternate
// spellings of the same road: exactly one character substitution, insertion
// or deletion apart, with identical route identifiers on both sides.
//
// "Main St" vs "Man St" is inconsistent; "Route 6" vs "Route 9" is not,
// because the differing identifiers mark them as different roads.
func IsInconsistent(nameA, nameB string) bool {
	runesA := []rune(nameA)
	runesB := []rune(nameB)

	diff := len(runesA) - len(runesB)
	if diff < -1 || diff > 1 {
		return false
	}
	if nameA == nameB {
		return false
	}
	if !sameIdentifiers(nameA, nameB) {
		return false
	}
	if diff == 0 {
		return oneSubstitution(runesA, runesB)
	}
	return oneIndel(runesA, runesB)
}

// sameIdentifiers reports whether both names carry exactly the same set of
// identifier tokens. Any identifier present in one name and absent from the
// other marks the names as belonging to different roads.
func sameIdentifiers(nameA, nameB string) bool {
	idsA := identifiers(nameA)
	idsB := identifiers(nameB)

	union := make(map[string]bool, len(idsA)+len(idsB))
	for _, id := range idsA {
		union[id] = true
	}
	for _, id := range idsB {
		union[id] = true
	}
	return len(union) <= len(idsA) && len(union) <= len(idsB)
}

// oneSubstitution scans two equal-length names and reports whether exactly
// one position differs. No transposition credit: "ab" vs "ba" is two edits.
func oneSubstitution(a, b []rune) bool {
	edits := 0
	for i := range a {
		if a[i] != b[i] {
			edits++
			if edits > 1 {
				return false
			}
		}
	}
	return edits == 1
}

// oneIndel scans two names whose lengths differ by exactly one and reports
// whether a single insertion or deletion transforms one into the other. Two
// pointers advance together while the runes match; on the first mismatch
// only the longer side's pointer skips ahead, and the runes must line up
// again immediately.
func oneIndel(a, b []rune) bool {
	longer, shorter := a, b
	if len(a) < len(b) {
		longer, shorter = b, a
	}

	lp, sp := 0, 0
	for sp < len(shorter) {
		if longer[lp] != shorter[sp] {
			if lp > sp {
				// Second mismatch after the skip.
				return false
			}
			lp++
			if longer[lp] != shorter[sp] {
				return false
			}
		}
		lp++
		sp++
	}
	return true
}
