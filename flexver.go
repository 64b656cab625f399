// Package flexver implements FlexVer, a SemVer-compatible intuitive
// comparator for free-form version strings as seen in the wild. It is
// designed to sort versions like people do, rather than attempting to force
// conformance to a rigid and limited standard. As such, it imposes no
// restrictions: comparing two versions with differing formats will likely
// produce nonsensical results (garbage in, garbage out), but best effort is
// made to correct for basic structural changes, and versions of differing
// length are compared in a logical fashion.
package flexver

import (
	"slices"
)

// Compare parses the given strings as freeform versions and compares them
// according to FlexVer.
//
// The result is 0 if a == b, -1 if a < b, or +1 if a > b. Every pair of
// strings has a defined order; there is no such thing as an invalid version.
func Compare(a, b string) int {
	ad := decompose(a)
	bd := decompose(b)

	for i := 0; i < max(len(ad), len(bd)); i++ {
		if diff := compareComponents(fetch(ad, i), fetch(bd, i)); diff != 0 {
			return diff
		}
	}

	return 0
}

// Less reports whether version a sorts before version b, for use as a sort
// callback.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Equal reports whether a and b denote the same version, which does not
// require them to be the same string ("1.7" and "1.07" are equal).
func Equal(a, b string) bool {
	return Compare(a, b) == 0
}

// Sort sorts versions in place, in ascending FlexVer order. The sort is
// stable, so versions that compare equal without being identical (such as
// two that differ only in build metadata) keep their original order.
func Sort(versions []string) {
	slices.SortStableFunc(versions, Compare)
}

// fetch pads the shorter decomposition with null components so that both
// sides always provide an operand at every position.
func fetch(components []component, i int) component {
	if len(components) <= i {
		return component{}
	}

	return components[i]
}
