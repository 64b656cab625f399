package flexver

import (
	"cmp"
)

// componentKind tags a run of code points with the comparison rule it obeys.
// The zero value is the null sentinel, so a plain component{} stands for
// "this version has no component at this position".
type componentKind int

const (
	kindNull componentKind = iota
	kindNumeric
	kindLiteral
	kindSemVerPrerelease
)

// component is one run of the decomposed version string, carrying the code
// points that produced it. Null components hold no code points and are never
// produced by decomposition; they exist only as padding when comparing
// decompositions of different lengths.
type component struct {
	kind       componentKind
	codepoints []rune
}

func (c component) String() string {
	return string(c.codepoints)
}

// compareComponents implements the pairwise rule table over component kinds.
// Every null rule is spelled out for both operand orders, so antisymmetry
// holds by construction rather than by delegation.
func compareComponents(a, b component) int {
	switch {
	case a.kind == kindNull && b.kind == kindNull:
		return 0
	case b.kind == kindNull:
		// a present component outranks an absent one, except that a semver
		// prerelease sorts before the release it tags ("1.0.0-beta" < "1.0.0")
		if a.kind == kindSemVerPrerelease {
			return -1
		}

		return +1
	case a.kind == kindNull:
		if b.kind == kindSemVerPrerelease {
			return +1
		}

		return -1
	case a.kind == kindNumeric && b.kind == kindNumeric:
		return compareNumeric(a.codepoints, b.codepoints)
	default:
		// literal against literal (prereleases included), or the best-effort
		// fallback for mismatched numeric and literal shapes: both compare
		// the original code points lexically
		return compareLexically(a.codepoints, b.codepoints)
	}
}

// compareLexically compares code points pairwise; if one run is a prefix of
// the other, the longer run is greater.
func compareLexically(a, b []rune) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			return cmp.Compare(a[i], b[i])
		}
	}

	return cmp.Compare(len(a), len(b))
}

// compareNumeric compares two digit runs by magnitude: once leading zeroes
// are dropped, a longer run always wins, and runs of equal length are
// decided by their first differing digit.
func compareNumeric(a, b []rune) int {
	a = trimLeadingZeroes(a)
	b = trimLeadingZeroes(b)

	if diff := cmp.Compare(len(a), len(b)); diff != 0 {
		return diff
	}

	for i := range a {
		if a[i] != b[i] {
			return cmp.Compare(a[i], b[i])
		}
	}

	return 0
}

// trimLeadingZeroes never empties the run: an all-zero run keeps its final
// digit, so "0" and "000" compare equal instead of by length.
func trimLeadingZeroes(a []rune) []rune {
	i := 0
	for i < len(a)-1 && a[i] == '0' {
		i++
	}

	return a[i:]
}
