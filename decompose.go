package flexver

import (
	"unicode/utf8"
)

// decompose breaks a version string apart into intuitive components, by
// splitting it where a run of code points changes from numeric to
// non-numeric. A "+" and everything after it is dropped, removing semver
// build metadata and similar appendices.
//
// Ranging over the string decodes it code point by code point, so characters
// outside the basic plane are handled as single units.
func decompose(str string) []component {
	if str == "" {
		return nil
	}

	first, _ := utf8.DecodeRuneInString(str)
	lastWasNumber := isASCIIDigit(first)

	var out []component
	var run []rune

	for _, cp := range str {
		if cp == '+' {
			break // remove appendices
		}

		number := isASCIIDigit(cp)

		if number != lastWasNumber {
			out = append(out, newComponent(lastWasNumber, run))
			run = nil
			lastWasNumber = number
		}

		run = append(run, cp)
	}

	return append(out, newComponent(lastWasNumber, run))
}

// newComponent types a closed run: digit runs are numeric, and a non-digit
// run is a semver prerelease when it starts with a hyphen followed by at
// least one more code point. A lone hyphen is an ordinary literal.
func newComponent(number bool, codepoints []rune) component {
	switch {
	case number:
		return component{kindNumeric, codepoints}
	case len(codepoints) > 1 && codepoints[0] == '-':
		return component{kindSemVerPrerelease, codepoints}
	default:
		return component{kindLiteral, codepoints}
	}
}

// isASCIIDigit returns true if the given rune is an ASCII digit.
//
// Unicode digits are not considered ASCII digits by this function.
func isASCIIDigit(c rune) bool {
	return c >= 48 && c <= 57
}
