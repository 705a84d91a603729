package rpike

import "strings"

// syntaxChars are the codepoints the grammar gives special meaning to
// outside a character class; a backslash followed by any other
// codepoint is an UnknownEscape.
const syntaxChars = `^$\.*+?()[]{}|`

func isSyntaxChar(cp rune) bool {
	return strings.ContainsRune(syntaxChars, cp)
}

// isWordChar is the predicate WordBoundary/NotWordBoundary test across a
// position. It matches the ASCII word-character set used throughout the
// corpus for \b (letters, digits, underscore) rather than a full
// Unicode word-break algorithm, since the grammar has no \w of its own
// to stay consistent with.
func isWordChar(cp rune) bool {
	switch {
	case cp >= 'a' && cp <= 'z':
		return true
	case cp >= 'A' && cp <= 'Z':
		return true
	case cp >= '0' && cp <= '9':
		return true
	case cp == '_':
		return true
	default:
		return false
	}
}
