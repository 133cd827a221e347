package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLine prepares a raw list line for comparison:
//   - trims leading/trailing whitespace
//   - composes the text to Unicode NFC
//
// Case is preserved. Word lists are already curated and lowercase, and
// casing is part of a word's identity for the mapping lookups.
func NormalizeLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	return norm.NFC.String(line)
}

// IsAlnum reports whether s is non-empty and consists only of letters and
// numbers. Accented letters count as letters; combining marks, punctuation
// and whitespace do not.
func IsAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// WordLength returns the length of s in characters (runes), not bytes.
func WordLength(s string) int {
	return utf8.RuneCountInString(s)
}
