package util

import (
	"strings"
	"unicode"
)

const nationalIDLength = 11

// NormalizeNationalID strips every non-digit character from a national ID,
// so "123.456.789-01" becomes "12345678901".
func NormalizeNationalID(id string) string {
	var b strings.Builder
	for _, r := range id {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidNationalID reports whether the ID holds exactly 11 digits after
// normalization. This is a format check only, not a checksum validation.
func IsValidNationalID(id string) bool {
	return len(NormalizeNationalID(id)) == nationalIDLength
}
