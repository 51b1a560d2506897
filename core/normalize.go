// Place for pure domain logic that doesn't depend on Gin/GORM, easy to unit test.
package core

import (
	"strings"
	"unicode"
)

// NormalizeName is the single comparison rule for participant names.
// It is applied both when the roster is built and when a submission is checked,
// so the two sides can never drift apart.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimFunc(s, isTrimmable)) // trim first, then lower-case
}

// isTrimmable also treats U+FEFF as blank: "CSV UTF-8" exports start with a BOM.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// ArtifactFileName builds "<submitted-name>-certificate.pdf" from the raw
// (non-normalized) submission. Only characters that would break a file name
// or a header are dropped; casing and inner spacing are kept as typed.
func ArtifactFileName(submitted string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == '"':
			return -1 // path separators and quotes
		case r < 0x20 || r == 0x7f:
			return -1 // control characters
		}
		return r
	}, submitted)
	return clean + "-certificate.pdf"
}
