package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName_Table(t *testing.T) {
	// GIVEN: table-driven inputs/outputs
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", ""},
		{"spaces-only", "   ", ""},
		{"tabs-newlines", "\t\n", ""},
		{"lower", "alice smith", "alice smith"},
		{"mixed+spaces", "  ALICE smith ", "alice smith"},
		{"inner-spacing-kept", "Bob  Jones", "bob  jones"},
		{"unicode", " ÉLODIE ", "élodie"},
		{"byte-order-mark", "\uFEFFAlice Smith", "alice smith"},
	}

	// WHEN/THEN: loop & assert
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, NormalizeName(tc.in))
		})
	}
}

func TestArtifactFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"plain", "Alice Smith", "Alice Smith-certificate.pdf"},
		{"keeps-casing-and-spaces", "  ALICE smith ", "  ALICE smith -certificate.pdf"},
		{"drops-separators", "../etc/passwd", "..etcpasswd-certificate.pdf"},
		{"drops-quotes-and-controls", "Al\"ice\r\n", "Alice-certificate.pdf"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, ArtifactFileName(tc.in))
		})
	}
}
