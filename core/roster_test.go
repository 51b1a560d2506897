package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoster_ContainsAnyCaseAndWhitespace(t *testing.T) {
	r := NewRoster([]string{"Alice Smith", "  bob JONES  ", ""})

	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Contains("  ALICE smith "))
	assert.True(t, r.Contains("alice smith"))
	assert.True(t, r.Contains("Bob Jones"))
	assert.False(t, r.Contains("Carol"))
}

func TestRoster_EmptySubmissionNeverMatches(t *testing.T) {
	r := NewRoster([]string{"", "   ", "Alice"})

	assert.Equal(t, 1, r.Len()) // blanks are skipped
	assert.False(t, r.Contains(""))
	assert.False(t, r.Contains("   "))
}

func TestRoster_DuplicatesCollapse(t *testing.T) {
	r := NewRoster([]string{"Alice", "alice", " ALICE "})
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Contains("aLiCe"))
}

func TestRoster_ZeroValueFailsClosed(t *testing.T) {
	var r Roster
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Contains("Alice Smith"))
}

func TestRoster_LeadingBOMStillMatches(t *testing.T) {
	r := NewRoster([]string{"\uFEFFAlice Smith", "Bob Jones"})
	assert.True(t, r.Contains("Alice Smith"))
	assert.True(t, r.Contains("  ALICE smith "))
}
