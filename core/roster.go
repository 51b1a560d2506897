package core

// Roster is the immutable set of normalized participant names.
// A zero Roster is valid and empty, so every lookup against it fails closed.
type Roster struct {
	names map[string]struct{}
}

// NewRoster normalizes every raw name and keeps the non-empty ones.
// Duplicates collapse silently.
func NewRoster(raw []string) Roster {
	names := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		n := NormalizeName(r)
		if n == "" { // blank lines / trailing newline in the resource
			continue
		}
		names[n] = struct{}{}
	}
	return Roster{names: names}
}

// Contains reports whether the submission, after normalization, is on the roster.
// Empty or whitespace-only submissions never match.
func (r Roster) Contains(submission string) bool {
	n := NormalizeName(submission)
	if n == "" {
		return false
	}
	_, ok := r.names[n]
	return ok
}

// Len is the number of distinct normalized names.
func (r Roster) Len() int { return len(r.names) }
