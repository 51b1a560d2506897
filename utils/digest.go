package utils

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Digest returns a stable hex key for the given parts.
// Parts are joined with a unit separator so ("a b","c") and ("a","b c") differ.
// Used to build Redis keys from raw names, which may hold spaces, colons or unicode.
func Digest(parts ...string) string {
	sum := blake2b.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:16]) // 128 bits is plenty for cache keys
}
