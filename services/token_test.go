package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadToken_RoundTrip(t *testing.T) {
	tok, err := SignDownloadToken("sec", time.Minute, "  ALICE smith ", "Drive 2024")
	require.NoError(t, err)

	claims, err := ParseDownloadToken("sec", tok)
	require.NoError(t, err)
	assert.Equal(t, "  ALICE smith ", claims.Name)
	assert.Equal(t, "Drive 2024", claims.Event)
}

func TestDownloadToken_WrongSecret(t *testing.T) {
	tok, err := SignDownloadToken("sec", time.Minute, "Alice", "")
	require.NoError(t, err)

	_, err = ParseDownloadToken("other", tok)
	assert.Error(t, err)
}

func TestDownloadToken_Expired(t *testing.T) {
	tok, err := SignDownloadToken("sec", -time.Minute, "Alice", "")
	require.NoError(t, err)

	_, err = ParseDownloadToken("sec", tok)
	assert.Error(t, err)
}
