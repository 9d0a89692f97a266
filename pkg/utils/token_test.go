package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken()
	require.NoError(t, err)
	assert.Len(t, token, 64) // 32 bytes hex-encoded

	_, err = hex.DecodeString(token)
	assert.NoError(t, err)

	token2, err := GenerateSecureToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
}

func TestHashToken(t *testing.T) {
	hash := HashToken("some-token")

	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashToken("some-token"))
	assert.NotEqual(t, hash, HashToken("other-token"))
	assert.NotEqual(t, "some-token", hash)
}
