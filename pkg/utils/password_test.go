package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	// Same password hashes differently every time (random salt)
	hash2, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestCheckPasswordHash_QuotedDigest(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	// Digests imported by hand sometimes carry quotes or whitespace
	assert.True(t, CheckPasswordHash("secret123", `"`+hash+`"`))
	assert.True(t, CheckPasswordHash("secret123", "'"+hash+"'"))
	assert.True(t, CheckPasswordHash("secret123", "  "+hash+"  "))

	assert.False(t, CheckPasswordHash("wrong-password", `"`+hash+`"`))
}

func TestCheckPasswordHash_GarbageDigest(t *testing.T) {
	assert.False(t, CheckPasswordHash("secret123", "not-a-bcrypt-digest"))
	assert.False(t, CheckPasswordHash("secret123", ""))
}
