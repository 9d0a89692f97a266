package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT("user-123", "user@example.com", "user", testSecret, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, _, err := GenerateJWT("user-123", "user@example.com", "user", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	token, _, err := GenerateJWT("user-123", "user@example.com", "user", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_Malformed(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := ValidateJWT(tok, testSecret)
		assert.Error(t, err, "token %q should be rejected", tok)
	}
}

func TestValidateJWT_TamperedPayload(t *testing.T) {
	token, _, err := GenerateJWT("user-123", "user@example.com", "user", testSecret, time.Hour)
	require.NoError(t, err)

	// Flip a character in the payload segment
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = ValidateJWT(string(tampered), testSecret)
	assert.Error(t, err)
}
