package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash compares a plaintext password against a stored digest.
// Stored digests occasionally carry stray quotes or whitespace from manual
// imports; the cleaned form is tried first and the raw value as a fallback.
// A comparison failure is a non-match, never an error to the caller.
func CheckPasswordHash(password, hash string) bool {
	cleaned := strings.TrimSpace(strings.Trim(strings.TrimSpace(hash), `"'`))

	if bcrypt.CompareHashAndPassword([]byte(cleaned), []byte(password)) == nil {
		return true
	}

	if cleaned != hash {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	return false
}
