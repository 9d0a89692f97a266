package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Name          string   `db:"name"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password"`
	Phone         *string  `db:"phone"`
	AvatarURL     *string  `db:"avatar_url"`
	Role          UserRole `db:"role"`
	EmailVerified bool     `db:"email_verified"`
	IsActive      bool     `db:"is_active"`

	// One-way hashes of the tokens actually emailed. Past expiry the
	// stored hash is treated as absent regardless of match.
	ResetTokenHash     *string    `db:"reset_token_hash"`
	ResetTokenExpires  *time.Time `db:"reset_token_expires"`
	VerifyTokenHash    *string    `db:"verify_token_hash"`
	VerifyTokenExpires *time.Time `db:"verify_token_expires"`
}
