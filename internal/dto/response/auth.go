package response

import (
	"time"

	"trek-booking/internal/data/entity"
)

type AuthResponse struct {
	User      UserResponse `json:"data"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// UserResponse never carries the password digest.
type UserResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone,omitempty"`
	AvatarURL  *string         `json:"avatar_url,omitempty"`
	Role       entity.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		AvatarURL:  user.AvatarURL,
		Role:       user.Role,
		IsVerified: user.EmailVerified,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token string, expiresAt time.Time) *AuthResponse {
	return &AuthResponse{
		User:      UserToResponse(user),
		Token:     token,
		ExpiresAt: expiresAt,
	}
}
