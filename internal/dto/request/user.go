package request

// UpdateUserRequest carries a partial profile update. Role is only honored
// when the caller is an admin; for everyone else it is silently dropped.
type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Role     string  `json:"role" validate:"required,oneof=user admin"`
}
