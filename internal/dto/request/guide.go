package request

type CreateGuideRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Bio             string  `json:"bio" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	ExperienceYears int     `json:"experience_years" validate:"omitempty,min=0,max=60"`
	Languages       *string `json:"languages,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

type UpdateGuideRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Bio             *string `json:"bio,omitempty"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	ExperienceYears *int    `json:"experience_years,omitempty" validate:"omitempty,min=0,max=60"`
	Languages       *string `json:"languages,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}
