package request

type CreateTrekRequest struct {
	Title        string  `json:"title" validate:"required,min=3,max=200"`
	Description  string  `json:"description" validate:"required"`
	Region       string  `json:"region" validate:"required,max=100"`
	Difficulty   string  `json:"difficulty" validate:"required,oneof=easy moderate hard extreme"`
	DurationDays int     `json:"duration_days" validate:"required,min=1,max=60"`
	MaxAltitude  int     `json:"max_altitude" validate:"omitempty,min=0"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	MaxGroupSize int     `json:"max_group_size" validate:"omitempty,min=1,max=100"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type UpdateTrekRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description  *string  `json:"description,omitempty"`
	Region       *string  `json:"region,omitempty" validate:"omitempty,max=100"`
	Difficulty   *string  `json:"difficulty,omitempty" validate:"omitempty,oneof=easy moderate hard extreme"`
	DurationDays *int     `json:"duration_days,omitempty" validate:"omitempty,min=1,max=60"`
	MaxAltitude  *int     `json:"max_altitude,omitempty" validate:"omitempty,min=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	MaxGroupSize *int     `json:"max_group_size,omitempty" validate:"omitempty,min=1,max=100"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type TrekListRequest struct {
	PaginatedRequest
	Region     string `json:"region"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy moderate hard extreme"`
}
