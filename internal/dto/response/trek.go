package response

import (
	"time"

	"trek-booking/internal/data/entity"
)

type TrekResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Slug         string                `json:"slug"`
	Description  string                `json:"description"`
	Region       string                `json:"region"`
	Difficulty   entity.TrekDifficulty `json:"difficulty"`
	DurationDays int                   `json:"duration_days"`
	MaxAltitude  int                   `json:"max_altitude"`
	Price        float64               `json:"price"`
	MaxGroupSize int                   `json:"max_group_size"`
	ImageURL     *string               `json:"image_url,omitempty"`
	IsActive     bool                  `json:"is_active"`
	CreatedAt    time.Time             `json:"created_at"`
}

func TrekToResponse(trek *entity.Trek) TrekResponse {
	return TrekResponse{
		ID:           trek.ID.String(),
		Title:        trek.Title,
		Slug:         trek.Slug,
		Description:  trek.Description,
		Region:       trek.Region,
		Difficulty:   trek.Difficulty,
		DurationDays: trek.DurationDays,
		MaxAltitude:  trek.MaxAltitude,
		Price:        trek.Price,
		MaxGroupSize: trek.MaxGroupSize,
		ImageURL:     trek.ImageURL,
		IsActive:     trek.IsActive,
		CreatedAt:    trek.CreatedAt,
	}
}
