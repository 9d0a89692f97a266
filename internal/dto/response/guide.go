package response

import (
	"time"

	"trek-booking/internal/data/entity"
)

type GuideResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	Languages       *string   `json:"languages,omitempty"`
	PhotoURL        *string   `json:"photo_url,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func GuideToResponse(guide *entity.Guide) GuideResponse {
	return GuideResponse{
		ID:              guide.ID.String(),
		Name:            guide.Name,
		Bio:             guide.Bio,
		Email:           guide.Email,
		Phone:           guide.Phone,
		ExperienceYears: guide.ExperienceYears,
		Languages:       guide.Languages,
		PhotoURL:        guide.PhotoURL,
		IsActive:        guide.IsActive,
		CreatedAt:       guide.CreatedAt,
	}
}
