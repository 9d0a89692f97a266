package entity

type Guide struct {
	Base
	Name            string  `db:"name"`
	Bio             string  `db:"bio"`
	Email           string  `db:"email"`
	Phone           *string `db:"phone"`
	ExperienceYears int     `db:"experience_years"`
	Languages       *string `db:"languages"`
	PhotoURL        *string `db:"photo_url"`
	IsActive        bool    `db:"is_active"`
}
