package entity

type TrekDifficulty string

const (
	DifficultyEasy     TrekDifficulty = "easy"
	DifficultyModerate TrekDifficulty = "moderate"
	DifficultyHard     TrekDifficulty = "hard"
	DifficultyExtreme  TrekDifficulty = "extreme"
)

type Trek struct {
	Base
	Title        string         `db:"title"`
	Slug         string         `db:"slug"`
	Description  string         `db:"description"`
	Region       string         `db:"region"`
	Difficulty   TrekDifficulty `db:"difficulty"`
	DurationDays int            `db:"duration_days"`
	MaxAltitude  int            `db:"max_altitude"`
	Price        float64        `db:"price"`
	MaxGroupSize int            `db:"max_group_size"`
	ImageURL     *string        `db:"image_url"`
	IsActive     bool           `db:"is_active"`
}
