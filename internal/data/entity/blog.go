package entity

import "time"

type BlogPost struct {
	Base
	Title         string     `db:"title"`
	Slug          string     `db:"slug"`
	Excerpt       string     `db:"excerpt"`
	Content       string     `db:"content"`
	CoverImageURL *string    `db:"cover_image_url"`
	Published     bool       `db:"published"`
	PublishedAt   *time.Time `db:"published_at"`
}
