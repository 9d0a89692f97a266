package request

type CreateBlogPostRequest struct {
	Title     string  `json:"title" validate:"required,min=3,max=200"`
	Slug      *string `json:"slug,omitempty" validate:"omitempty,min=3,max=200"`
	Excerpt   string  `json:"excerpt" validate:"omitempty,max=500"`
	Content   string  `json:"content" validate:"required"`
	Published *bool   `json:"published,omitempty"`
}

type UpdateBlogPostRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Slug      *string `json:"slug,omitempty" validate:"omitempty,min=3,max=200"`
	Excerpt   *string `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content   *string `json:"content,omitempty"`
	Published *bool   `json:"published,omitempty"`
}
