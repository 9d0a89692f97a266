package response

import (
	"time"

	"trek-booking/internal/data/entity"
)

type BlogPostResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content,omitempty"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func BlogPostToResponse(post *entity.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:            post.ID.String(),
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		Content:       post.Content,
		CoverImageURL: post.CoverImageURL,
		Published:     post.Published,
		PublishedAt:   post.PublishedAt,
		CreatedAt:     post.CreatedAt,
	}
}

// BlogPostToListResponse omits the body for listing pages.
func BlogPostToListResponse(post *entity.BlogPost) BlogPostResponse {
	resp := BlogPostToResponse(post)
	resp.Content = ""
	return resp
}
