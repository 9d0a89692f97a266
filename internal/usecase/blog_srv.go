package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trek-booking/internal/data/entity"
	"trek-booking/internal/data/repository"
	"trek-booking/internal/dto/request"
	"trek-booking/internal/dto/response"
	"trek-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BlogService interface {
	GetPosts(ctx context.Context, req *request.PaginatedRequest, includeDrafts bool) (*response.PaginatedResponse[response.BlogPostResponse], error)
	GetPostBySlug(ctx context.Context, slug string, includeDrafts bool) (*response.BlogPostResponse, error)
	CreatePost(ctx context.Context, req *request.CreateBlogPostRequest) (*response.BlogPostResponse, error)
	UpdatePost(ctx context.Context, postID string, req *request.UpdateBlogPostRequest) (*response.BlogPostResponse, error)
	SetPostCoverImage(ctx context.Context, postID, imageURL string) (*response.BlogPostResponse, error)
	DeletePost(ctx context.Context, postID string) error
}

type blogService struct {
	blogRepo repository.BlogRepository
	log      *zap.Logger
}

func NewBlogService(blogRepo repository.BlogRepository, log *zap.Logger) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		log:      log,
	}
}

func (bs *blogService) GetPosts(ctx context.Context, req *request.PaginatedRequest, includeDrafts bool) (*response.PaginatedResponse[response.BlogPostResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}

	posts, err := bs.blogRepo.FindAll(ctx, !includeDrafts, req.Limit(), req.Offset())
	if err != nil {
		bs.log.Error("Failed to get blog posts", zap.Error(err))
		return nil, fmt.Errorf("failed to get posts")
	}

	total, err := bs.blogRepo.CountAll(ctx, !includeDrafts)
	if err != nil {
		bs.log.Error("Failed to count blog posts", zap.Error(err))
		return nil, fmt.Errorf("failed to count posts")
	}

	postResponses := make([]response.BlogPostResponse, len(posts))
	for i, post := range posts {
		postResponses[i] = response.BlogPostToListResponse(post)
	}

	return response.NewPaginatedResponse(postResponses, req.Page, req.PerPage, total), nil
}

// GetPostBySlug returns the full post body. Drafts are only visible when
// includeDrafts is set (admin surface).
func (bs *blogService) GetPostBySlug(ctx context.Context, slug string, includeDrafts bool) (*response.BlogPostResponse, error) {
	post, err := bs.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		bs.log.Error("Failed to find blog post", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("failed to get post")
	}
	if post == nil || (!post.Published && !includeDrafts) {
		return nil, fmt.Errorf("post not found")
	}

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (bs *blogService) CreatePost(ctx context.Context, req *request.CreateBlogPostRequest) (*response.BlogPostResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		bs.log.Warn("Create blog post validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	post := &entity.BlogPost{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:   req.Title,
		Slug:    utils.Slugify(req.Title),
		Excerpt: req.Excerpt,
		Content: req.Content,
	}
	if req.Slug != nil && *req.Slug != "" {
		post.Slug = utils.Slugify(*req.Slug)
	}
	if req.Published != nil && *req.Published {
		post.Published = true
		post.PublishedAt = &now
	}

	if err := bs.blogRepo.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, fmt.Errorf("a post with this slug already exists")
		}
		bs.log.Error("Failed to create blog post", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create post")
	}

	bs.log.Info("Blog post created",
		zap.String("post_id", post.ID.String()),
		zap.String("slug", post.Slug))

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (bs *blogService) UpdatePost(ctx context.Context, postID string, req *request.UpdateBlogPostRequest) (*response.BlogPostResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		bs.log.Warn("Update blog post validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID")
	}

	post, err := bs.blogRepo.FindByID(ctx, id)
	if err != nil {
		bs.log.Error("Failed to find blog post for update", zap.Error(err), zap.String("post_id", postID))
		return nil, fmt.Errorf("failed to update post")
	}
	if post == nil {
		return nil, fmt.Errorf("post not found")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil && *req.Slug != "" {
		post.Slug = utils.Slugify(*req.Slug)
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Published != nil {
		// PublishedAt records the first transition only.
		if *req.Published && !post.Published {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Published = *req.Published
	}
	post.UpdatedAt = time.Now()

	if err := bs.blogRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, fmt.Errorf("a post with this slug already exists")
		}
		bs.log.Error("Failed to update blog post", zap.Error(err), zap.String("post_id", postID))
		return nil, fmt.Errorf("failed to update post")
	}

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (bs *blogService) SetPostCoverImage(ctx context.Context, postID, imageURL string) (*response.BlogPostResponse, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID")
	}

	post, err := bs.blogRepo.FindByID(ctx, id)
	if err != nil {
		bs.log.Error("Failed to find blog post for cover update", zap.Error(err), zap.String("post_id", postID))
		return nil, fmt.Errorf("failed to update post")
	}
	if post == nil {
		return nil, fmt.Errorf("post not found")
	}

	post.CoverImageURL = &imageURL
	post.UpdatedAt = time.Now()

	if err := bs.blogRepo.Update(ctx, post); err != nil {
		bs.log.Error("Failed to save blog post cover", zap.Error(err), zap.String("post_id", postID))
		return nil, fmt.Errorf("failed to update post")
	}

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (bs *blogService) DeletePost(ctx context.Context, postID string) error {
	id, err := uuid.Parse(postID)
	if err != nil {
		return fmt.Errorf("invalid post ID")
	}

	post, err := bs.blogRepo.FindByID(ctx, id)
	if err != nil {
		bs.log.Error("Failed to get blog post for delete", zap.Error(err), zap.String("id", postID))
		return fmt.Errorf("failed to delete post")
	}
	if post == nil {
		return fmt.Errorf("post not found")
	}

	if err := bs.blogRepo.Delete(ctx, id); err != nil {
		bs.log.Error("Failed to delete blog post", zap.Error(err), zap.String("id", postID))
		return fmt.Errorf("failed to delete post")
	}

	bs.log.Info("Blog post deleted", zap.String("post_id", id.String()))
	return nil
}
