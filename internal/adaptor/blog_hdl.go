package adaptor

import (
	"encoding/json"
	"net/http"

	"trek-booking/internal/dto/request"
	"trek-booking/internal/usecase"
	"trek-booking/pkg/storage"
	"trek-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BlogHandler struct {
	service usecase.BlogService
	store   storage.Storage
	log     *zap.Logger
}

func NewBlogHandler(service usecase.BlogService, store storage.Storage, log *zap.Logger) *BlogHandler {
	return &BlogHandler{
		service: service,
		store:   store,
		log:     log,
	}
}

// GetPosts handles GET /api/blog?page=1&per_page=10
func (h *BlogHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	page, perPage := paginationFromQuery(r)
	req := request.PaginatedRequest{Page: page, PerPage: perPage}

	posts, err := h.service.GetPosts(r.Context(), &req, false)
	if err != nil {
		handleServiceError(h.log, w, err, "get posts")
		return
	}

	utils.ResponseSuccess(w, "Posts retrieved successfully", posts)
}

// GetPostBySlug handles GET /api/blog/{slug}
func (h *BlogHandler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.service.GetPostBySlug(r.Context(), slug, false)
	if err != nil {
		handleServiceError(h.log, w, err, "get post")
		return
	}

	utils.ResponseSuccess(w, "Post retrieved successfully", post)
}

// ==================== ADMIN HANDLERS ====================

// GetAllPosts handles GET /api/admin/blog, drafts included.
func (h *BlogHandler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	page, perPage := paginationFromQuery(r)
	req := request.PaginatedRequest{Page: page, PerPage: perPage}

	posts, err := h.service.GetPosts(r.Context(), &req, true)
	if err != nil {
		handleServiceError(h.log, w, err, "get posts")
		return
	}

	utils.ResponseSuccess(w, "Posts retrieved successfully", posts)
}

// CreatePost handles POST /api/admin/blog
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBlogPostRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	post, err := h.service.CreatePost(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create post")
		return
	}

	utils.ResponseCreated(w, "Post created successfully", post)
}

// UpdatePost handles PUT /api/admin/blog/{id}
func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	var req request.UpdateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	post, err := h.service.UpdatePost(r.Context(), postID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update post")
		return
	}

	utils.ResponseSuccess(w, "Post updated successfully", post)
}

// UploadPostCover handles POST /api/admin/blog/{id}/cover
func (h *BlogHandler) UploadPostCover(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	imageURL, err := saveUploadedImage(r, "cover", h.store)
	if err != nil {
		writeUploadError(h.log, w, err, "upload post cover")
		return
	}
	if imageURL == "" {
		utils.ResponseBadRequest(w, "Missing cover file", nil)
		return
	}

	post, err := h.service.SetPostCoverImage(r.Context(), postID, imageURL)
	if err != nil {
		handleServiceError(h.log, w, err, "update post")
		return
	}

	utils.ResponseSuccess(w, "Post cover uploaded successfully", post)
}

// DeletePost handles DELETE /api/admin/blog/{id}
func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	if err := h.service.DeletePost(r.Context(), postID); err != nil {
		handleServiceError(h.log, w, err, "delete post")
		return
	}

	utils.ResponseSuccess(w, "Post deleted successfully", nil)
}
