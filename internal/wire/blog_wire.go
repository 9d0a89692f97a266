package wire

import (
	"trek-booking/internal/adaptor"
	"trek-booking/internal/data/repository"
	"trek-booking/pkg/middleware"
	"trek-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireBlog configures the public blog routes and admin content management.
func wireBlog(
	r chi.Router,
	blogHandler *adaptor.BlogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/blog", func(r chi.Router) {
		r.Get("/", blogHandler.GetPosts)           // GET /api/blog?page=1&per_page=10
		r.Get("/{slug}", blogHandler.GetPostBySlug) // GET /api/blog/{post-slug}
	})

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.Auth(config.JWT.Secret, log),
		middleware.Admin(repo.User, log),
	).Route("/api/admin/blog", func(r chi.Router) {
		r.Get("/", blogHandler.GetAllPosts)
		r.Post("/", blogHandler.CreatePost)
		r.Put("/{id}", blogHandler.UpdatePost)
		r.Post("/{id}/cover", blogHandler.UploadPostCover)
		r.Delete("/{id}", blogHandler.DeletePost)
	})
}
