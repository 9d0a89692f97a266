package wire

import (
	"trek-booking/internal/adaptor"
	"trek-booking/internal/data/repository"
	"trek-booking/pkg/middleware"
	"trek-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireGuide configures the public guide roster and admin management routes.
func wireGuide(
	r chi.Router,
	guideHandler *adaptor.GuideHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/guides", func(r chi.Router) {
		r.Get("/", guideHandler.GetGuides)        // GET /api/guides?page=1&per_page=10
		r.Get("/{id}", guideHandler.GetGuideByID) // GET /api/guides/{guide-id}
	})

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.Auth(config.JWT.Secret, log),
		middleware.Admin(repo.User, log),
	).Route("/api/admin/guides", func(r chi.Router) {
		r.Get("/", guideHandler.GetAllGuides)
		r.Post("/", guideHandler.CreateGuide)
		r.Put("/{id}", guideHandler.UpdateGuide)
		r.Post("/{id}/photo", guideHandler.UploadGuidePhoto)
		r.Delete("/{id}", guideHandler.DeleteGuide)
	})
}
