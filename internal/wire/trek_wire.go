package wire

import (
	"trek-booking/internal/adaptor"
	"trek-booking/internal/data/repository"
	"trek-booking/pkg/middleware"
	"trek-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireTrek configures the public trek catalog and the admin package
// management routes.
func wireTrek(
	r chi.Router,
	trekHandler *adaptor.TrekHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/treks", func(r chi.Router) {
		r.Get("/", trekHandler.GetTreks)        // GET /api/treks?region=...&difficulty=...
		r.Get("/{id}", trekHandler.GetTrekByID) // GET /api/treks/{trek-id}
	})

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.Auth(config.JWT.Secret, log),
		middleware.Admin(repo.User, log),
	).Route("/api/admin/trek-packages", func(r chi.Router) {
		r.Get("/", trekHandler.GetAllTreks)
		r.Post("/", trekHandler.CreateTrek)
		r.Put("/{id}", trekHandler.UpdateTrek)
		r.Post("/{id}/image", trekHandler.UploadTrekImage)
		r.Delete("/{id}", trekHandler.DeleteTrek)
	})
}
