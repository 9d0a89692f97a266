package wire

import (
	"trek-booking/internal/adaptor"
	"trek-booking/internal/data/repository"
	"trek-booking/pkg/middleware"
	"trek-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Admin user management - requires both authentication AND admin role
	r.With(
		middleware.Auth(config.JWT.Secret, log), // Check signed token
		middleware.Admin(repo.User, log),        // Check admin role
	).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)       // GET /api/admin/users?page=1&per_page=10
		r.Post("/", userHandler.CreateUser)       // POST /api/admin/users
		r.Get("/{id}", userHandler.GetUser)       // GET /api/admin/users/{user-id}
		r.Put("/{id}", userHandler.UpdateUser)    // PUT /api/admin/users/{user-id}
		r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/admin/users/{user-id}
	})
}
