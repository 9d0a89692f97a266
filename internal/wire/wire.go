// internal/wire/wire.go
package wire

import (
	"net/http"

	"trek-booking/internal/adaptor"
	"trek-booking/internal/data/repository"
	"trek-booking/internal/usecase"
	"trek-booking/pkg/mailer"
	"trek-booking/pkg/middleware"
	"trek-booking/pkg/storage"
	"trek-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	store storage.Storage,
	logger *zap.Logger,
) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, config, mail, logger)
	handler := adaptor.NewHandler(service, store, logger)

	// Setup router
	router := setupRouter(handler, repo, config, store, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	store storage.Storage,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, handler.User, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireTrek(r, handler.Trek, repo, config, logger)
	wireGuide(r, handler.Guide, repo, config, logger)
	wireBlog(r, handler.Blog, repo, config, logger)
	wireBooking(r, handler.Booking, config, logger)

	// Locally stored uploads are served straight from disk; S3 serves its
	// own URLs.
	if local, ok := store.(*storage.Local); ok {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(local.Dir())))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
