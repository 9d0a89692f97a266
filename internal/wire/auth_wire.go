package wire

import (
	"trek-booking/internal/adaptor"
	"trek-booking/pkg/middleware"
	"trek-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth configures the authentication routes. The /api/auth/{id}
// profile routes live here because they share the auth prefix; ownership
// is enforced in the service layer.
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/set-cookies", authHandler.SetCookies)
		r.Post("/logout", authHandler.Logout)
		r.Post("/forgot-password", authHandler.ForgotPassword)
		r.Post("/reset-password", authHandler.ResetPassword)
		r.Post("/send-verification-email", authHandler.SendVerificationEmail)
		r.Post("/verify-email", authHandler.VerifyEmail)

		// ==================== PROTECTED PROFILE ROUTES ====================
		r.With(middleware.Auth(config.JWT.Secret, log)).Get("/{id}", userHandler.GetProfile)
		r.With(middleware.Auth(config.JWT.Secret, log)).Put("/{id}", userHandler.UpdateProfile)
	})
}
