package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"trek-booking/internal/dto/request"
	"trek-booking/internal/usecase"
	"trek-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	authTokenCookie = "auth_token"
	userDataCookie  = "user_data"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "register")
		return
	}

	h.setAuthCookie(w, response.Token, response.ExpiresAt)
	utils.ResponseCreated(w, "Registration successful", response)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "login")
		return
	}

	h.setAuthCookie(w, response.Token, response.ExpiresAt)
	utils.ResponseSuccess(w, "Login successful", response)
}

// SetCookies handles POST /api/auth/set-cookies. It mirrors the client's
// session into cookies for server-rendered pages: auth_token stays
// HttpOnly, user_data is readable by scripts but is presentation-only and
// never used to authorize anything.
func (h *AuthHandler) SetCookies(w http.ResponseWriter, r *http.Request) {
	var req request.SetCookiesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	expires := time.Now().Add(7 * 24 * time.Hour)
	h.setAuthCookie(w, req.Token, expires)
	http.SetCookie(w, &http.Cookie{
		Name:     userDataCookie,
		Value:    req.UserData,
		Path:     "/",
		Expires:  expires,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})

	utils.ResponseSuccess(w, "Cookies set", nil)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logout
// only clears the cookies.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{authTokenCookie, userDataCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: name == authTokenCookie,
			SameSite: http.SameSiteLaxMode,
		})
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// ForgotPassword handles POST /api/auth/forgot-password. The response is
// the same whether or not the account exists.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	link, err := h.service.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		handleServiceError(h.log, w, err, "request password reset")
		return
	}

	var data any
	if link != "" {
		// Debug mode only: the link is returned instead of relying on mail.
		data = map[string]string{"reset_link": link}
	}

	utils.ResponseSuccess(w, "If the email is registered, a reset link has been sent", data)
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		handleServiceError(h.log, w, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully", nil)
}

// SendVerificationEmail handles POST /api/auth/send-verification-email
func (h *AuthHandler) SendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	var req request.SendVerificationEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	link, err := h.service.SendVerificationEmail(r.Context(), req.Email)
	if err != nil {
		handleServiceError(h.log, w, err, "send verification email")
		return
	}

	var data any
	if link != "" {
		data = map[string]string{"verification_link": link}
	}

	utils.ResponseSuccess(w, "Verification email sent", data)
}

// VerifyEmail handles POST /api/auth/verify-email
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.VerifyEmail(r.Context(), &req); err != nil {
		handleServiceError(h.log, w, err, "verify email")
		return
	}

	utils.ResponseSuccess(w, "Email verified successfully", nil)
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     authTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
