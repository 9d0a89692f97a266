package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trek-booking/internal/data/entity"
	"trek-booking/internal/data/repository"
	"trek-booking/internal/dto/request"
	"trek-booking/internal/dto/response"
	"trek-booking/pkg/mailer"
	"trek-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	resetTokenValidity  = 1 * time.Hour
	verifyTokenValidity = 24 * time.Hour
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	SendVerificationEmail(ctx context.Context, email string) (string, error)
	VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error
}

type authService struct {
	repo    *repository.Repository
	config  *utils.Config
	mail    mailer.Mailer
	backend *http.Client
	log     *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:    repo,
		config:  config,
		mail:    mail,
		backend: &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 3. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:  hashedPassword,
		Phone:         req.Phone,
		Role:          entity.RoleUser,
		EmailVerified: false,
		IsActive:      true,
	}

	// 4. Save user. The unique index is authoritative for duplicates, so
	// two concurrent registrations cannot both slip through.
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, fmt.Errorf("email already registered")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 5. Send verification email (async, best-effort)
	go s.sendVerificationAsync(user.Email)

	// 6. Auto login after register
	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to issue token after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, token, expiresAt), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	// 3. User not found: same message as a bad password
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 4. Check credentials, delegated to the identity backend when one
	// is configured
	if !s.verifyCredentials(ctx, user, req.Password) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 5. Check if user is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("account is deactivated")
	}

	// 6. Issue token
	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, token, expiresAt), nil
}

// ForgotPassword stores a one-way hash of a fresh reset token and mails the
// link. The returned link is non-empty only in debug mode; callers always
// answer with the same generic message so accounts cannot be enumerated.
func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for password reset", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to process request")
	}
	if user == nil {
		// No account, same outward behavior as success.
		return "", nil
	}

	token, err := utils.GenerateSecureToken()
	if err != nil {
		s.log.Error("Failed to generate reset token", zap.Error(err))
		return "", fmt.Errorf("failed to process request")
	}

	hash := utils.HashToken(token)
	expires := time.Now().Add(resetTokenValidity)

	user.ResetTokenHash = &hash
	user.ResetTokenExpires = &expires
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to store reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("failed to process request")
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.App.BaseURL, token, url.QueryEscape(user.Email))

	go s.sendMailAsync(user.Email, "Reset your password",
		"Use the link below to reset your password. It expires in 1 hour.\n\n"+link)

	if s.config.App.Debug {
		return link, nil
	}
	return "", nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reset password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to reset password")
	}

	if user == nil || !tokenMatches(user.ResetTokenHash, user.ResetTokenExpires, req.Token) {
		return fmt.Errorf("invalid or expired reset token")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("failed to reset password")
	}

	// Token is single use: cleared together with the password change.
	user.PasswordHash = hashedPassword
	user.ResetTokenHash = nil
	user.ResetTokenExpires = nil
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to reset password")
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) SendVerificationEmail(ctx context.Context, email string) (string, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for verification", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to send verification email")
	}
	if user == nil {
		return "", fmt.Errorf("user not found")
	}
	if user.EmailVerified {
		return "", fmt.Errorf("email already verified")
	}

	token, err := utils.GenerateSecureToken()
	if err != nil {
		s.log.Error("Failed to generate verification token", zap.Error(err))
		return "", fmt.Errorf("failed to send verification email")
	}

	hash := utils.HashToken(token)
	expires := time.Now().Add(verifyTokenValidity)

	user.VerifyTokenHash = &hash
	user.VerifyTokenExpires = &expires
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to store verification token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("failed to send verification email")
	}

	link := fmt.Sprintf("%s/verify-email?token=%s&email=%s",
		s.config.App.BaseURL, token, url.QueryEscape(user.Email))

	go s.sendMailAsync(user.Email, "Verify your email",
		"Confirm your email address using the link below.\n\n"+link)

	if s.config.App.Debug {
		return link, nil
	}
	return "", nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify email validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for verification", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to verify email")
	}

	if user == nil || !tokenMatches(user.VerifyTokenHash, user.VerifyTokenExpires, req.Token) {
		return fmt.Errorf("invalid or expired verification token")
	}

	user.EmailVerified = true
	user.VerifyTokenHash = nil
	user.VerifyTokenExpires = nil
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update verification status", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to verify email")
	}

	s.log.Info("Email verified",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID.String()))

	return nil
}

// ==================== HELPER METHODS ====================

// tokenMatches treats an expired hash as absent regardless of match.
func tokenMatches(storedHash *string, expires *time.Time, token string) bool {
	if storedHash == nil || expires == nil {
		return false
	}
	if time.Now().After(*expires) {
		return false
	}
	return *storedHash == utils.HashToken(token)
}

func (s *authService) issueToken(user *entity.User) (string, time.Time, error) {
	validity := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	return utils.GenerateJWT(user.ID.String(), user.Email, string(user.Role), s.config.JWT.Secret, validity)
}

// verifyCredentials checks the password locally or, when an external
// identity backend is configured, delegates the check to it. Every token
// this service hands out is still signed locally, so nothing downstream
// ever has to trust an unverifiable claim.
func (s *authService) verifyCredentials(ctx context.Context, user *entity.User, password string) bool {
	if s.config.AuthBackend.BaseURL == "" {
		return utils.CheckPasswordHash(password, user.PasswordHash)
	}

	ok, err := s.delegateLogin(ctx, user.Email, password)
	if err != nil {
		// Backend unreachable: fall back to the local digest.
		s.log.Warn("Identity backend unreachable, falling back to local check",
			zap.Error(err), zap.String("email", user.Email))
		return utils.CheckPasswordHash(password, user.PasswordHash)
	}

	return ok
}

func (s *authService) delegateLogin(ctx context.Context, email, password string) (bool, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return false, err
	}

	endpoint := strings.TrimRight(s.config.AuthBackend.BaseURL, "/") + "/api/auth/login"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.backend.Do(httpReq)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return false, nil
	default:
		return false, fmt.Errorf("identity backend returned %d", resp.StatusCode)
	}
}

func (s *authService) sendVerificationAsync(email string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.SendVerificationEmail(ctx, email); err != nil {
		s.log.Error("Failed to send verification email", zap.Error(err), zap.String("email", email))
	}
}

func (s *authService) sendMailAsync(to, subject, body string) {
	if err := s.mail.Send(to, subject, body); err != nil {
		s.log.Error("Failed to send email", zap.Error(err), zap.String("to", to))
	}
}
