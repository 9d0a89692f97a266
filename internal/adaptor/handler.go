package adaptor

import (
	"fmt"
	"net/http"
	"strings"

	"trek-booking/internal/usecase"
	"trek-booking/pkg/storage"
	"trek-booking/pkg/utils"

	"go.uber.org/zap"
)

// maxUploadSize caps image uploads at 5 MB.
const maxUploadSize = 5 << 20

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Trek    *TrekHandler
	Guide   *GuideHandler
	Blog    *BlogHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, store storage.Storage, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, store, log),
		Trek:    NewTrekHandler(service.Trek, store, log),
		Guide:   NewGuideHandler(service.Guide, store, log),
		Blog:    NewBlogHandler(service.Blog, store, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps service error messages to HTTP status codes.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already exists"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "already verified"):
		log.Warn(operation+" failed - already verified", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "forbidden"):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" failed - account deactivated", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid or expired"),
		strings.Contains(errMsg, "invalid") && strings.Contains(errMsg, "ID"),
		strings.Contains(errMsg, "no longer be modified"):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// callerFromContext builds the verified caller identity that the auth
// middleware stored on the request context.
func callerFromContext(r *http.Request) (usecase.Caller, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Caller{}, false
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	return usecase.Caller{ID: userID, Role: role}, true
}

// paginationFromQuery reads page/per_page query params with defaults.
func paginationFromQuery(r *http.Request) (page, perPage int) {
	page = utils.ParseInt(r.URL.Query().Get("page"), 1)
	perPage = utils.ParseInt(r.URL.Query().Get("per_page"), 10)
	return page, perPage
}

// saveUploadedImage validates and stores the named multipart file field,
// returning the public URL. A missing file returns ("", nil) so callers can
// treat the upload as optional.
func saveUploadedImage(r *http.Request, field string, store storage.Storage) (string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", fmt.Errorf("file too large: uploads are limited to 5MB")
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", fmt.Errorf("invalid upload: %s", field)
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return "", fmt.Errorf("file too large: uploads are limited to 5MB")
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("invalid file type: only images are accepted")
	}

	url, err := store.Save(r.Context(), header.Filename, contentType, file)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return url, nil
}

// writeUploadError maps upload failures onto the right status code.
func writeUploadError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "too large"):
		log.Warn(operation+" failed - file too large", zap.Error(err))
		utils.ResponsePayloadTooLarge(w, errMsg)
	case strings.Contains(errMsg, "invalid file type"),
		strings.Contains(errMsg, "invalid upload"):
		log.Warn(operation+" failed - invalid upload", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)
	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Failed to store upload")
	}
}
