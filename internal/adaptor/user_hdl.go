package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"trek-booking/internal/dto/request"
	"trek-booking/internal/usecase"
	"trek-booking/pkg/storage"
	"trek-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	store   storage.Storage
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, store storage.Storage, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		store:   store,
		log:     log,
	}
}

// GetProfile handles GET /api/auth/{id}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID := chi.URLParam(r, "id")

	profile, err := h.service.GetProfile(r.Context(), caller, userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// UpdateProfile handles PUT /api/auth/{id}. The body is either JSON or a
// multipart form carrying an optional avatar image plus a "data" part with
// the JSON fields.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID := chi.URLParam(r, "id")

	var req request.UpdateUserRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		avatarURL, err := saveUploadedImage(r, "avatar", h.store)
		if err != nil {
			writeUploadError(h.log, w, err, "upload avatar")
			return
		}

		if data := r.FormValue("data"); data != "" {
			if err := json.Unmarshal([]byte(data), &req); err != nil {
				utils.ResponseBadRequest(w, "Invalid request body", nil)
				return
			}
		}
		if avatarURL != "" {
			req.AvatarURL = &avatarURL
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	profile, err := h.service.UpdateUser(r.Context(), caller, userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully", profile)
}

// ==================== ADMIN HANDLERS ====================

// GetAllUsers handles GET /api/admin/users?page=1&per_page=10
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	page, perPage := paginationFromQuery(r)
	req := request.PaginatedRequest{Page: page, PerPage: perPage}

	users, err := h.service.GetAllUsers(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetUser handles GET /api/admin/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID := chi.URLParam(r, "id")

	user, err := h.service.GetProfile(r.Context(), caller, userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// CreateUser handles POST /api/admin/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}

// UpdateUser handles PUT /api/admin/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID := chi.URLParam(r, "id")

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), caller, userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		handleServiceError(h.log, w, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}
