package adaptor

import (
	"encoding/json"
	"net/http"

	"trek-booking/internal/dto/request"
	"trek-booking/internal/usecase"
	"trek-booking/pkg/storage"
	"trek-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GuideHandler struct {
	service usecase.GuideService
	store   storage.Storage
	log     *zap.Logger
}

func NewGuideHandler(service usecase.GuideService, store storage.Storage, log *zap.Logger) *GuideHandler {
	return &GuideHandler{
		service: service,
		store:   store,
		log:     log,
	}
}

// GetGuides handles GET /api/guides?page=1&per_page=10
func (h *GuideHandler) GetGuides(w http.ResponseWriter, r *http.Request) {
	page, perPage := paginationFromQuery(r)
	req := request.PaginatedRequest{Page: page, PerPage: perPage}

	guides, err := h.service.GetGuides(r.Context(), &req, false)
	if err != nil {
		handleServiceError(h.log, w, err, "get guides")
		return
	}

	utils.ResponseSuccess(w, "Guides retrieved successfully", guides)
}

// GetGuideByID handles GET /api/guides/{id}
func (h *GuideHandler) GetGuideByID(w http.ResponseWriter, r *http.Request) {
	guideID := chi.URLParam(r, "id")

	guide, err := h.service.GetGuideByID(r.Context(), guideID)
	if err != nil {
		handleServiceError(h.log, w, err, "get guide")
		return
	}

	utils.ResponseSuccess(w, "Guide retrieved successfully", guide)
}

// ==================== ADMIN HANDLERS ====================

// GetAllGuides handles GET /api/admin/guides, inactive rows included.
func (h *GuideHandler) GetAllGuides(w http.ResponseWriter, r *http.Request) {
	page, perPage := paginationFromQuery(r)
	req := request.PaginatedRequest{Page: page, PerPage: perPage}

	guides, err := h.service.GetGuides(r.Context(), &req, true)
	if err != nil {
		handleServiceError(h.log, w, err, "get guides")
		return
	}

	utils.ResponseSuccess(w, "Guides retrieved successfully", guides)
}

// CreateGuide handles POST /api/admin/guides
func (h *GuideHandler) CreateGuide(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuideRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	guide, err := h.service.CreateGuide(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create guide")
		return
	}

	utils.ResponseCreated(w, "Guide created successfully", guide)
}

// UpdateGuide handles PUT /api/admin/guides/{id}
func (h *GuideHandler) UpdateGuide(w http.ResponseWriter, r *http.Request) {
	guideID := chi.URLParam(r, "id")

	var req request.UpdateGuideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	guide, err := h.service.UpdateGuide(r.Context(), guideID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update guide")
		return
	}

	utils.ResponseSuccess(w, "Guide updated successfully", guide)
}

// UploadGuidePhoto handles POST /api/admin/guides/{id}/photo
func (h *GuideHandler) UploadGuidePhoto(w http.ResponseWriter, r *http.Request) {
	guideID := chi.URLParam(r, "id")

	photoURL, err := saveUploadedImage(r, "photo", h.store)
	if err != nil {
		writeUploadError(h.log, w, err, "upload guide photo")
		return
	}
	if photoURL == "" {
		utils.ResponseBadRequest(w, "Missing photo file", nil)
		return
	}

	guide, err := h.service.SetGuidePhoto(r.Context(), guideID, photoURL)
	if err != nil {
		handleServiceError(h.log, w, err, "update guide")
		return
	}

	utils.ResponseSuccess(w, "Guide photo uploaded successfully", guide)
}

// DeleteGuide handles DELETE /api/admin/guides/{id}
func (h *GuideHandler) DeleteGuide(w http.ResponseWriter, r *http.Request) {
	guideID := chi.URLParam(r, "id")

	if err := h.service.DeleteGuide(r.Context(), guideID); err != nil {
		handleServiceError(h.log, w, err, "delete guide")
		return
	}

	utils.ResponseSuccess(w, "Guide deleted successfully", nil)
}
