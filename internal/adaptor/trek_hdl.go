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

type TrekHandler struct {
	service usecase.TrekService
	store   storage.Storage
	log     *zap.Logger
}

func NewTrekHandler(service usecase.TrekService, store storage.Storage, log *zap.Logger) *TrekHandler {
	return &TrekHandler{
		service: service,
		store:   store,
		log:     log,
	}
}

// GetTreks handles GET /api/treks?page=1&per_page=10&region=...&difficulty=...
func (h *TrekHandler) GetTreks(w http.ResponseWriter, r *http.Request) {
	page, perPage := paginationFromQuery(r)
	req := request.TrekListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: page, PerPage: perPage},
		Region:           r.URL.Query().Get("region"),
		Difficulty:       r.URL.Query().Get("difficulty"),
	}

	treks, err := h.service.GetTreks(r.Context(), &req, false)
	if err != nil {
		handleServiceError(h.log, w, err, "get treks")
		return
	}

	utils.ResponseSuccess(w, "Treks retrieved successfully", treks)
}

// GetTrekByID handles GET /api/treks/{id}
func (h *TrekHandler) GetTrekByID(w http.ResponseWriter, r *http.Request) {
	trekID := chi.URLParam(r, "id")

	trek, err := h.service.GetTrekByID(r.Context(), trekID)
	if err != nil {
		handleServiceError(h.log, w, err, "get trek")
		return
	}

	utils.ResponseSuccess(w, "Trek retrieved successfully", trek)
}

// ==================== ADMIN HANDLERS ====================

// GetAllTreks handles GET /api/admin/trek-packages, inactive rows included.
func (h *TrekHandler) GetAllTreks(w http.ResponseWriter, r *http.Request) {
	page, perPage := paginationFromQuery(r)
	req := request.TrekListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: page, PerPage: perPage},
		Region:           r.URL.Query().Get("region"),
		Difficulty:       r.URL.Query().Get("difficulty"),
	}

	treks, err := h.service.GetTreks(r.Context(), &req, true)
	if err != nil {
		handleServiceError(h.log, w, err, "get treks")
		return
	}

	utils.ResponseSuccess(w, "Treks retrieved successfully", treks)
}

// CreateTrek handles POST /api/admin/trek-packages
func (h *TrekHandler) CreateTrek(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTrekRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	trek, err := h.service.CreateTrek(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create trek")
		return
	}

	utils.ResponseCreated(w, "Trek created successfully", trek)
}

// UpdateTrek handles PUT /api/admin/trek-packages/{id}
func (h *TrekHandler) UpdateTrek(w http.ResponseWriter, r *http.Request) {
	trekID := chi.URLParam(r, "id")

	var req request.UpdateTrekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	trek, err := h.service.UpdateTrek(r.Context(), trekID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update trek")
		return
	}

	utils.ResponseSuccess(w, "Trek updated successfully", trek)
}

// UploadTrekImage handles POST /api/admin/trek-packages/{id}/image
func (h *TrekHandler) UploadTrekImage(w http.ResponseWriter, r *http.Request) {
	trekID := chi.URLParam(r, "id")

	imageURL, err := saveUploadedImage(r, "image", h.store)
	if err != nil {
		writeUploadError(h.log, w, err, "upload trek image")
		return
	}
	if imageURL == "" {
		utils.ResponseBadRequest(w, "Missing image file", nil)
		return
	}

	trek, err := h.service.SetTrekImage(r.Context(), trekID, imageURL)
	if err != nil {
		handleServiceError(h.log, w, err, "update trek")
		return
	}

	utils.ResponseSuccess(w, "Trek image uploaded successfully", trek)
}

// DeleteTrek handles DELETE /api/admin/trek-packages/{id}
func (h *TrekHandler) DeleteTrek(w http.ResponseWriter, r *http.Request) {
	trekID := chi.URLParam(r, "id")

	if err := h.service.DeleteTrek(r.Context(), trekID); err != nil {
		handleServiceError(h.log, w, err, "delete trek")
		return
	}

	utils.ResponseSuccess(w, "Trek deleted successfully", nil)
}
