package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trek-booking/internal/data/entity"
	"trek-booking/internal/data/repository"
	"trek-booking/internal/dto/request"
	"trek-booking/internal/dto/response"
	"trek-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TrekService interface {
	GetTreks(ctx context.Context, req *request.TrekListRequest, includeInactive bool) (*response.PaginatedResponse[response.TrekResponse], error)
	GetTrekByID(ctx context.Context, trekID string) (*response.TrekResponse, error)
	CreateTrek(ctx context.Context, req *request.CreateTrekRequest) (*response.TrekResponse, error)
	UpdateTrek(ctx context.Context, trekID string, req *request.UpdateTrekRequest) (*response.TrekResponse, error)
	SetTrekImage(ctx context.Context, trekID, imageURL string) (*response.TrekResponse, error)
	DeleteTrek(ctx context.Context, trekID string) error
}

type trekService struct {
	trekRepo repository.TrekRepository
	log      *zap.Logger
}

func NewTrekService(trekRepo repository.TrekRepository, log *zap.Logger) TrekService {
	return &trekService{
		trekRepo: trekRepo,
		log:      log,
	}
}

func (ts *trekService) GetTreks(ctx context.Context, req *request.TrekListRequest, includeInactive bool) (*response.PaginatedResponse[response.TrekResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}

	filter := repository.TrekFilter{
		Region:     req.Region,
		Difficulty: req.Difficulty,
		OnlyActive: !includeInactive,
	}

	treks, err := ts.trekRepo.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		ts.log.Error("Failed to get treks", zap.Error(err))
		return nil, fmt.Errorf("failed to get treks")
	}

	total, err := ts.trekRepo.CountAll(ctx, filter)
	if err != nil {
		ts.log.Error("Failed to count treks", zap.Error(err))
		return nil, fmt.Errorf("failed to count treks")
	}

	trekResponses := make([]response.TrekResponse, len(treks))
	for i, trek := range treks {
		trekResponses[i] = response.TrekToResponse(trek)
	}

	return response.NewPaginatedResponse(trekResponses, req.Page, req.PerPage, total), nil
}

func (ts *trekService) GetTrekByID(ctx context.Context, trekID string) (*response.TrekResponse, error) {
	id, err := uuid.Parse(trekID)
	if err != nil {
		return nil, fmt.Errorf("invalid trek ID")
	}

	trek, err := ts.trekRepo.FindByID(ctx, id)
	if err != nil {
		ts.log.Error("Failed to find trek", zap.Error(err), zap.String("trek_id", trekID))
		return nil, fmt.Errorf("failed to get trek")
	}
	if trek == nil {
		return nil, fmt.Errorf("trek not found")
	}

	resp := response.TrekToResponse(trek)
	return &resp, nil
}

func (ts *trekService) CreateTrek(ctx context.Context, req *request.CreateTrekRequest) (*response.TrekResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ts.log.Warn("Create trek validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	trek := &entity.Trek{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:        req.Title,
		Slug:         utils.Slugify(req.Title),
		Description:  req.Description,
		Region:       req.Region,
		Difficulty:   entity.TrekDifficulty(req.Difficulty),
		DurationDays: req.DurationDays,
		MaxAltitude:  req.MaxAltitude,
		Price:        req.Price,
		MaxGroupSize: req.MaxGroupSize,
		IsActive:     true,
	}
	if trek.MaxGroupSize == 0 {
		trek.MaxGroupSize = 12
	}
	if req.IsActive != nil {
		trek.IsActive = *req.IsActive
	}

	if err := ts.trekRepo.Create(ctx, trek); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, fmt.Errorf("a trek with this title already exists")
		}
		ts.log.Error("Failed to create trek", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create trek")
	}

	ts.log.Info("Trek created",
		zap.String("trek_id", trek.ID.String()),
		zap.String("slug", trek.Slug))

	resp := response.TrekToResponse(trek)
	return &resp, nil
}

func (ts *trekService) UpdateTrek(ctx context.Context, trekID string, req *request.UpdateTrekRequest) (*response.TrekResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ts.log.Warn("Update trek validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(trekID)
	if err != nil {
		return nil, fmt.Errorf("invalid trek ID")
	}

	trek, err := ts.trekRepo.FindByID(ctx, id)
	if err != nil {
		ts.log.Error("Failed to find trek for update", zap.Error(err), zap.String("trek_id", trekID))
		return nil, fmt.Errorf("failed to update trek")
	}
	if trek == nil {
		return nil, fmt.Errorf("trek not found")
	}

	if req.Title != nil {
		trek.Title = *req.Title
		trek.Slug = utils.Slugify(*req.Title)
	}
	if req.Description != nil {
		trek.Description = *req.Description
	}
	if req.Region != nil {
		trek.Region = *req.Region
	}
	if req.Difficulty != nil {
		trek.Difficulty = entity.TrekDifficulty(*req.Difficulty)
	}
	if req.DurationDays != nil {
		trek.DurationDays = *req.DurationDays
	}
	if req.MaxAltitude != nil {
		trek.MaxAltitude = *req.MaxAltitude
	}
	if req.Price != nil {
		trek.Price = *req.Price
	}
	if req.MaxGroupSize != nil {
		trek.MaxGroupSize = *req.MaxGroupSize
	}
	if req.IsActive != nil {
		trek.IsActive = *req.IsActive
	}
	trek.UpdatedAt = time.Now()

	if err := ts.trekRepo.Update(ctx, trek); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, fmt.Errorf("a trek with this title already exists")
		}
		ts.log.Error("Failed to update trek", zap.Error(err), zap.String("trek_id", trekID))
		return nil, fmt.Errorf("failed to update trek")
	}

	resp := response.TrekToResponse(trek)
	return &resp, nil
}

// SetTrekImage stores only the URL produced by the upload storage.
func (ts *trekService) SetTrekImage(ctx context.Context, trekID, imageURL string) (*response.TrekResponse, error) {
	id, err := uuid.Parse(trekID)
	if err != nil {
		return nil, fmt.Errorf("invalid trek ID")
	}

	trek, err := ts.trekRepo.FindByID(ctx, id)
	if err != nil {
		ts.log.Error("Failed to find trek for image update", zap.Error(err), zap.String("trek_id", trekID))
		return nil, fmt.Errorf("failed to update trek")
	}
	if trek == nil {
		return nil, fmt.Errorf("trek not found")
	}

	trek.ImageURL = &imageURL
	trek.UpdatedAt = time.Now()

	if err := ts.trekRepo.Update(ctx, trek); err != nil {
		ts.log.Error("Failed to save trek image", zap.Error(err), zap.String("trek_id", trekID))
		return nil, fmt.Errorf("failed to update trek")
	}

	resp := response.TrekToResponse(trek)
	return &resp, nil
}

func (ts *trekService) DeleteTrek(ctx context.Context, trekID string) error {
	id, err := uuid.Parse(trekID)
	if err != nil {
		return fmt.Errorf("invalid trek ID")
	}

	trek, err := ts.trekRepo.FindByID(ctx, id)
	if err != nil {
		ts.log.Error("Failed to get trek for delete", zap.Error(err), zap.String("id", trekID))
		return fmt.Errorf("failed to delete trek")
	}
	if trek == nil {
		return fmt.Errorf("trek not found")
	}

	if err := ts.trekRepo.Delete(ctx, id); err != nil {
		ts.log.Error("Failed to delete trek", zap.Error(err), zap.String("id", trekID))
		return fmt.Errorf("failed to delete trek")
	}

	ts.log.Info("Trek deleted", zap.String("trek_id", id.String()))
	return nil
}
