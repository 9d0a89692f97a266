package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trek-booking/internal/data/entity"
	"trek-booking/internal/data/repository"
	"trek-booking/internal/dto/request"
	"trek-booking/internal/dto/response"
	"trek-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GuideService interface {
	GetGuides(ctx context.Context, req *request.PaginatedRequest, includeInactive bool) (*response.PaginatedResponse[response.GuideResponse], error)
	GetGuideByID(ctx context.Context, guideID string) (*response.GuideResponse, error)
	CreateGuide(ctx context.Context, req *request.CreateGuideRequest) (*response.GuideResponse, error)
	UpdateGuide(ctx context.Context, guideID string, req *request.UpdateGuideRequest) (*response.GuideResponse, error)
	SetGuidePhoto(ctx context.Context, guideID, photoURL string) (*response.GuideResponse, error)
	DeleteGuide(ctx context.Context, guideID string) error
}

type guideService struct {
	guideRepo repository.GuideRepository
	log       *zap.Logger
}

func NewGuideService(guideRepo repository.GuideRepository, log *zap.Logger) GuideService {
	return &guideService{
		guideRepo: guideRepo,
		log:       log,
	}
}

func (gs *guideService) GetGuides(ctx context.Context, req *request.PaginatedRequest, includeInactive bool) (*response.PaginatedResponse[response.GuideResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}

	guides, err := gs.guideRepo.FindAll(ctx, !includeInactive, req.Limit(), req.Offset())
	if err != nil {
		gs.log.Error("Failed to get guides", zap.Error(err))
		return nil, fmt.Errorf("failed to get guides")
	}

	total, err := gs.guideRepo.CountAll(ctx, !includeInactive)
	if err != nil {
		gs.log.Error("Failed to count guides", zap.Error(err))
		return nil, fmt.Errorf("failed to count guides")
	}

	guideResponses := make([]response.GuideResponse, len(guides))
	for i, guide := range guides {
		guideResponses[i] = response.GuideToResponse(guide)
	}

	return response.NewPaginatedResponse(guideResponses, req.Page, req.PerPage, total), nil
}

func (gs *guideService) GetGuideByID(ctx context.Context, guideID string) (*response.GuideResponse, error) {
	id, err := uuid.Parse(guideID)
	if err != nil {
		return nil, fmt.Errorf("invalid guide ID")
	}

	guide, err := gs.guideRepo.FindByID(ctx, id)
	if err != nil {
		gs.log.Error("Failed to find guide", zap.Error(err), zap.String("guide_id", guideID))
		return nil, fmt.Errorf("failed to get guide")
	}
	if guide == nil {
		return nil, fmt.Errorf("guide not found")
	}

	resp := response.GuideToResponse(guide)
	return &resp, nil
}

func (gs *guideService) CreateGuide(ctx context.Context, req *request.CreateGuideRequest) (*response.GuideResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		gs.log.Warn("Create guide validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	guide := &entity.Guide{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.Name,
		Bio:             req.Bio,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           req.Phone,
		ExperienceYears: req.ExperienceYears,
		Languages:       req.Languages,
		IsActive:        true,
	}
	if req.IsActive != nil {
		guide.IsActive = *req.IsActive
	}

	if err := gs.guideRepo.Create(ctx, guide); err != nil {
		gs.log.Error("Failed to create guide", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create guide")
	}

	gs.log.Info("Guide created", zap.String("guide_id", guide.ID.String()))

	resp := response.GuideToResponse(guide)
	return &resp, nil
}

func (gs *guideService) UpdateGuide(ctx context.Context, guideID string, req *request.UpdateGuideRequest) (*response.GuideResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		gs.log.Warn("Update guide validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(guideID)
	if err != nil {
		return nil, fmt.Errorf("invalid guide ID")
	}

	guide, err := gs.guideRepo.FindByID(ctx, id)
	if err != nil {
		gs.log.Error("Failed to find guide for update", zap.Error(err), zap.String("guide_id", guideID))
		return nil, fmt.Errorf("failed to update guide")
	}
	if guide == nil {
		return nil, fmt.Errorf("guide not found")
	}

	if req.Name != nil {
		guide.Name = *req.Name
	}
	if req.Bio != nil {
		guide.Bio = *req.Bio
	}
	if req.Email != nil {
		guide.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		guide.Phone = req.Phone
	}
	if req.ExperienceYears != nil {
		guide.ExperienceYears = *req.ExperienceYears
	}
	if req.Languages != nil {
		guide.Languages = req.Languages
	}
	if req.IsActive != nil {
		guide.IsActive = *req.IsActive
	}
	guide.UpdatedAt = time.Now()

	if err := gs.guideRepo.Update(ctx, guide); err != nil {
		gs.log.Error("Failed to update guide", zap.Error(err), zap.String("guide_id", guideID))
		return nil, fmt.Errorf("failed to update guide")
	}

	resp := response.GuideToResponse(guide)
	return &resp, nil
}

func (gs *guideService) SetGuidePhoto(ctx context.Context, guideID, photoURL string) (*response.GuideResponse, error) {
	id, err := uuid.Parse(guideID)
	if err != nil {
		return nil, fmt.Errorf("invalid guide ID")
	}

	guide, err := gs.guideRepo.FindByID(ctx, id)
	if err != nil {
		gs.log.Error("Failed to find guide for photo update", zap.Error(err), zap.String("guide_id", guideID))
		return nil, fmt.Errorf("failed to update guide")
	}
	if guide == nil {
		return nil, fmt.Errorf("guide not found")
	}

	guide.PhotoURL = &photoURL
	guide.UpdatedAt = time.Now()

	if err := gs.guideRepo.Update(ctx, guide); err != nil {
		gs.log.Error("Failed to save guide photo", zap.Error(err), zap.String("guide_id", guideID))
		return nil, fmt.Errorf("failed to update guide")
	}

	resp := response.GuideToResponse(guide)
	return &resp, nil
}

func (gs *guideService) DeleteGuide(ctx context.Context, guideID string) error {
	id, err := uuid.Parse(guideID)
	if err != nil {
		return fmt.Errorf("invalid guide ID")
	}

	guide, err := gs.guideRepo.FindByID(ctx, id)
	if err != nil {
		gs.log.Error("Failed to get guide for delete", zap.Error(err), zap.String("id", guideID))
		return fmt.Errorf("failed to delete guide")
	}
	if guide == nil {
		return fmt.Errorf("guide not found")
	}

	if err := gs.guideRepo.Delete(ctx, id); err != nil {
		gs.log.Error("Failed to delete guide", zap.Error(err), zap.String("id", guideID))
		return fmt.Errorf("failed to delete guide")
	}

	gs.log.Info("Guide deleted", zap.String("guide_id", id.String()))
	return nil
}
