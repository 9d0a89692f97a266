package usecase

import (
	"context"
	"testing"

	"trek-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTrekService(t *testing.T) (TrekService, *memTrekRepo) {
	repo := newMemTrekRepo()
	return NewTrekService(repo, zap.NewNop()), repo
}

func TestCreateTrek(t *testing.T) {
	svc, _ := newTestTrekService(t)

	trek, err := svc.CreateTrek(context.Background(), &request.CreateTrekRequest{
		Title:        "Annapurna Circuit Trek",
		Description:  "The classic circuit.",
		Region:       "Annapurna",
		Difficulty:   "moderate",
		DurationDays: 18,
		Price:        950,
	})
	require.NoError(t, err)

	assert.Equal(t, "annapurna-circuit-trek", trek.Slug)
	assert.Equal(t, 12, trek.MaxGroupSize, "default group size")
	assert.True(t, trek.IsActive)
}

func TestCreateTrek_DuplicateTitle(t *testing.T) {
	svc, _ := newTestTrekService(t)

	req := &request.CreateTrekRequest{
		Title:        "Annapurna Circuit Trek",
		Description:  "The classic circuit.",
		Region:       "Annapurna",
		Difficulty:   "moderate",
		DurationDays: 18,
		Price:        950,
	}

	_, err := svc.CreateTrek(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateTrek(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateTrek_InvalidDifficulty(t *testing.T) {
	svc, _ := newTestTrekService(t)

	_, err := svc.CreateTrek(context.Background(), &request.CreateTrekRequest{
		Title:        "Mystery Trek",
		Description:  "??",
		Region:       "Nowhere",
		Difficulty:   "impossible",
		DurationDays: 3,
		Price:        100,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetTreks_PublicHidesInactive(t *testing.T) {
	svc, _ := newTestTrekService(t)

	_, err := svc.CreateTrek(context.Background(), &request.CreateTrekRequest{
		Title:        "Visible Trek",
		Description:  "on sale",
		Region:       "Langtang",
		Difficulty:   "easy",
		DurationDays: 5,
		Price:        300,
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.CreateTrek(context.Background(), &request.CreateTrekRequest{
		Title:        "Hidden Trek",
		Description:  "not on sale",
		Region:       "Langtang",
		Difficulty:   "easy",
		DurationDays: 5,
		Price:        300,
		IsActive:     &inactive,
	})
	require.NoError(t, err)

	req := &request.TrekListRequest{PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10}}

	public, err := svc.GetTreks(context.Background(), req, false)
	require.NoError(t, err)
	assert.Len(t, public.Data, 1)

	admin, err := svc.GetTreks(context.Background(), req, true)
	require.NoError(t, err)
	assert.Len(t, admin.Data, 2)
}

func TestUpdateTrek_NotFound(t *testing.T) {
	svc, _ := newTestTrekService(t)

	_, err := svc.UpdateTrek(context.Background(), "7b2ecb53-13a2-4f60-9cf4-d6d9e6579ace", &request.UpdateTrekRequest{
		Price: float64Ptr(1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func float64Ptr(f float64) *float64 { return &f }

func TestSetTrekImage(t *testing.T) {
	svc, _ := newTestTrekService(t)

	trek, err := svc.CreateTrek(context.Background(), &request.CreateTrekRequest{
		Title:        "Photo Trek",
		Description:  "scenic",
		Region:       "Mustang",
		Difficulty:   "hard",
		DurationDays: 10,
		Price:        700,
	})
	require.NoError(t, err)

	updated, err := svc.SetTrekImage(context.Background(), trek.ID, "http://localhost:8080/uploads/2026/08/x.jpg")
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "http://localhost:8080/uploads/2026/08/x.jpg", *updated.ImageURL)
}
