package usecase

import (
	"context"
	"testing"

	"trek-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGuideService(t *testing.T) GuideService {
	return NewGuideService(newMemGuideRepo(), zap.NewNop())
}

func TestCreateGuide(t *testing.T) {
	svc := newTestGuideService(t)

	guide, err := svc.CreateGuide(context.Background(), &request.CreateGuideRequest{
		Name:            "Tashi Lama",
		Bio:             "Twelve seasons on the Annapurna circuit.",
		Email:           "  Tashi@Example.COM ",
		ExperienceYears: 12,
	})
	require.NoError(t, err)

	assert.Equal(t, "tashi@example.com", guide.Email)
	assert.True(t, guide.IsActive)
}

func TestCreateGuide_InvalidEmail(t *testing.T) {
	svc := newTestGuideService(t)

	_, err := svc.CreateGuide(context.Background(), &request.CreateGuideRequest{
		Name:  "Tashi Lama",
		Bio:   "bio",
		Email: "not-an-email",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetGuides_InactiveHiddenFromPublic(t *testing.T) {
	svc := newTestGuideService(t)

	_, err := svc.CreateGuide(context.Background(), &request.CreateGuideRequest{
		Name:  "Active Guide",
		Bio:   "bio",
		Email: "active@example.com",
	})
	require.NoError(t, err)

	_, err = svc.CreateGuide(context.Background(), &request.CreateGuideRequest{
		Name:     "Retired Guide",
		Bio:      "bio",
		Email:    "retired@example.com",
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	public, err := svc.GetGuides(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10}, false)
	require.NoError(t, err)
	assert.Len(t, public.Data, 1)

	admin, err := svc.GetGuides(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10}, true)
	require.NoError(t, err)
	assert.Len(t, admin.Data, 2)
}

func TestUpdateGuide_NotFound(t *testing.T) {
	svc := newTestGuideService(t)

	_, err := svc.UpdateGuide(context.Background(), "a2f5b1f0-9f55-4f79-a54b-13f1d8e3a001", &request.UpdateGuideRequest{
		Name: strPtr("New Name"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "guide not found")

	_, err = svc.UpdateGuide(context.Background(), "not-a-uuid", &request.UpdateGuideRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid guide ID")
}

func TestSetGuidePhoto(t *testing.T) {
	svc := newTestGuideService(t)

	guide, err := svc.CreateGuide(context.Background(), &request.CreateGuideRequest{
		Name:  "Tashi Lama",
		Bio:   "bio",
		Email: "tashi@example.com",
	})
	require.NoError(t, err)

	updated, err := svc.SetGuidePhoto(context.Background(), guide.ID, "http://localhost:8080/uploads/2026/08/tashi.jpg")
	require.NoError(t, err)
	require.NotNil(t, updated.PhotoURL)
	assert.Equal(t, "http://localhost:8080/uploads/2026/08/tashi.jpg", *updated.PhotoURL)
}

func TestDeleteGuide(t *testing.T) {
	svc := newTestGuideService(t)

	guide, err := svc.CreateGuide(context.Background(), &request.CreateGuideRequest{
		Name:  "Tashi Lama",
		Bio:   "bio",
		Email: "tashi@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGuide(context.Background(), guide.ID))

	_, err = svc.GetGuideByID(context.Background(), guide.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "guide not found")
}
