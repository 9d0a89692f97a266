package usecase

import (
	"context"
	"testing"
	"time"

	"trek-booking/internal/data/entity"
	"trek-booking/internal/data/repository"
	"trek-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBookingService(t *testing.T) (BookingService, *repository.Repository) {
	repo := &repository.Repository{
		User:    newMemUserRepo(),
		Trek:    newMemTrekRepo(),
		Booking: newMemBookingRepo(),
	}
	return NewBookingService(repo, zap.NewNop()), repo
}

func seedTrek(t *testing.T, repo *repository.Repository, price float64, maxGroup int, active bool) *entity.Trek {
	t.Helper()
	trek := &entity.Trek{
		Base:         entity.Base{ID: uuid.New()},
		Title:        "Everest Base Camp " + uuid.NewString(),
		Slug:         "everest-base-camp-" + uuid.NewString(),
		Region:       "Khumbu",
		Difficulty:   entity.DifficultyHard,
		DurationDays: 14,
		Price:        price,
		MaxGroupSize: maxGroup,
		IsActive:     active,
	}
	require.NoError(t, repo.Trek.Create(context.Background(), trek))
	return trek
}

func futureDate() string {
	return time.Now().AddDate(0, 1, 0).Format("2006-01-02")
}

func TestCreateBooking_PriceComputedServerSide(t *testing.T) {
	svc, repo := newTestBookingService(t)
	trek := seedTrek(t, repo, 1200, 12, true)
	caller := Caller{ID: uuid.New(), Role: "user"}

	booking, err := svc.CreateBooking(context.Background(), caller, &request.CreateBookingRequest{
		TrekID:       trek.ID.String(),
		StartDate:    futureDate(),
		Participants: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3600.0, booking.TotalPrice)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, caller.ID.String(), booking.UserID)
	assert.Regexp(t, `^TRK-`, booking.OrderID)
	assert.Equal(t, trek.Title, booking.TrekTitle)
}

func TestCreateBooking_GroupSizeCap(t *testing.T) {
	svc, repo := newTestBookingService(t)
	trek := seedTrek(t, repo, 1200, 5, true)
	caller := Caller{ID: uuid.New(), Role: "user"}

	_, err := svc.CreateBooking(context.Background(), caller, &request.CreateBookingRequest{
		TrekID:       trek.ID.String(),
		StartDate:    futureDate(),
		Participants: 6,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group size")
}

func TestCreateBooking_InactiveTrek(t *testing.T) {
	svc, repo := newTestBookingService(t)
	trek := seedTrek(t, repo, 1200, 12, false)
	caller := Caller{ID: uuid.New(), Role: "user"}

	_, err := svc.CreateBooking(context.Background(), caller, &request.CreateBookingRequest{
		TrekID:       trek.ID.String(),
		StartDate:    futureDate(),
		Participants: 2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBooking_PastStartDate(t *testing.T) {
	svc, repo := newTestBookingService(t)
	trek := seedTrek(t, repo, 1200, 12, true)
	caller := Caller{ID: uuid.New(), Role: "user"}

	_, err := svc.CreateBooking(context.Background(), caller, &request.CreateBookingRequest{
		TrekID:       trek.ID.String(),
		StartDate:    "2020-01-01",
		Participants: 2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "past")
}

func TestGetBookingByID_OwnershipEnforced(t *testing.T) {
	svc, repo := newTestBookingService(t)
	trek := seedTrek(t, repo, 1000, 12, true)

	owner := Caller{ID: uuid.New(), Role: "user"}
	booking, err := svc.CreateBooking(context.Background(), owner, &request.CreateBookingRequest{
		TrekID:       trek.ID.String(),
		StartDate:    futureDate(),
		Participants: 2,
	})
	require.NoError(t, err)

	// Owner reads fine
	_, err = svc.GetBookingByID(context.Background(), owner, booking.ID)
	require.NoError(t, err)

	// Another user is rejected
	stranger := Caller{ID: uuid.New(), Role: "user"}
	_, err = svc.GetBookingByID(context.Background(), stranger, booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	// An admin reads anything
	admin := Caller{ID: uuid.New(), Role: "admin"}
	_, err = svc.GetBookingByID(context.Background(), admin, booking.ID)
	require.NoError(t, err)
}

func TestGetBookings_ScopedToCaller(t *testing.T) {
	svc, repo := newTestBookingService(t)
	trek := seedTrek(t, repo, 1000, 12, true)

	alice := Caller{ID: uuid.New(), Role: "user"}
	bob := Caller{ID: uuid.New(), Role: "user"}

	for _, caller := range []Caller{alice, alice, bob} {
		_, err := svc.CreateBooking(context.Background(), caller, &request.CreateBookingRequest{
			TrekID:       trek.ID.String(),
			StartDate:    futureDate(),
			Participants: 1,
		})
		require.NoError(t, err)
	}

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}

	mine, err := svc.GetBookings(context.Background(), alice, page)
	require.NoError(t, err)
	assert.Len(t, mine.Data, 2)

	all, err := svc.GetBookings(context.Background(), Caller{ID: uuid.New(), Role: "admin"}, page)
	require.NoError(t, err)
	assert.Len(t, all.Data, 3)
}

// A non-admin's status field is dropped; an admin's is applied.
func TestUpdateBooking_StatusAdminOnly(t *testing.T) {
	svc, repo := newTestBookingService(t)
	trek := seedTrek(t, repo, 1000, 12, true)

	owner := Caller{ID: uuid.New(), Role: "user"}
	booking, err := svc.CreateBooking(context.Background(), owner, &request.CreateBookingRequest{
		TrekID:       trek.ID.String(),
		StartDate:    futureDate(),
		Participants: 2,
	})
	require.NoError(t, err)

	status := "confirmed"
	updated, err := svc.UpdateBooking(context.Background(), owner, booking.ID, &request.UpdateBookingRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, updated.Status)

	admin := Caller{ID: uuid.New(), Role: "admin"}
	updated, err = svc.UpdateBooking(context.Background(), admin, booking.ID, &request.UpdateBookingRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)
}

func TestUpdateBooking_RepricesOnParticipantsChange(t *testing.T) {
	svc, repo := newTestBookingService(t)
	trek := seedTrek(t, repo, 500, 12, true)

	owner := Caller{ID: uuid.New(), Role: "user"}
	booking, err := svc.CreateBooking(context.Background(), owner, &request.CreateBookingRequest{
		TrekID:       trek.ID.String(),
		StartDate:    futureDate(),
		Participants: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, booking.TotalPrice)

	updated, err := svc.UpdateBooking(context.Background(), owner, booking.ID, &request.UpdateBookingRequest{
		Participants: intPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, updated.TotalPrice)
}

func TestCancelBooking(t *testing.T) {
	svc, repo := newTestBookingService(t)
	trek := seedTrek(t, repo, 1000, 12, true)

	owner := Caller{ID: uuid.New(), Role: "user"}
	booking, err := svc.CreateBooking(context.Background(), owner, &request.CreateBookingRequest{
		TrekID:       trek.ID.String(),
		StartDate:    futureDate(),
		Participants: 2,
	})
	require.NoError(t, err)

	// A stranger cannot cancel it
	stranger := Caller{ID: uuid.New(), Role: "user"}
	err = svc.CancelBooking(context.Background(), stranger, booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	// The owner can
	require.NoError(t, svc.CancelBooking(context.Background(), owner, booking.ID))

	// A cancelled booking can no longer be modified
	_, err = svc.UpdateBooking(context.Background(), owner, booking.ID, &request.UpdateBookingRequest{
		Participants: intPtr(3),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
