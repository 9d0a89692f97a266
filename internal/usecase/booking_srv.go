package usecase

import (
	"context"
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

const startDateLayout = "2006-01-02"

type BookingService interface {
	CreateBooking(ctx context.Context, caller Caller, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, caller Caller, bookingID string) (*response.BookingResponse, error)
	GetBookings(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateBooking(ctx context.Context, caller Caller, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, caller Caller, bookingID string) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	trekRepo    repository.TrekRepository
	log         *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		bookingRepo: repo.Booking,
		trekRepo:    repo.Trek,
		log:         log,
	}
}

// CreateBooking prices the booking server-side from the trek's current
// price; client-supplied totals are never trusted.
func (bs *bookingService) CreateBooking(ctx context.Context, caller Caller, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		bs.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	trekID, err := uuid.Parse(req.TrekID)
	if err != nil {
		return nil, fmt.Errorf("invalid trek ID")
	}

	startDate, err := time.Parse(startDateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: start_date must be in YYYY-MM-DD format")
	}
	if startDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("validation failed: start_date must not be in the past")
	}

	trek, err := bs.trekRepo.FindByID(ctx, trekID)
	if err != nil {
		bs.log.Error("Failed to find trek for booking", zap.Error(err), zap.String("trek_id", req.TrekID))
		return nil, fmt.Errorf("failed to create booking")
	}
	if trek == nil || !trek.IsActive {
		return nil, fmt.Errorf("trek not found")
	}

	if req.Participants > trek.MaxGroupSize {
		return nil, fmt.Errorf("validation failed: participants exceeds the group size limit of %d", trek.MaxGroupSize)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:      utils.GenerateOrderID(),
		UserID:       caller.ID,
		TrekID:       trek.ID,
		StartDate:    startDate,
		Participants: req.Participants,
		TotalPrice:   trek.Price * float64(req.Participants),
		Status:       entity.BookingStatusPending,
		ContactPhone: req.ContactPhone,
		Notes:        req.Notes,
	}

	if err := bs.bookingRepo.Create(ctx, booking); err != nil {
		bs.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", caller.ID.String()),
			zap.String("trek_id", trek.ID.String()),
		)
		return nil, fmt.Errorf("failed to create booking")
	}

	bs.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("user_id", caller.ID.String()),
	)

	resp := response.BookingToResponse(booking, trek)
	return &resp, nil
}

func (bs *bookingService) GetBookingByID(ctx context.Context, caller Caller, bookingID string) (*response.BookingResponse, error) {
	booking, err := bs.findOwnedBooking(ctx, caller, bookingID)
	if err != nil {
		return nil, err
	}

	trek, err := bs.trekRepo.FindByID(ctx, booking.TrekID)
	if err != nil {
		bs.log.Warn("Failed to load trek for booking", zap.Error(err), zap.String("booking_id", bookingID))
	}

	resp := response.BookingToResponse(booking, trek)
	return &resp, nil
}

// GetBookings lists the caller's own bookings; admins see everyone's.
func (bs *bookingService) GetBookings(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}

	var (
		bookings []*entity.Booking
		total    int64
		err      error
	)

	if caller.IsAdmin() {
		bookings, err = bs.bookingRepo.FindAll(ctx, req.Limit(), req.Offset())
		if err == nil {
			total, err = bs.bookingRepo.CountAll(ctx)
		}
	} else {
		bookings, err = bs.bookingRepo.FindByUser(ctx, caller.ID, req.Limit(), req.Offset())
		if err == nil {
			total, err = bs.bookingRepo.CountByUser(ctx, caller.ID)
		}
	}
	if err != nil {
		bs.log.Error("Failed to get bookings", zap.Error(err), zap.String("user_id", caller.ID.String()))
		return nil, fmt.Errorf("failed to get bookings")
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		trek, trekErr := bs.trekRepo.FindByID(ctx, booking.TrekID)
		if trekErr != nil {
			bs.log.Warn("Failed to load trek for booking list",
				zap.Error(trekErr),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		bookingResponses[i] = response.BookingToResponse(booking, trek)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (bs *bookingService) UpdateBooking(ctx context.Context, caller Caller, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		bs.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := bs.findOwnedBooking(ctx, caller, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusCompleted {
		return nil, fmt.Errorf("booking can no longer be modified")
	}

	trek, err := bs.trekRepo.FindByID(ctx, booking.TrekID)
	if err != nil {
		bs.log.Error("Failed to load trek for booking update", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to update booking")
	}

	if req.StartDate != nil {
		startDate, err := time.Parse(startDateLayout, *req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("validation failed: start_date must be in YYYY-MM-DD format")
		}
		booking.StartDate = startDate
	}
	if req.Participants != nil {
		if trek != nil && *req.Participants > trek.MaxGroupSize {
			return nil, fmt.Errorf("validation failed: participants exceeds the group size limit of %d", trek.MaxGroupSize)
		}
		booking.Participants = *req.Participants
		if trek != nil {
			booking.TotalPrice = trek.Price * float64(*req.Participants)
		}
	}
	if req.ContactPhone != nil {
		booking.ContactPhone = req.ContactPhone
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}
	// Status transitions are an admin concern; a non-admin value is dropped.
	if req.Status != nil && caller.IsAdmin() {
		booking.Status = entity.BookingStatus(*req.Status)
	}
	booking.UpdatedAt = time.Now()

	if err := bs.bookingRepo.Update(ctx, booking); err != nil {
		bs.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to update booking")
	}

	bs.log.Info("Booking updated", zap.String("booking_id", booking.ID.String()))

	resp := response.BookingToResponse(booking, trek)
	return &resp, nil
}

// CancelBooking soft-deletes the row; the record stays queryable for
// admin reporting with status cancelled.
func (bs *bookingService) CancelBooking(ctx context.Context, caller Caller, bookingID string) error {
	booking, err := bs.findOwnedBooking(ctx, caller, bookingID)
	if err != nil {
		return err
	}

	if err := bs.bookingRepo.Delete(ctx, booking.ID); err != nil {
		bs.log.Error("Failed to cancel booking", zap.Error(err), zap.String("id", bookingID))
		return fmt.Errorf("failed to cancel booking")
	}

	bs.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", caller.ID.String()),
	)
	return nil
}

// findOwnedBooking resolves the booking and enforces ownership: non-admin
// callers only ever see their own rows.
func (bs *bookingService) findOwnedBooking(ctx context.Context, caller Caller, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID")
	}

	booking, err := bs.bookingRepo.FindByID(ctx, id)
	if err != nil {
		bs.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to get booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	if booking.UserID != caller.ID && !caller.IsAdmin() {
		return nil, fmt.Errorf("forbidden: cannot access another user's booking")
	}

	return booking, nil
}
