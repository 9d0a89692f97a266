package repository

import (
	"errors"

	"trek-booking/pkg/database"

	"go.uber.org/zap"
)

// Duplicate sentinels mapped from the storage layer's unique indexes.
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateSlug  = errors.New("slug already in use")
)

type Repository struct {
	User    UserRepository
	Trek    TrekRepository
	Guide   GuideRepository
	Blog    BlogRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Trek:    NewTrekRepository(db, log),
		Guide:   NewGuideRepository(db, log),
		Blog:    NewBlogRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
