package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	Base
	OrderID      string        `db:"order_id"`
	UserID       uuid.UUID     `db:"user_id"`
	TrekID       uuid.UUID     `db:"trek_id"`
	StartDate    time.Time     `db:"start_date"`
	Participants int           `db:"participants"`
	TotalPrice   float64       `db:"total_price"`
	Status       BookingStatus `db:"status"`
	ContactPhone *string       `db:"contact_phone"`
	Notes        *string       `db:"notes"`
}
