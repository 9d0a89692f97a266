package response

import (
	"time"

	"trek-booking/internal/data/entity"
)

type BookingResponse struct {
	ID           string               `json:"id"`
	OrderID      string               `json:"order_id"`
	UserID       string               `json:"user_id"`
	TrekID       string               `json:"trek_id"`
	TrekTitle    string               `json:"trek_title,omitempty"`
	StartDate    string               `json:"start_date"`
	Participants int                  `json:"participants"`
	TotalPrice   float64              `json:"total_price"`
	Status       entity.BookingStatus `json:"status"`
	ContactPhone *string              `json:"contact_phone,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, trek *entity.Trek) BookingResponse {
	resp := BookingResponse{
		ID:           booking.ID.String(),
		OrderID:      booking.OrderID,
		UserID:       booking.UserID.String(),
		TrekID:       booking.TrekID.String(),
		StartDate:    booking.StartDate.Format("2006-01-02"),
		Participants: booking.Participants,
		TotalPrice:   booking.TotalPrice,
		Status:       booking.Status,
		ContactPhone: booking.ContactPhone,
		Notes:        booking.Notes,
		CreatedAt:    booking.CreatedAt,
	}

	if trek != nil {
		resp.TrekTitle = trek.Title
	}

	return resp
}
