package wire

import (
	"trek-booking/internal/adaptor"
	"trek-booking/pkg/middleware"
	"trek-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireBooking configures booking routes. All of them require a valid
// token; ownership is enforced in the service layer so admins can manage
// every booking through the same routes.
func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.Auth(config.JWT.Secret, log)).Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)        // POST /api/bookings
		r.Get("/", bookingHandler.GetBookings)           // GET /api/bookings?page=1&per_page=10
		r.Get("/{id}", bookingHandler.GetBookingByID)    // GET /api/bookings/{booking-id}
		r.Put("/{id}", bookingHandler.UpdateBooking)     // PUT /api/bookings/{booking-id}
		r.Delete("/{id}", bookingHandler.CancelBooking)  // DELETE /api/bookings/{booking-id}
	})
}
