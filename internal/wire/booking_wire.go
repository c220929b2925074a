package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tours-admin/internal/adaptor"
	"tours-admin/pkg/middleware"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	verifier middleware.TokenVerifier,
	log *zap.Logger,
) {
	// Admin booking management, behind the auth gate
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthGate(verifier, log))

		// GET /api/bookings - list bookings
		r.Get("/", bookingHandler.ListBookings)

		// GET /api/bookings/{id} - booking details
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// DELETE /api/bookings/{id} - delete a booking
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})
}
