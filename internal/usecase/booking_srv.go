package usecase

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"tours-admin/pkg/upstream"
)

type BookingService interface {
	// ListBookings proxies GET /api/bookings; query is forwarded verbatim.
	ListBookings(ctx context.Context, query string) *Reply
	GetBookingByID(ctx context.Context, bookingID string) *Reply
	DeleteBooking(ctx context.Context, bookingID string) *Reply
}

type bookingService struct {
	up  upstream.Caller
	log *zap.Logger
}

func NewBookingService(up upstream.Caller, log *zap.Logger) BookingService {
	return &bookingService{
		up:  up,
		log: log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context, query string) *Reply {
	path := "/api/bookings"
	if query != "" {
		path += "?" + query
	}

	res, err := s.up.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		s.log.Error("upstream call failed",
			zap.String("operation", "list bookings"),
			zap.Error(err))
		return errorReply(http.StatusInternalServerError, "Failed to fetch bookings")
	}

	return normalize(s.log, res, "bookings", true, "Failed to fetch bookings")
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) *Reply {
	res, err := s.up.Do(ctx, http.MethodGet, "/api/bookings/"+bookingID, nil, nil)
	if err != nil {
		s.log.Error("upstream call failed",
			zap.String("operation", "get booking"),
			zap.String("booking_id", bookingID),
			zap.Error(err))
		return errorReply(http.StatusInternalServerError, "Failed to fetch booking")
	}

	return normalize(s.log, res, "booking", false, "Failed to fetch booking")
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) *Reply {
	res, err := s.up.Do(ctx, http.MethodDelete, "/api/bookings/"+bookingID, nil, nil)
	if err != nil {
		s.log.Error("upstream call failed",
			zap.String("operation", "delete booking"),
			zap.String("booking_id", bookingID),
			zap.Error(err))
		return errorReply(http.StatusInternalServerError, "Failed to delete booking")
	}

	rep := normalize(s.log, res, "booking", false, "Failed to delete booking")
	if rep.Status == http.StatusOK {
		rep.Body["message"] = "Booking deleted successfully"
	}
	return rep
}
