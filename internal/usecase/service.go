package usecase

import (
	"tours-admin/pkg/upstream"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Booking  BookingService
	Transfer TransferService
}

func NewService(up upstream.Caller, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(up, log),
		Booking:  NewBookingService(up, log),
		Transfer: NewTransferService(up, log),
	}
}
