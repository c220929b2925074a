package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"tours-admin/pkg/upstream"
)

// AuthService forwards login verbatim and verifies sessions by asking the
// backend; the panel holds no credentials of its own.
type AuthService interface {
	Login(ctx context.Context, payload json.RawMessage) *Reply
	VerifyToken(ctx context.Context, token string) (bool, error)
}

type authService struct {
	up  upstream.Caller
	log *zap.Logger
}

func NewAuthService(up upstream.Caller, log *zap.Logger) AuthService {
	return &authService{
		up:  up,
		log: log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, payload json.RawMessage) *Reply {
	res, err := s.up.Do(ctx, http.MethodPost, "/api/auth/login", payload, nil)
	if err != nil {
		s.log.Error("upstream call failed",
			zap.String("operation", "login"),
			zap.Error(err))
		return errorReply(http.StatusInternalServerError, "Failed to login")
	}

	return normalize(s.log, res, "data", false, "Failed to login")
}

func (s *authService) VerifyToken(ctx context.Context, token string) (bool, error) {
	headers := map[string]string{"Authorization": "Bearer " + token}

	res, err := s.up.Do(ctx, http.MethodGet, "/api/auth/me", nil, headers)
	if err != nil {
		return false, fmt.Errorf("verify token: %w", err)
	}

	return isSuccess(res.Status), nil
}
