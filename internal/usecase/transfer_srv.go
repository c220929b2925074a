package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"tours-admin/pkg/toggle"
	"tours-admin/pkg/upstream"
)

type TransferService interface {
	// ListTransfers proxies GET /api/transfers; query is forwarded verbatim.
	ListTransfers(ctx context.Context, query string) *Reply
	GetTransferByID(ctx context.Context, transferID string) *Reply
	CreateTransfer(ctx context.Context, payload json.RawMessage) *Reply
	UpdateTransfer(ctx context.Context, transferID string, payload json.RawMessage) *Reply
	UpdateTransferStatus(ctx context.Context, transferID, status string) *Reply
	DeleteTransfer(ctx context.Context, transferID string) *Reply

	// StatusToggle binds a toggle control to one transfer's status
	// persistence, so the panel flips active/sold through the same proxy
	// path as everything else.
	StatusToggle(transferID string, initial toggle.Status) *toggle.Toggle
}

type transferService struct {
	up  upstream.Caller
	log *zap.Logger
}

func NewTransferService(up upstream.Caller, log *zap.Logger) TransferService {
	return &transferService{
		up:  up,
		log: log.With(zap.String("service", "transfer")),
	}
}

func (s *transferService) ListTransfers(ctx context.Context, query string) *Reply {
	path := "/api/transfers"
	if query != "" {
		path += "?" + query
	}

	res, err := s.up.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		s.log.Error("upstream call failed",
			zap.String("operation", "list transfers"),
			zap.Error(err))
		return errorReply(http.StatusInternalServerError, "Failed to fetch transfers")
	}

	return normalize(s.log, res, "transfers", true, "Failed to fetch transfers")
}

func (s *transferService) GetTransferByID(ctx context.Context, transferID string) *Reply {
	res, err := s.up.Do(ctx, http.MethodGet, "/api/transfers/"+transferID, nil, nil)
	if err != nil {
		s.log.Error("upstream call failed",
			zap.String("operation", "get transfer"),
			zap.String("transfer_id", transferID),
			zap.Error(err))
		return errorReply(http.StatusInternalServerError, "Failed to fetch transfer")
	}

	return normalize(s.log, res, "transfer", false, "Failed to fetch transfer")
}

func (s *transferService) CreateTransfer(ctx context.Context, payload json.RawMessage) *Reply {
	res, err := s.up.Do(ctx, http.MethodPost, "/api/transfers", payload, nil)
	if err != nil {
		s.log.Error("upstream call failed",
			zap.String("operation", "create transfer"),
			zap.Error(err))
		return errorReply(http.StatusInternalServerError, "Failed to create transfer")
	}

	return normalize(s.log, res, "transfer", false, "Failed to create transfer")
}

func (s *transferService) UpdateTransfer(ctx context.Context, transferID string, payload json.RawMessage) *Reply {
	res, err := s.up.Do(ctx, http.MethodPut, "/api/transfers/"+transferID, payload, nil)
	if err != nil {
		s.log.Error("upstream call failed",
			zap.String("operation", "update transfer"),
			zap.String("transfer_id", transferID),
			zap.Error(err))
		return errorReply(http.StatusInternalServerError, "Failed to update transfer")
	}

	return normalize(s.log, res, "transfer", false, "Failed to update transfer")
}

func (s *transferService) UpdateTransferStatus(ctx context.Context, transferID, status string) *Reply {
	body := map[string]string{"status": status}

	res, err := s.up.Do(ctx, http.MethodPatch, "/api/transfers/"+transferID+"/status", body, nil)
	if err != nil {
		s.log.Error("upstream call failed",
			zap.String("operation", "update transfer status"),
			zap.String("transfer_id", transferID),
			zap.String("status", status),
			zap.Error(err))
		return errorReply(http.StatusInternalServerError, "Failed to update transfer status")
	}

	return normalize(s.log, res, "transfer", false, "Failed to update transfer status")
}

func (s *transferService) DeleteTransfer(ctx context.Context, transferID string) *Reply {
	res, err := s.up.Do(ctx, http.MethodDelete, "/api/transfers/"+transferID, nil, nil)
	if err != nil {
		s.log.Error("upstream call failed",
			zap.String("operation", "delete transfer"),
			zap.String("transfer_id", transferID),
			zap.Error(err))
		return errorReply(http.StatusInternalServerError, "Failed to delete transfer")
	}

	rep := normalize(s.log, res, "transfer", false, "Failed to delete transfer")
	if rep.Status == http.StatusOK {
		rep.Body["message"] = "Transfer deleted successfully"
	}
	return rep
}

func (s *transferService) StatusToggle(transferID string, initial toggle.Status) *toggle.Toggle {
	return toggle.New(initial, func(ctx context.Context, next toggle.Status) error {
		rep := s.UpdateTransferStatus(ctx, transferID, string(next))
		if rep.Status >= http.StatusBadRequest {
			return fmt.Errorf("update transfer status: upstream replied %d", rep.Status)
		}
		return nil
	}, toggle.WithLogger(s.log))
}
