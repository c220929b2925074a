package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tours-admin/internal/dto/request"
	"tours-admin/internal/usecase"
	"tours-admin/pkg/utils"
)

type TransferHandler struct {
	service usecase.TransferService
	log     *zap.Logger
}

func NewTransferHandler(service usecase.TransferService, log *zap.Logger) *TransferHandler {
	return &TransferHandler{
		service: service,
		log:     log.With(zap.String("handler", "transfer")),
	}
}

// ListTransfers handles GET /api/transfers
func (h *TransferHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	rep := h.service.ListTransfers(r.Context(), r.URL.RawQuery)
	utils.WriteJSON(w, rep.Status, rep.Body)
}

// GetTransferByID handles GET /api/transfers/{id}
func (h *TransferHandler) GetTransferByID(w http.ResponseWriter, r *http.Request) {
	transferID := chi.URLParam(r, "id")
	if transferID == "" {
		utils.ResponseBadRequest(w, "Transfer ID is required")
		return
	}

	rep := h.service.GetTransferByID(r.Context(), transferID)
	utils.WriteJSON(w, rep.Status, rep.Body)
}

// CreateTransfer handles POST /api/transfers. The body is validated
// locally, then forwarded verbatim so upstream-only fields survive.
func (h *TransferHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTransferRequest
	payload, ok := h.decodeBody(w, r, &req)
	if !ok {
		return
	}

	rep := h.service.CreateTransfer(r.Context(), payload)
	utils.WriteJSON(w, rep.Status, rep.Body)
}

// UpdateTransfer handles PUT /api/transfers/{id}
func (h *TransferHandler) UpdateTransfer(w http.ResponseWriter, r *http.Request) {
	transferID := chi.URLParam(r, "id")
	if transferID == "" {
		utils.ResponseBadRequest(w, "Transfer ID is required")
		return
	}

	var req request.UpdateTransferRequest
	payload, ok := h.decodeBody(w, r, &req)
	if !ok {
		return
	}

	rep := h.service.UpdateTransfer(r.Context(), transferID, payload)
	utils.WriteJSON(w, rep.Status, rep.Body)
}

// UpdateTransferStatus handles PATCH /api/transfers/{id}/status
func (h *TransferHandler) UpdateTransferStatus(w http.ResponseWriter, r *http.Request) {
	transferID := chi.URLParam(r, "id")
	if transferID == "" {
		utils.ResponseBadRequest(w, "Transfer ID is required")
		return
	}

	var req request.UpdateTransferStatusRequest
	if _, ok := h.decodeBody(w, r, &req); !ok {
		return
	}

	rep := h.service.UpdateTransferStatus(r.Context(), transferID, req.Status)
	utils.WriteJSON(w, rep.Status, rep.Body)
}

// DeleteTransfer handles DELETE /api/transfers/{id}
func (h *TransferHandler) DeleteTransfer(w http.ResponseWriter, r *http.Request) {
	transferID := chi.URLParam(r, "id")
	if transferID == "" {
		utils.ResponseBadRequest(w, "Transfer ID is required")
		return
	}

	rep := h.service.DeleteTransfer(r.Context(), transferID)
	utils.WriteJSON(w, rep.Status, rep.Body)
}

// decodeBody reads the request body, unmarshals it into req for
// validation, and returns the raw bytes for forwarding. On any failure it
// writes the 400 response itself and returns ok=false; no upstream call
// is made for invalid input.
func (h *TransferHandler) decodeBody(w http.ResponseWriter, r *http.Request, req any) (json.RawMessage, bool) {
	payload, err := io.ReadAll(r.Body)
	if err != nil || len(payload) == 0 {
		utils.ResponseBadRequest(w, "Invalid request body")
		return nil, false
	}

	if err := json.Unmarshal(payload, req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return nil, false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("transfer request validation failed", zap.Any("errors", validationErrors))
		utils.ResponseBadRequest(w, "Validation failed: "+utils.FormatValidationErrors(validationErrors))
		return nil, false
	}

	return payload, true
}
