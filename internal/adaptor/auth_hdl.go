package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"tours-admin/internal/dto/request"
	"tours-admin/internal/usecase"
	"tours-admin/pkg/utils"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/auth/login (public). Credentials are validated
// for shape only and forwarded verbatim; the backend owns authentication.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil || len(payload) == 0 {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	var req request.LoginRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("login validation failed", zap.Any("errors", validationErrors))
		utils.ResponseBadRequest(w, "Validation failed: "+utils.FormatValidationErrors(validationErrors))
		return
	}

	rep := h.service.Login(r.Context(), payload)
	utils.WriteJSON(w, rep.Status, rep.Body)
}
