package wire

import (
	"github.com/go-chi/chi/v5"

	"tours-admin/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/auth/login - public, forwarded to the backend
	r.Post("/api/auth/login", authHandler.Login)
}
