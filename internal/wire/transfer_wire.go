package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tours-admin/internal/adaptor"
	"tours-admin/pkg/middleware"
)

func wireTransfer(
	r chi.Router,
	transferHandler *adaptor.TransferHandler,
	verifier middleware.TokenVerifier,
	log *zap.Logger,
) {
	// Admin transfer management, behind the auth gate
	r.Route("/api/transfers", func(r chi.Router) {
		r.Use(middleware.AuthGate(verifier, log))

		// GET /api/transfers - list transfers
		r.Get("/", transferHandler.ListTransfers)

		// POST /api/transfers - create a transfer
		r.Post("/", transferHandler.CreateTransfer)

		// GET /api/transfers/{id} - transfer details
		r.Get("/{id}", transferHandler.GetTransferByID)

		// PUT /api/transfers/{id} - update a transfer
		r.Put("/{id}", transferHandler.UpdateTransfer)

		// PATCH /api/transfers/{id}/status - flip active/sold
		r.Patch("/{id}/status", transferHandler.UpdateTransferStatus)

		// DELETE /api/transfers/{id} - delete a transfer
		r.Delete("/{id}", transferHandler.DeleteTransfer)
	})
}
