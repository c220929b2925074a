package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"tours-admin/pkg/utils"
)

// TokenVerifier checks a bearer token against the backend session
// endpoint. The panel never stores credentials itself.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (bool, error)
}

// AuthGate guards the admin routes: requests without a valid session
// token are rejected before any proxying happens.
func AuthGate(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			ok, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				logger.Error("Failed to verify session token", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if !ok {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
