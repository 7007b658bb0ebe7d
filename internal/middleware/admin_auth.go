package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/handler/api"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// WithAuth validates a Bearer token and, when role is not empty, requires the
// token to carry it. The subject and role are stored in the request context.
func WithAuth(verifier port.TokenVerifier, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				api.WriteError(w, http.StatusUnauthorized, "Access denied. No token provided.", nil)
				return
			}

			claims, err := verifier.Verify(strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")))
			if errors.Is(err, port.ErrTokenExpired) {
				api.WriteError(w, http.StatusUnauthorized, "Token expired", nil)
				return
			}
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "Invalid token", err)
				return
			}
			if role != "" && claims.Role != role {
				api.WriteError(w, http.StatusForbidden, "Access denied. Insufficient permissions.", nil)
				return
			}

			ctx := api_context.WithAuth(r.Context(), claims.Subject, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
