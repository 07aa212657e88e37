package middleware

import (
	"net/http"
	"strings"

	"github.com/mcoot/arenarounds/internal/api/apierr"
	"github.com/mcoot/arenarounds/internal/services/auth"
)

// AdminAuth rejects requests without a valid admin token.
// When no token is configured every request passes.
func AdminAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authService.Verify(extractToken(r)); err != nil {
				apierr.WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken extracts the bearer token from the request
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
