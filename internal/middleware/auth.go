package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/auth"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/config"
)

// Context keys to store authenticated user information
type contextKey string

const (
	userIDKey contextKey = "user_id"
	emailKey  contextKey = "email"
)

// BearerAuth middleware validates a "Bearer <token>" Authorization header
// and stores the authenticated user's id and email on the request context.
func BearerAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "Unauthorized: bearer token required", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Unauthorized: invalid Authorization format", http.StatusUnauthorized)
				return
			}

			claims, err := auth.Verify(cfg, parts[1])
			if err != nil {
				http.Error(w, "Unauthorized: invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, emailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// Email returns the authenticated user's email, or "".
func Email(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}
