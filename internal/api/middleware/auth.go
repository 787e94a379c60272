package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	roleKey   contextKey = "role"
)

// TokenParser validates a bearer token and returns the embedded identity.
// Satisfied by the auth service.
type TokenParser interface {
	ParseToken(token string) (userID, role string, err error)
}

// UserID returns the authenticated user id from the request context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// Role returns the authenticated user's role from the request context.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// WithIdentity injects an identity into the context, for tests.
func WithIdentity(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

func denyJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's id and role in the request context.
func RequireAuth(parser TokenParser, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			denyJSON(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, role, err := parser.ParseToken(token)
		if err != nil {
			denyJSON(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), userID, role)))
	}
}

// RequireRole is RequireAuth plus a role check. Role checks in services
// still apply; this just rejects early with 403.
func RequireRole(parser TokenParser, next http.HandlerFunc, roles ...string) http.HandlerFunc {
	return RequireAuth(parser, func(w http.ResponseWriter, r *http.Request) {
		if !entities.RoleAllowed(Role(r.Context()), roles...) {
			denyJSON(w, http.StatusForbidden, "insufficient role")
			return
		}
		next.ServeHTTP(w, r)
	})
}
