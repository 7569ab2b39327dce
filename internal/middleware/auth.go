package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dropkit/dropkit/internal/ctxkeys"
)

// TokenVerifier validates a bearer credential and returns the caller's user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireBearer guards a route with bearer-token auth. A missing or malformed
// Authorization header is 401; a token that fails verification is 403. On
// success the caller id is placed in the request context.
func RequireBearer(tokens TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Access denied"})
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				writeJSON(w, http.StatusForbidden, map[string]string{"message": "Invalid token"})
				return
			}

			next(w, r.WithContext(ctxkeys.WithCallerID(r.Context(), userID)))
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
