package middleware

import (
	"context"
	"net/http"
	"strings"

	"lucky_casino/pkg/resp"
	"lucky_casino/pkg/token"
)

type ctxKey struct{}

// Auth пропускает запрос только с валидным Bearer токеном
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			userID, err := token.ParseUserID(raw, secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func bearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext ID игрока, положенный Auth
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(ctxKey{}).(int)
	return id, ok
}
