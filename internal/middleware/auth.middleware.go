package middleware

import (
	"context"
	"net/http"
	"strings"

	"chat-service/internal/repository"
	"chat-service/pkg/jwtutil"
	"chat-service/pkg/response"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

type Auth struct {
	signer   *jwtutil.Signer
	sessions *repository.SessionRepository
}

func NewAuth(signer *jwtutil.Signer, sessions *repository.SessionRepository) *Auth {
	return &Auth{signer: signer, sessions: sessions}
}

// Require rejects requests without a live session token. The token may arrive
// as a Bearer header or, for websocket upgrades, a query parameter.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			response.Error(w, http.StatusUnauthorized, "missing token")
			return
		}

		userID, err := a.signer.Verify(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "invalid token")
			return
		}

		stored, err := a.sessions.Lookup(r.Context(), userID)
		if err != nil || stored != token {
			response.Error(w, http.StatusUnauthorized, "session expired")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user id placed in the context by Require.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
