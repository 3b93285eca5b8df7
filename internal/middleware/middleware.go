package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/careerpilot/career-service/internal/auth"
	"github.com/careerpilot/career-service/internal/models"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// TokenHeader carries the raw signed session token.
const TokenHeader = "x-auth-token"

type contextKey string

const userContextKey contextKey = "user"

// UserResolver resolves a verified token's user id to a user record.
type UserResolver interface {
	FindUserByID(id string) (*models.User, error)
}

// AuthMiddleware gates every per-user endpoint. A missing or invalid
// token, or a token whose user no longer exists, is rejected with 401
// before any handler logic runs. On success the resolved user (password
// hash blanked) is attached to the request context.
func AuthMiddleware(tokens *auth.TokenService, users UserResolver, log *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				unauthorized(w, "No token, authorization denied")
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				unauthorized(w, "Token is not valid")
				return
			}

			user, err := users.FindUserByID(userID)
			if err != nil {
				log.Warnf("auth gate: token for unresolvable user %s: %v", userID, err)
				unauthorized(w, "Token is not valid")
				return
			}
			user.PasswordHash = ""

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user attached by AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// CORS adds permissive cross-origin headers and answers preflight
// requests. Wrapped around the whole router so OPTIONS requests are
// handled even for unmatched methods.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+TokenHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
