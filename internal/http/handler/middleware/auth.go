package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

// AuthMiddleware guards account-scoped routes. Sessions are issued by the
// external authentication collaborator; only the signed token is checked
// here. The account id travels in the "sub" claim.
type AuthMiddleware struct {
	logs   *zap.SugaredLogger
	tokens TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:   logger,
		tokens: tokens,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ""
		if id, ok := r.Context().Value(RequestIDKey).(string); ok {
			requestID = id
		}

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			m.reject(w, "missing bearer token")
			m.logs.Errorw("missing bearer token", "path", r.URL.Path, "request_id", requestID)
			return
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			m.reject(w, "invalid token")
			m.logs.Errorw("token validation failed", "error", err, "path", r.URL.Path, "request_id", requestID)
			return
		}

		accountID, ok := claims["sub"].(string)
		if !ok || accountID == "" {
			m.reject(w, "invalid token")
			m.logs.Errorw("token has no subject claim", "path", r.URL.Path, "request_id", requestID)
			return
		}

		ctx := context.WithValue(r.Context(), AccountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   detail,
	})
}
