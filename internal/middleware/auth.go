package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/nyayasetu/backend/internal/audit"
	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/token"
)

type contextKey string

const (
	claimsContextKey contextKey = "claims"
	bearerContextKey contextKey = "bearer"
)

// GetClaims returns the authenticated lawyer's token claims, or nil when the
// request passed through no auth middleware.
func GetClaims(ctx context.Context) *token.Claims {
	if claims, ok := ctx.Value(claimsContextKey).(*token.Claims); ok {
		return claims
	}
	return nil
}

// GetBearer returns the raw session token the request arrived with. Used by
// the RAG proxy, which forwards the caller's own credential upstream.
func GetBearer(ctx context.Context) string {
	if bearer, ok := ctx.Value(bearerContextKey).(string); ok {
		return bearer
	}
	return ""
}

type AuthMiddleware struct {
	verifier *token.Issuer
}

func NewAuthMiddleware(verifier *token.Issuer) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearer := extractToken(r)
		if bearer == "" {
			writeError(w, apperrors.Unauthorized("Access token required"))
			return
		}

		claims, err := m.verifier.Verify(bearer)
		if err != nil {
			audit.LogFromRequest(r, audit.Event{Type: audit.EventAuthFailure})
			if errors.Is(err, jwt.ErrTokenExpired) {
				writeError(w, apperrors.New(apperrors.ErrCodeTokenExpired, "Token has expired"))
				return
			}
			log.Warn().Err(err).Msg("auth middleware: invalid token")
			writeError(w, apperrors.InvalidToken("Invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		ctx = context.WithValue(ctx, bearerContextKey, bearer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
