package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"planet-builder/internal/auth"
	"planet-builder/internal/shared/cookies"
	"planet-builder/internal/shared/errors"
	"planet-builder/internal/shared/response"
)

type contextKey string

const UserContextKey contextKey = "user"

type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// JWTMiddleware rejects requests without a valid session cookie and stores the claims
// in the request context.
func JWTMiddleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := slog.With(
				"middleware", "jwt",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			token := cookies.TokenFromRequest(r)
			if token == "" {
				response.Error(w, r, logger, errors.Unauthorized("authentication required"))
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				logger.Debug("Rejected session token", "error", err)
				response.Error(w, r, logger, errors.Unauthorized("invalid token"))
				return
			}

			logger.Debug("JWT authentication successful",
				"designer_id", claims.DesignerID,
				"username", claims.Username)

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, UserContextKey, claims)
}

func GetUserFromContext(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(UserContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
