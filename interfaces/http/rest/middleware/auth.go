package middleware

import (
	"context"
	"net/http"
	"strings"

	"muzac-backend/application/ports"
	"muzac-backend/pkg/common"

	"go.uber.org/zap"
)

// TokenVerifier resolves a bearer token to its user.
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (ports.User, error)
}

type userContextKey struct{}

// SetUser attaches the authenticated user to the context.
func SetUser(ctx context.Context, user ports.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFrom returns the authenticated user, if any.
func UserFrom(ctx context.Context) (ports.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(ports.User)
	return user, ok
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// RequireAuth rejects requests without a verifiable bearer token and injects
// the user into the request context.
func RequireAuth(verifier TokenVerifier, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				logger.Info("Token verification failed",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUser(r.Context(), user)))
		})
	}
}

// OptionalAuth injects the user when a bearer token verifies and lets the
// request through anonymously otherwise. Used by the upload and calendar
// endpoints, which fall back to the shared namespace.
func OptionalAuth(verifier TokenVerifier, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				logger.Debug("Ignoring unverifiable token on optional-auth route",
					zap.String("path", r.URL.Path),
				)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUser(r.Context(), user)))
		})
	}
}
