package middleware

import (
	"net/http"
	"strings"

	"muzac-backend/pkg/common"
	apperrors "muzac-backend/pkg/errors"

	"go.uber.org/zap"
)

// OriginAllowlist rejects any non-preflight request whose Referer (or Origin,
// when no referer is sent) is not prefixed by an allowlisted origin. Preflight
// is exempt so browsers can always complete CORS negotiation.
func OriginAllowlist(allowedOrigins []string, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			referer := r.Header.Get("Referer")
			if referer == "" {
				referer = r.Header.Get("Origin")
			}
			if !originAllowed(referer, allowedOrigins) {
				logger.Warn("Request from non-allowlisted origin",
					zap.String("referer", referer),
					zap.String("path", r.URL.Path),
				)
				appErr := apperrors.NewForbiddenError("Access denied")
				common.RespondError(w, appErr.HTTPStatus, appErr.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed reports whether the referer starts with one of the allowed
// origins.
func originAllowed(referer string, allowedOrigins []string) bool {
	for _, origin := range allowedOrigins {
		if strings.HasPrefix(referer, origin) {
			return true
		}
	}
	return false
}
