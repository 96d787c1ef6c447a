package middleware

import (
	"net/http"
	"time"

	"muzac-backend/pkg/common"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logger creates a logging middleware
func Logger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			// Prefer the id the gateway stamped on the request; fall back
			// to the one chi generated.
			requestID := common.ExtractRequestID(r)
			if requestID == "" {
				requestID = middleware.GetReqID(r.Context())
			}

			logger.Info("HTTP Request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestID", requestID),
				zap.String("remoteAddr", r.RemoteAddr),
			)
		})
	}
}
