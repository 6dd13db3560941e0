package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger logs one record per request after the handler returns.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			logger.Info("request",
				"method", r.Method,
				"uri", r.URL.RequestURI(),
				"status", rec.status,
				"request_id", RequestIDFrom(r.Context()),
				"addr", r.RemoteAddr,
				"duration", time.Since(start),
			)
		})
	}
}
