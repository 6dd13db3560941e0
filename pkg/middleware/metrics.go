package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JaimeStill/shows-api/pkg/metrics"
)

// Metrics records request counts and latencies labelled by the matched
// ServeMux pattern. It must wrap the ServeMux directly: the mux records the
// pattern on the request it receives, so any request copy in between hides it.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}

			m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
