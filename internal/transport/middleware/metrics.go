package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/florarium-backend/internal/metrics"
)

// Metrics records request counts and latency per route pattern. It must
// sit directly around the ServeMux: any middleware in between that clones
// the request hides r.Pattern from it.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := metrics.RequestStarted()
			defer done()

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			metrics.ObserveRequest(r.Method, r.Pattern, sw.status, time.Since(start))
		})
	}
}
