package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lupamkt/backoffice-api/pkg/metrics"
)

// Prometheus registra contagem e duração de cada requisição HTTP
func Prometheus() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lrw := newLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)

			m := metrics.DefaultMetrics
			m.HTTPRequests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(lrw.statusCode)).Inc()
			m.HTTPDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
		})
	}
}
