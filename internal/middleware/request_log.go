package middleware

import (
	"net/http"
	"strconv"
	"time"

	"pet-clinic-site/internal/platform/logger"
	"pet-clinic-site/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog registra cada request con el id de chimw.RequestID y alimenta
// el histograma de latencia. m puede ser nil.
func RequestLog(log logger.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	log = logger.OrNop(log)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			route := routePattern(r)

			m.ObserveHTTP(r.Method, route, strconv.Itoa(status), elapsed.Seconds())

			fields := map[string]any{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"route":       route,
				"status":      status,
				"duration_ms": elapsed.Milliseconds(),
			}
			if status >= http.StatusInternalServerError {
				log.Error("http request", fields)
				return
			}
			log.Debug("http request", fields)
		})
	}
}

// routePattern usa el patrón de chi para no explotar la cardinalidad
// de las métricas con ids.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
