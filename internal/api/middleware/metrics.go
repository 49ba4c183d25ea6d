package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type HTTPMetrics interface {
	ObserveHTTP(method, path string, status int, duration time.Duration)
}

// MetricsMiddleware собирает метрики HTTP запросов
// В качестве path используется шаблон маршрута, чтобы не плодить лейблы по ID
func MetricsMiddleware(m HTTPMetrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.ObserveHTTP(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
