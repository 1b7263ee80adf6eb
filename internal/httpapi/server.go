// Package httpapi serves the read-only introspection API of a running
// notifier: health, the loaded policy, delivery statistics and metrics.
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notifier/pkg/types"
)

// defaultNotifications is the page size of GET /notifications without ?limit.
const defaultNotifications = 50

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Policy() types.PolicyResponse
	Stats() types.StatsResponse
	// Recent returns at most limit notifications, newest last.
	Recent(limit int) []types.Notification
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(accessLog)
	if corsEnabled {
		r.Use(corsMiddleware())
	}
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/policy", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Policy())
	})

	r.Get("/policy/{type}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "type")
		for _, e := range svc.Policy().Entities {
			if e.Type == name {
				writeJSON(w, e)
				return
			}
		}
		writeJSONError(w, http.StatusNotFound, "entity type not registered: "+name)
	})

	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Stats())
	})

	r.Get("/notifications", func(w http.ResponseWriter, r *http.Request) {
		limit := defaultNotifications
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > maxNotifications {
				writeJSONError(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxNotifications))
				return
			}
			limit = n
		}
		out := svc.Recent(limit)
		if out == nil {
			out = []types.Notification{}
		}
		writeJSON(w, types.NotificationsResponse{Notifications: out})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
