package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries request id, both incoming and outgoing.
const RequestIDHeader = "X-Request-ID"

// NewTimeoutMiddleware creates middleware that cancels requests context after given time.
func NewTimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewRequestLogMiddleware creates middleware that assigns request id and logs every request when it's done.
// Id sent by client in X-Request-ID header is kept.
func NewRequestLogMiddleware(l logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			h.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			entry := l.WithFields(logrus.Fields{
				"requestID": id,
				"method":    r.Method,
				"path":      r.URL.Path,
				"status":    status,
				"duration":  time.Since(start),
			})
			if status >= http.StatusInternalServerError {
				entry.Warn("request finished")
				return
			}
			entry.Info("request finished")
		})
	}
}
