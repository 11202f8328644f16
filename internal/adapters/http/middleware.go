package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/sp3dr4/wren/internal/pkg/logging"
)

// LoggingMiddleware injects a request-scoped logger carrying the chi request
// ID and a trace ID, and logs request start/completion with timing.
func LoggingMiddleware(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			if reqID := middleware.GetReqID(ctx); reqID != "" {
				ctx = logging.WithRequestID(ctx, reqID)
			}

			traceID := r.Header.Get("X-Trace-Id")
			if traceID == "" {
				traceID = logging.NewTraceID()
			}
			ctx = logging.WithTraceID(ctx, traceID)
			w.Header().Set("X-Trace-Id", traceID)

			requestLogger := logging.RequestLogger(ctx, baseLogger)
			ctx = logging.WithLogger(ctx, requestLogger)

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			requestLogger.Info("Request completed",
				"status_code", ww.Status(),
				"duration_ms", float64(time.Since(start).Nanoseconds())/1e6,
			)
		})
	}
}
