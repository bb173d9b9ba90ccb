package rest

import (
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/port"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware выдает запросу trace_id и кладет в контекст логгер с этим trace_id.
// Ядро получает логгер без HTTP-полей, они пишутся только в итоговую запись о запросе.
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			traceID := contextkeys.ResolveTraceID(r.Header.Get(contextkeys.TraceIDHeader))
			w.Header().Set(contextkeys.TraceIDHeader, traceID)

			requestLogger := logger.WithFields(port.Fields{"trace_id": traceID})
			ctx := contextkeys.ContextWithTraceID(
				contextkeys.ContextWithLogger(r.Context(), requestLogger),
				traceID,
			)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			fields := port.Fields{
				"http_method":   r.Method,
				"http_path":     r.URL.Path,
				"remote_addr":   r.RemoteAddr,
				"status_code":   ww.Status(),
				"bytes_written": ww.BytesWritten(),
				"duration_ms":   time.Since(started).Milliseconds(),
			}
			if ww.Status() >= http.StatusInternalServerError {
				requestLogger.Warn("Request failed", fields)
				return
			}
			requestLogger.Info("Request finished", fields)
		})
	}
}
