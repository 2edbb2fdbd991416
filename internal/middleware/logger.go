// File: internal/middleware/logger.go
package middleware

import (
    "net/http"
    "time"

    "github.com/iyunix/pharma-assist/internal/services"
)

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
    http.ResponseWriter
    status int
}

func (r *statusRecorder) WriteHeader(status int) {
    r.status = status
    r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs one line per request with method, path, status
// and duration.
func LoggingMiddleware(logger services.Logger) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            start := time.Now()
            recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

            next.ServeHTTP(recorder, r)

            logger.Info("http request",
                "method", r.Method,
                "path", r.URL.Path,
                "status", recorder.status,
                "duration_ms", time.Since(start).Milliseconds(),
                "remote_addr", r.RemoteAddr)
        })
    }
}
