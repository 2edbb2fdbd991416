// File: internal/middleware/recovery.go
package middleware

import (
    "net/http"
    "runtime/debug"

    "github.com/iyunix/pharma-assist/internal/services"
)

// RecoveryMiddleware turns handler panics into 500 responses instead of
// dropping the connection.
func RecoveryMiddleware(logger services.Logger) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            defer func() {
                if rec := recover(); rec != nil {
                    logger.Error("panic recovered",
                        "error", rec,
                        "path", r.URL.Path,
                        "stack", string(debug.Stack()))
                    http.Error(w, "Internal Server Error", http.StatusInternalServerError)
                }
            }()
            next.ServeHTTP(w, r)
        })
    }
}
