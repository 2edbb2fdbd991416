// File: internal/middleware/ratelimit.go
package middleware

import (
    "net"
    "net/http"

    "github.com/iyunix/pharma-assist/internal/ratelimit"
)

// RateLimitMiddleware rejects requests over the per-client budget with
// 429. Clients are keyed by remote IP.
func RateLimitMiddleware(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            if !limiter.Allow(clientIP(r)) {
                http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
                return
            }
            next.ServeHTTP(w, r)
        })
    }
}

func clientIP(r *http.Request) string {
    host, _, err := net.SplitHostPort(r.RemoteAddr)
    if err != nil {
        return r.RemoteAddr
    }
    return host
}
