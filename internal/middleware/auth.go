// File: internal/middleware/auth.go
package middleware

import (
    "context"
    "net/http"

    "github.com/iyunix/pharma-assist/internal/services/user_services"
)

// AuthMiddleware validates the session cookie and injects the user ID
// into the request context. Requests without a valid token get 401.
func AuthMiddleware(authService *user_services.AuthService) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            cookie, err := r.Cookie(AuthCookieName)
            if err != nil || cookie.Value == "" {
                http.Error(w, "Unauthorized", http.StatusUnauthorized)
                return
            }

            userID, err := authService.ValidateJWTToken(cookie.Value)
            if err != nil {
                http.Error(w, "Unauthorized", http.StatusUnauthorized)
                return
            }

            ctx := context.WithValue(r.Context(), UserIDKey, userID)
            next.ServeHTTP(w, r.WithContext(ctx))
        })
    }
}

// UserIDFromContext extracts the authenticated user ID set by
// AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uint, bool) {
    userID, ok := ctx.Value(UserIDKey).(uint)
    return userID, ok
}
