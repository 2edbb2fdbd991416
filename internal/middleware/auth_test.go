// File: internal/middleware/auth_test.go
package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iyunix/pharma-assist/internal/auth"
    "github.com/iyunix/pharma-assist/internal/services"
    "github.com/iyunix/pharma-assist/internal/services/user_services"
)

func newProtectedHandler(t *testing.T, secret string) (http.Handler, *uint) {
    t.Helper()
    // Token validation never touches the repository.
    authService := user_services.NewAuthService(nil, secret, &services.NoOpLogger{})

    var seenUserID uint
    inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        userID, ok := UserIDFromContext(r.Context())
        require.True(t, ok)
        seenUserID = userID
        w.WriteHeader(http.StatusOK)
    })
    return AuthMiddleware(authService)(inner), &seenUserID
}

func TestAuthMiddlewareValidCookie(t *testing.T) {
    handler, seenUserID := newProtectedHandler(t, "test-secret")

    token, err := auth.GenerateJWT(7, "test-secret")
    require.NoError(t, err)

    req := httptest.NewRequest(http.MethodGet, "/api/thread", nil)
    req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
    rec := httptest.NewRecorder()

    handler.ServeHTTP(rec, req)

    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, uint(7), *seenUserID)
}

func TestAuthMiddlewareMissingCookie(t *testing.T) {
    handler, _ := newProtectedHandler(t, "test-secret")

    req := httptest.NewRequest(http.MethodGet, "/api/thread", nil)
    rec := httptest.NewRecorder()

    handler.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
    handler, _ := newProtectedHandler(t, "test-secret")

    req := httptest.NewRequest(http.MethodGet, "/api/thread", nil)
    req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "garbage"})
    rec := httptest.NewRecorder()

    handler.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
    handler, _ := newProtectedHandler(t, "test-secret")

    token, err := auth.GenerateJWT(7, "other-secret")
    require.NoError(t, err)

    req := httptest.NewRequest(http.MethodGet, "/api/thread", nil)
    req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
    rec := httptest.NewRecorder()

    handler.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
