// File: internal/handlers/auth_handlers.go
package handlers

import (
    "encoding/json"
    "errors"
    "net/http"
    "strings"

    "github.com/iyunix/pharma-assist/internal/middleware"
    "github.com/iyunix/pharma-assist/internal/services"
    "github.com/iyunix/pharma-assist/internal/services/user_services"
)

// AuthHandler exposes registration, login and logout endpoints.
type AuthHandler struct {
    authService   *user_services.AuthService
    secureCookies bool
    logger        services.Logger
}

func NewAuthHandler(authService *user_services.AuthService, secureCookies bool, logger services.Logger) *AuthHandler {
    return &AuthHandler{authService: authService, secureCookies: secureCookies, logger: logger}
}

type credentialsRequest struct {
    Username string `json:"username"`
    Password string `json:"password"`
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
    var req credentialsRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }

    h.logger.Debug("registration attempt", "username", sanitizeUsername(req.Username))

    user, err := h.authService.Register(r.Context(), req.Username, req.Password)
    if err != nil {
        if errors.Is(err, user_services.ErrUsernameTaken) {
            writeError(w, http.StatusConflict, err.Error())
            return
        }
        writeError(w, http.StatusBadRequest, err.Error())
        return
    }

    writeJSON(w, http.StatusCreated, map[string]interface{}{
        "id":       user.ID,
        "username": user.Username,
    })
}

// Login handles POST /api/login. On success the JWT is set as an
// HTTP-only cookie; it is never exposed to frontend scripts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
    var req credentialsRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }

    token, user, err := h.authService.Login(r.Context(), req.Username, req.Password)
    if err != nil {
        if errors.Is(err, user_services.ErrInvalidCredentials) {
            writeError(w, http.StatusUnauthorized, err.Error())
            return
        }
        writeError(w, http.StatusInternalServerError, err.Error())
        return
    }

    http.SetCookie(w, &http.Cookie{
        Name:     middleware.AuthCookieName,
        Value:    token,
        Path:     "/",
        HttpOnly: true,
        Secure:   h.secureCookies,
        SameSite: http.SameSiteStrictMode,
        MaxAge:   72 * 60 * 60,
    })

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "id":       user.ID,
        "username": user.Username,
    })
}

// Logout handles GET /api/logout by expiring the auth cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
    http.SetCookie(w, &http.Cookie{
        Name:     middleware.AuthCookieName,
        Value:    "",
        Path:     "/",
        HttpOnly: true,
        Secure:   h.secureCookies,
        SameSite: http.SameSiteStrictMode,
        MaxAge:   -1,
    })
    writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// sanitizeUsername trims the logged form of a username to avoid log
// injection through control characters.
func sanitizeUsername(username string) string {
    return strings.Map(func(r rune) rune {
        if r < 32 || r == 127 {
            return -1
        }
        return r
    }, username)
}
