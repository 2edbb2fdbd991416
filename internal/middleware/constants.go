// File: internal/middleware/constants.go
package middleware

type contextKey string

// UserIDKey is the request-context key under which the authentication
// middleware stores the authenticated user's ID.
const UserIDKey contextKey = "userID"

// AuthCookieName is the HTTP cookie carrying the session JWT.
const AuthCookieName = "auth_token"
