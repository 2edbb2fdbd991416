// File: internal/auth/jwt.go
package auth

import (
    "errors"
    "fmt"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

var (
    ErrInvalidToken = errors.New("invalid token")
    ErrExpiredToken = errors.New("token has expired")
)

// Claims carries the authenticated user identity inside the JWT.
type Claims struct {
    UserID uint `json:"user_id"`
    jwt.RegisteredClaims
}

// GenerateJWT creates a signed token for the user, valid for 72 hours.
func GenerateJWT(userID uint, secretKey string) (string, error) {
    if secretKey == "" {
        return "", errors.New("JWT secret key is not configured")
    }
    claims := Claims{
        UserID: userID,
        RegisteredClaims: jwt.RegisteredClaims{
            ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
            IssuedAt:  jwt.NewNumericDate(time.Now()),
            Issuer:    "pharma-assist",
        },
    }
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString([]byte(secretKey))
}

// ValidateToken parses and verifies a token, returning the user ID.
func ValidateToken(tokenString, secretKey string) (uint, error) {
    token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
        }
        return []byte(secretKey), nil
    })
    if err != nil {
        if errors.Is(err, jwt.ErrTokenExpired) {
            return 0, ErrExpiredToken
        }
        return 0, ErrInvalidToken
    }

    claims, ok := token.Claims.(*Claims)
    if !ok || !token.Valid || claims.UserID == 0 {
        return 0, ErrInvalidToken
    }
    return claims.UserID, nil
}
