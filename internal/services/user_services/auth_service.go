// File: internal/services/user_services/auth_service.go
package user_services

import (
    "context"
    "errors"
    "strings"

    "github.com/iyunix/pharma-assist/internal/auth"
    "github.com/iyunix/pharma-assist/internal/domain"
    userrepo "github.com/iyunix/pharma-assist/internal/repository/user"
)

var (
    ErrUsernameTaken      = errors.New("username is already taken")
    ErrInvalidCredentials = errors.New("invalid username or password")
)

// Logger defines the logging interface for user services.
type Logger interface {
    Info(msg string, keysAndValues ...interface{})
    Error(msg string, keysAndValues ...interface{})
    Debug(msg string, keysAndValues ...interface{})
    Warn(msg string, keysAndValues ...interface{})
}

// AuthService handles registration, login and token validation.
type AuthService struct {
    userRepo     userrepo.Repository
    jwtSecretKey string
    logger       Logger
}

func NewAuthService(userRepo userrepo.Repository, jwtSecretKey string, logger Logger) *AuthService {
    return &AuthService{
        userRepo:     userRepo,
        jwtSecretKey: jwtSecretKey,
        logger:       logger,
    }
}

// Register creates a new user with a hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
    username = strings.TrimSpace(username)

    user := &domain.User{Username: username}
    if err := user.IsValid(); err != nil {
        return nil, err
    }
    if err := user.HashPassword(password); err != nil {
        return nil, err
    }

    exists, err := s.userRepo.ExistsByUsername(ctx, username)
    if err != nil {
        s.logger.Error("failed to check username availability", "error", err.Error())
        return nil, errors.New("registration is temporarily unavailable")
    }
    if exists {
        return nil, ErrUsernameTaken
    }

    if err := s.userRepo.Create(ctx, user); err != nil {
        s.logger.Error("failed to create user", "error", err.Error())
        return nil, errors.New("registration is temporarily unavailable")
    }

    s.logger.Info("user registered", "user_id", user.ID, "username", username)
    return user, nil
}

// Login verifies credentials and returns a signed JWT. Lookup misses and
// password mismatches collapse into the same error so usernames cannot
// be probed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
    username = strings.TrimSpace(username)
    if username == "" || password == "" {
        return "", nil, ErrInvalidCredentials
    }

    user, err := s.userRepo.FindByUsername(ctx, username)
    if err != nil {
        if errors.Is(err, userrepo.ErrUserNotFound) {
            return "", nil, ErrInvalidCredentials
        }
        s.logger.Error("failed to look up user", "error", err.Error())
        return "", nil, errors.New("login is temporarily unavailable")
    }

    if err := user.ValidatePassword(password); err != nil {
        return "", nil, ErrInvalidCredentials
    }

    token, err := auth.GenerateJWT(user.ID, s.jwtSecretKey)
    if err != nil {
        s.logger.Error("failed to generate token", "error", err.Error())
        return "", nil, errors.New("login is temporarily unavailable")
    }

    s.logger.Info("user logged in", "user_id", user.ID)
    return token, user, nil
}

// ValidateJWTToken verifies a token and returns the user ID it carries.
func (s *AuthService) ValidateJWTToken(tokenString string) (uint, error) {
    return auth.ValidateToken(tokenString, s.jwtSecretKey)
}
