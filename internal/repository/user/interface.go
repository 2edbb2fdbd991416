// File: internal/repository/user/interface.go
package user

import (
    "context"
    "errors"

    "github.com/iyunix/pharma-assist/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

// Repository defines persistence operations for users.
type Repository interface {
    Create(ctx context.Context, user *domain.User) error
    FindByID(ctx context.Context, id uint) (*domain.User, error)
    FindByUsername(ctx context.Context, username string) (*domain.User, error)
    ExistsByUsername(ctx context.Context, username string) (bool, error)
}
