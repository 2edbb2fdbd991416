// File: internal/repository/thread/interface.go
package thread

import (
    "context"
    "errors"

    "github.com/iyunix/pharma-assist/internal/domain"
)

var ErrThreadNotFound = errors.New("thread not found")

// Repository defines persistence operations for conversation threads.
// Lookups are always scoped to the owning user so one user can never
// read or delete another user's thread.
type Repository interface {
    Create(ctx context.Context, thread *domain.Thread) error
    FindByPublicID(ctx context.Context, userID uint, threadID string) (*domain.Thread, error)
    ListByUser(ctx context.Context, userID uint) ([]domain.Thread, error)
    Touch(ctx context.Context, id uint) error
    Delete(ctx context.Context, userID uint, threadID string) error
}
