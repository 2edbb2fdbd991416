// File: internal/repository/message/interface.go
package message

import (
    "context"

    "github.com/iyunix/pharma-assist/internal/domain"
)

// Repository defines persistence operations for thread messages.
type Repository interface {
    Create(ctx context.Context, message *domain.Message) error
    ListByThread(ctx context.Context, threadID uint) ([]domain.Message, error)
    DeleteByThread(ctx context.Context, threadID uint) error
}
