// File: internal/repository/message/message_repository.go
package message

import (
    "context"
    "errors"
    "fmt"

    "gorm.io/gorm"

    "github.com/iyunix/pharma-assist/internal/domain"
)

type gormRepository struct {
    db *gorm.DB
}

// NewRepository creates a gorm-backed message repository.
func NewRepository(db *gorm.DB) Repository {
    return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, message *domain.Message) error {
    if message == nil {
        return errors.New("message cannot be nil")
    }
    if message.ThreadID == 0 {
        return errors.New("message must belong to a thread")
    }
    if message.Role != "user" && message.Role != "assistant" {
        return fmt.Errorf("invalid message role: %q", message.Role)
    }
    if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
        return fmt.Errorf("failed to create message: %w", err)
    }
    return nil
}

// ListByThread returns a thread's messages oldest first.
func (r *gormRepository) ListByThread(ctx context.Context, threadID uint) ([]domain.Message, error) {
    var messages []domain.Message
    err := r.db.WithContext(ctx).
        Where("thread_id = ?", threadID).
        Order("created_at ASC, id ASC").
        Find(&messages).Error
    if err != nil {
        return nil, fmt.Errorf("failed to list messages: %w", err)
    }
    return messages, nil
}

// DeleteByThread removes all of a thread's messages; used when the
// thread itself is deleted.
func (r *gormRepository) DeleteByThread(ctx context.Context, threadID uint) error {
    err := r.db.WithContext(ctx).
        Where("thread_id = ?", threadID).
        Delete(&domain.Message{}).Error
    if err != nil {
        return fmt.Errorf("failed to delete thread messages: %w", err)
    }
    return nil
}
