// File: internal/repository/thread/thread_repository.go
package thread

import (
    "context"
    "errors"
    "fmt"
    "time"

    "gorm.io/gorm"

    "github.com/iyunix/pharma-assist/internal/domain"
)

type gormRepository struct {
    db *gorm.DB
}

// NewRepository creates a gorm-backed thread repository.
func NewRepository(db *gorm.DB) Repository {
    return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, thread *domain.Thread) error {
    if thread == nil {
        return errors.New("thread cannot be nil")
    }
    if thread.UserID == 0 {
        return errors.New("thread must belong to a user")
    }
    if err := r.db.WithContext(ctx).Create(thread).Error; err != nil {
        return fmt.Errorf("failed to create thread: %w", err)
    }
    return nil
}

func (r *gormRepository) FindByPublicID(ctx context.Context, userID uint, threadID string) (*domain.Thread, error) {
    var thread domain.Thread
    err := r.db.WithContext(ctx).
        Where("thread_id = ? AND user_id = ?", threadID, userID).
        First(&thread).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, ErrThreadNotFound
    }
    if err != nil {
        return nil, fmt.Errorf("failed to find thread: %w", err)
    }
    return &thread, nil
}

// ListByUser returns the user's threads newest-activity first.
func (r *gormRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Thread, error) {
    var threads []domain.Thread
    err := r.db.WithContext(ctx).
        Where("user_id = ?", userID).
        Order("updated_at DESC").
        Find(&threads).Error
    if err != nil {
        return nil, fmt.Errorf("failed to list threads: %w", err)
    }
    return threads, nil
}

// Touch bumps updated_at so the thread sorts to the top of the list
// after new messages.
func (r *gormRepository) Touch(ctx context.Context, id uint) error {
    err := r.db.WithContext(ctx).Model(&domain.Thread{}).
        Where("id = ?", id).
        Update("updated_at", time.Now()).Error
    if err != nil {
        return fmt.Errorf("failed to touch thread: %w", err)
    }
    return nil
}

func (r *gormRepository) Delete(ctx context.Context, userID uint, threadID string) error {
    result := r.db.WithContext(ctx).
        Where("thread_id = ? AND user_id = ?", threadID, userID).
        Delete(&domain.Thread{})
    if result.Error != nil {
        return fmt.Errorf("failed to delete thread: %w", result.Error)
    }
    if result.RowsAffected == 0 {
        return ErrThreadNotFound
    }
    return nil
}
