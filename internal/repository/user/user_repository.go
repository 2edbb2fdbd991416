// File: internal/repository/user/user_repository.go
package user

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "gorm.io/gorm"

    "github.com/iyunix/pharma-assist/internal/domain"
)

type gormRepository struct {
    db *gorm.DB
}

// NewRepository creates a gorm-backed user repository.
func NewRepository(db *gorm.DB) Repository {
    return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, user *domain.User) error {
    if user == nil {
        return errors.New("user cannot be nil")
    }
    if err := user.IsValid(); err != nil {
        return fmt.Errorf("invalid user: %w", err)
    }
    if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
        return fmt.Errorf("failed to create user: %w", err)
    }
    return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
    var user domain.User
    err := r.db.WithContext(ctx).First(&user, id).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, ErrUserNotFound
    }
    if err != nil {
        return nil, fmt.Errorf("failed to find user by id: %w", err)
    }
    return &user, nil
}

func (r *gormRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
    username = strings.TrimSpace(username)
    if username == "" {
        return nil, errors.New("username cannot be empty")
    }
    var user domain.User
    err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, ErrUserNotFound
    }
    if err != nil {
        return nil, fmt.Errorf("failed to find user by username: %w", err)
    }
    return &user, nil
}

func (r *gormRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
    var count int64
    err := r.db.WithContext(ctx).Model(&domain.User{}).
        Where("username = ?", strings.TrimSpace(username)).
        Count(&count).Error
    if err != nil {
        return false, fmt.Errorf("failed to check username existence: %w", err)
    }
    return count > 0, nil
}
