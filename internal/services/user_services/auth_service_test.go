// File: internal/services/user_services/auth_service_test.go
package user_services

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iyunix/pharma-assist/internal/domain"
    userrepo "github.com/iyunix/pharma-assist/internal/repository/user"
)

type memUserRepo struct {
    nextID uint
    users  map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
    return &memUserRepo{users: make(map[string]*domain.User)}
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) error {
    m.nextID++
    user.ID = m.nextID
    m.users[user.Username] = user
    return nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
    for _, u := range m.users {
        if u.ID == id {
            return u, nil
        }
    }
    return nil, userrepo.ErrUserNotFound
}

func (m *memUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
    u, ok := m.users[username]
    if !ok {
        return nil, userrepo.ErrUserNotFound
    }
    return u, nil
}

func (m *memUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
    _, ok := m.users[username]
    return ok, nil
}

var _ userrepo.Repository = (*memUserRepo)(nil)

type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

func newTestAuthService() (*AuthService, *memUserRepo) {
    repo := newMemUserRepo()
    return NewAuthService(repo, "test-secret", noopLogger{}), repo
}

func TestRegisterAndLogin(t *testing.T) {
    svc, _ := newTestAuthService()
    ctx := context.Background()

    user, err := svc.Register(ctx, "alice", "correct-horse-battery")
    require.NoError(t, err)
    assert.NotZero(t, user.ID)
    assert.NotEqual(t, "correct-horse-battery", user.Password)

    token, loggedIn, err := svc.Login(ctx, "alice", "correct-horse-battery")
    require.NoError(t, err)
    assert.NotEmpty(t, token)
    assert.Equal(t, user.ID, loggedIn.ID)

    userID, err := svc.ValidateJWTToken(token)
    require.NoError(t, err)
    assert.Equal(t, user.ID, userID)
}

func TestRegisterValidation(t *testing.T) {
    svc, _ := newTestAuthService()
    ctx := context.Background()

    _, err := svc.Register(ctx, "ab", "longenoughpassword")
    assert.Error(t, err)

    _, err = svc.Register(ctx, "alice", "short")
    assert.Error(t, err)
}

func TestRegisterDuplicateUsername(t *testing.T) {
    svc, _ := newTestAuthService()
    ctx := context.Background()

    _, err := svc.Register(ctx, "alice", "correct-horse-battery")
    require.NoError(t, err)

    _, err = svc.Register(ctx, "alice", "another-password-1")
    assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
    svc, _ := newTestAuthService()
    ctx := context.Background()

    _, err := svc.Register(ctx, "alice", "correct-horse-battery")
    require.NoError(t, err)

    _, _, err = svc.Login(ctx, "alice", "wrong-password")
    assert.ErrorIs(t, err, ErrInvalidCredentials)

    _, _, err = svc.Login(ctx, "nobody", "correct-horse-battery")
    assert.ErrorIs(t, err, ErrInvalidCredentials)

    _, _, err = svc.Login(ctx, "", "")
    assert.ErrorIs(t, err, ErrInvalidCredentials)
}
