// File: internal/services/chat_service_test.go
package services

import (
    "context"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iyunix/pharma-assist/internal/domain"
    messagerepo "github.com/iyunix/pharma-assist/internal/repository/message"
    threadrepo "github.com/iyunix/pharma-assist/internal/repository/thread"
    "github.com/iyunix/pharma-assist/internal/services/ai"
    "github.com/iyunix/pharma-assist/internal/services/chat"
    "github.com/iyunix/pharma-assist/internal/services/medicine"
)

type stubProvider struct {
    reply string
    calls int
}

func (s *stubProvider) CreateCompletion(ctx context.Context, req ai.CompletionRequest) (string, error) {
    s.calls++
    return s.reply, nil
}

type memThreadRepo struct {
    nextID  uint
    threads map[string]*domain.Thread
}

func newMemThreadRepo() *memThreadRepo {
    return &memThreadRepo{threads: make(map[string]*domain.Thread)}
}

func (m *memThreadRepo) Create(ctx context.Context, thread *domain.Thread) error {
    m.nextID++
    thread.ID = m.nextID
    m.threads[thread.ThreadID] = thread
    return nil
}

func (m *memThreadRepo) FindByPublicID(ctx context.Context, userID uint, threadID string) (*domain.Thread, error) {
    t, ok := m.threads[threadID]
    if !ok || t.UserID != userID {
        return nil, threadrepo.ErrThreadNotFound
    }
    return t, nil
}

func (m *memThreadRepo) ListByUser(ctx context.Context, userID uint) ([]domain.Thread, error) {
    var out []domain.Thread
    for _, t := range m.threads {
        if t.UserID == userID {
            out = append(out, *t)
        }
    }
    return out, nil
}

func (m *memThreadRepo) Touch(ctx context.Context, id uint) error { return nil }

func (m *memThreadRepo) Delete(ctx context.Context, userID uint, threadID string) error {
    t, ok := m.threads[threadID]
    if !ok || t.UserID != userID {
        return threadrepo.ErrThreadNotFound
    }
    delete(m.threads, threadID)
    return nil
}

type memMessageRepo struct {
    messages []domain.Message
}

func (m *memMessageRepo) Create(ctx context.Context, message *domain.Message) error {
    m.messages = append(m.messages, *message)
    return nil
}

func (m *memMessageRepo) ListByThread(ctx context.Context, threadID uint) ([]domain.Message, error) {
    var out []domain.Message
    for _, msg := range m.messages {
        if msg.ThreadID == threadID {
            out = append(out, msg)
        }
    }
    return out, nil
}

func (m *memMessageRepo) DeleteByThread(ctx context.Context, threadID uint) error {
    kept := m.messages[:0]
    for _, msg := range m.messages {
        if msg.ThreadID != threadID {
            kept = append(kept, msg)
        }
    }
    m.messages = kept
    return nil
}

var _ threadrepo.Repository = (*memThreadRepo)(nil)
var _ messagerepo.Repository = (*memMessageRepo)(nil)

func newTestChatService(t *testing.T, provider ai.CompletionProvider, threads *memThreadRepo, messages *memMessageRepo) *ChatService {
    t.Helper()
    kb := medicine.NewKnowledgeBase()
    classifier, err := medicine.NewClassifier(medicine.DefaultConfig(), kb, provider, nil)
    require.NoError(t, err)
    resolver, err := medicine.NewResolver(medicine.DefaultConfig(), kb, provider, nil)
    require.NoError(t, err)

    svc, err := NewChatService(chat.DefaultConfig(), classifier, resolver, threads, messages, &NoOpLogger{})
    require.NoError(t, err)
    return svc
}

func TestSendMessageKnownMedicineStartsThread(t *testing.T) {
    threads := newMemThreadRepo()
    messages := &memMessageRepo{}
    provider := &stubProvider{reply: "never used for KB hits"}
    svc := newTestChatService(t, provider, threads, messages)

    result, err := svc.SendMessage(context.Background(), 1, "", "brotone s liquid")
    require.NoError(t, err)

    assert.True(t, result.Present)
    assert.True(t, strings.HasPrefix(result.ThreadID, "t-"))
    require.NotNil(t, result.Details)
    assert.Equal(t, "Brotone S Liquid", result.Details.Name)
    assert.False(t, result.Details.Inferred)
    assert.Contains(t, result.Reply, "Brotone S Liquid")
    assert.NotEmpty(t, result.ReplyHTML)
    assert.Equal(t, 0, provider.calls)

    // Both turns were persisted on the new thread.
    thread, err := threads.FindByPublicID(context.Background(), 1, result.ThreadID)
    require.NoError(t, err)
    assert.Equal(t, "brotone s liquid", thread.Title)
    saved, err := messages.ListByThread(context.Background(), thread.ID)
    require.NoError(t, err)
    require.Len(t, saved, 2)
    assert.Equal(t, "user", saved[0].Role)
    assert.Equal(t, "assistant", saved[1].Role)
}

func TestSendMessageUnknownQueryNotPresent(t *testing.T) {
    threads := newMemThreadRepo()
    messages := &memMessageRepo{}
    provider := &stubProvider{reply: `{"is_medicine":false,"confidence":0.0}`}
    svc := newTestChatService(t, provider, threads, messages)

    result, err := svc.SendMessage(context.Background(), 1, "", "some random tonic nobody knows")
    require.NoError(t, err)

    assert.False(t, result.Present)
    assert.Equal(t, "This medicine is not present in DB.", result.Reply)
    assert.Nil(t, result.Details)
}

func TestSendMessageLowConfidenceNotPresent(t *testing.T) {
    threads := newMemThreadRepo()
    messages := &memMessageRepo{}
    provider := &stubProvider{reply: `{"is_medicine":true,"normalized_name":"maybe-a-med","confidence":0.4}`}
    svc := newTestChatService(t, provider, threads, messages)

    result, err := svc.SendMessage(context.Background(), 1, "", "obscurol tonic")
    require.NoError(t, err)

    assert.False(t, result.Present)
    assert.Equal(t, "This medicine is not present in DB.", result.Reply)
}

func TestSendMessageEmptyMessage(t *testing.T) {
    svc := newTestChatService(t, &stubProvider{}, newMemThreadRepo(), &memMessageRepo{})

    _, err := svc.SendMessage(context.Background(), 1, "", "   ")
    require.Error(t, err)
    chatErr, ok := err.(*chat.ChatError)
    require.True(t, ok)
    assert.Equal(t, chat.ErrTypeValidation, chatErr.Type)
}

func TestSendMessageUnknownThreadStartsNewOne(t *testing.T) {
    threads := newMemThreadRepo()
    svc := newTestChatService(t, &stubProvider{reply: "unused"}, threads, &memMessageRepo{})

    result, err := svc.SendMessage(context.Background(), 1, "t-doesnotexist", "brotone s liquid")
    require.NoError(t, err)
    assert.NotEqual(t, "t-doesnotexist", result.ThreadID)
    assert.Len(t, threads.threads, 1)
}

func TestSendMessageForeignThreadStartsNewOne(t *testing.T) {
    threads := newMemThreadRepo()
    svc := newTestChatService(t, &stubProvider{reply: "unused"}, threads, &memMessageRepo{})

    owned, err := svc.SendMessage(context.Background(), 1, "", "brotone s liquid")
    require.NoError(t, err)

    foreign, err := svc.SendMessage(context.Background(), 2, owned.ThreadID, "vitum h liquid")
    require.NoError(t, err)
    assert.NotEqual(t, owned.ThreadID, foreign.ThreadID)
    assert.Len(t, threads.threads, 2)
}

func TestSendMessageReusesExistingThread(t *testing.T) {
    threads := newMemThreadRepo()
    messages := &memMessageRepo{}
    svc := newTestChatService(t, &stubProvider{reply: "unused"}, threads, messages)

    first, err := svc.SendMessage(context.Background(), 1, "", "brotone s liquid")
    require.NoError(t, err)
    second, err := svc.SendMessage(context.Background(), 1, first.ThreadID, "vitum h liquid")
    require.NoError(t, err)

    assert.Equal(t, first.ThreadID, second.ThreadID)
    assert.Len(t, threads.threads, 1)
}

func TestThreadOwnershipIsEnforced(t *testing.T) {
    threads := newMemThreadRepo()
    messages := &memMessageRepo{}
    svc := newTestChatService(t, &stubProvider{reply: "unused"}, threads, messages)

    result, err := svc.SendMessage(context.Background(), 1, "", "brotone s liquid")
    require.NoError(t, err)

    _, err = svc.GetThreadMessages(context.Background(), 2, result.ThreadID)
    assert.True(t, chat.IsNotFound(err))

    err = svc.DeleteThread(context.Background(), 2, result.ThreadID)
    assert.True(t, chat.IsNotFound(err))
}

func TestDeleteThreadRemovesMessages(t *testing.T) {
    threads := newMemThreadRepo()
    messages := &memMessageRepo{}
    svc := newTestChatService(t, &stubProvider{reply: "unused"}, threads, messages)

    result, err := svc.SendMessage(context.Background(), 1, "", "brotone s liquid")
    require.NoError(t, err)

    require.NoError(t, svc.DeleteThread(context.Background(), 1, result.ThreadID))
    assert.Empty(t, messages.messages)
    assert.Empty(t, threads.threads)
}

func TestCreateThreadTruncatesTitle(t *testing.T) {
    threads := newMemThreadRepo()
    svc := newTestChatService(t, &stubProvider{}, threads, &memMessageRepo{})

    long := strings.Repeat("x", 500)
    thread, err := svc.CreateThread(context.Background(), 1, long)
    require.NoError(t, err)
    assert.Len(t, thread.Title, 100)
}
