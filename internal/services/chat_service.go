// File: internal/services/chat_service.go
package services

import (
    "bytes"
    "context"
    "crypto/rand"
    "encoding/hex"
    "encoding/json"
    "errors"
    "fmt"
    "strings"

    "github.com/yuin/goldmark"
    gmhtml "github.com/yuin/goldmark/renderer/html"

    "github.com/iyunix/pharma-assist/internal/domain"
    messagerepo "github.com/iyunix/pharma-assist/internal/repository/message"
    threadrepo "github.com/iyunix/pharma-assist/internal/repository/thread"
    "github.com/iyunix/pharma-assist/internal/services/chat"
    "github.com/iyunix/pharma-assist/internal/services/medicine"
)

// ChatService assembles one conversation turn: it owns thread/message
// persistence and delegates the medicine question itself to the
// classifier and resolver.
type ChatService struct {
    config      *chat.Config
    classifier  *medicine.Classifier
    resolver    *medicine.Resolver
    threadRepo  threadrepo.Repository
    messageRepo messagerepo.Repository
    markdown    goldmark.Markdown
    logger      chat.Logger
}

func NewChatService(
    config *chat.Config,
    classifier *medicine.Classifier,
    resolver *medicine.Resolver,
    threadRepo threadrepo.Repository,
    messageRepo messagerepo.Repository,
    logger chat.Logger,
) (*ChatService, error) {
    if classifier == nil || resolver == nil {
        return nil, chat.NewValidationError("constructor", "classifier and resolver are required")
    }
    if threadRepo == nil || messageRepo == nil {
        return nil, chat.NewValidationError("constructor", "thread and message repositories are required")
    }
    if config == nil {
        config = chat.DefaultConfig()
    }
    if err := config.Validate(); err != nil {
        return nil, chat.NewConfigError("constructor", err.Error())
    }
    if logger == nil {
        logger = &NoOpLogger{}
    }

    return &ChatService{
        config:      config,
        classifier:  classifier,
        resolver:    resolver,
        threadRepo:  threadRepo,
        messageRepo: messageRepo,
        markdown: goldmark.New(
            goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
        ),
        logger: logger,
    }, nil
}

// SendMessage runs one full turn: persist the user's message, classify
// it, resolve details when warranted, persist the assistant reply and
// return the structured result. threadID may be empty to start a new
// thread.
func (s *ChatService) SendMessage(ctx context.Context, userID uint, threadID, message string) (*chat.Result, error) {
    message = strings.TrimSpace(message)
    if message == "" {
        return nil, chat.NewValidationError("send_message", "message cannot be empty")
    }

    thread, err := s.resolveThread(ctx, userID, threadID, message)
    if err != nil {
        return nil, err
    }

    if err := s.messageRepo.Create(ctx, &domain.Message{
        ThreadID: thread.ID,
        Role:     "user",
        Content:  message,
    }); err != nil {
        return nil, chat.NewStorageError("send_message", "failed to save user message", err)
    }

    verdict := s.classifier.Classify(ctx, message)
    present := verdict.IsMedicine && verdict.Confidence >= s.config.ConfidenceThreshold
    s.logger.Info("message classified",
        "user_id", userID,
        "thread_id", thread.ThreadID,
        "is_medicine", verdict.IsMedicine,
        "confidence", verdict.Confidence,
        "present", present)

    result := &chat.Result{Present: present, ThreadID: thread.ThreadID}

    if !present {
        result.Reply = s.config.NotFoundReply
    } else {
        name := verdict.NormalizedName
        if name == "" {
            name = message
        }
        record := s.resolver.Resolve(ctx, name)
        if record == nil {
            // Recognized but unresolvable stays "present"; only the
            // details are missing.
            result.Reply = s.config.DetailsUnavailableReply
        } else {
            result.Details = record
            result.Reply = renderRecordMarkdown(record)
            result.ReplyHTML = s.renderHTML(result.Reply)
        }
    }

    if err := s.messageRepo.Create(ctx, &domain.Message{
        ThreadID: thread.ID,
        Role:     "assistant",
        Content:  result.Reply,
    }); err != nil {
        return nil, chat.NewStorageError("send_message", "failed to save assistant message", err)
    }
    if err := s.threadRepo.Touch(ctx, thread.ID); err != nil {
        s.logger.Warn("failed to touch thread", "thread_id", thread.ThreadID, "error", err.Error())
    }

    return result, nil
}

// CreateThread starts an empty thread with an explicit title.
func (s *ChatService) CreateThread(ctx context.Context, userID uint, title string) (*domain.Thread, error) {
    title = strings.TrimSpace(title)
    if title == "" {
        title = "New conversation"
    }
    thread := &domain.Thread{
        ThreadID: newThreadID(),
        UserID:   userID,
        Title:    truncate(title, s.config.MaxTitleLength),
    }
    if err := s.threadRepo.Create(ctx, thread); err != nil {
        return nil, chat.NewStorageError("create_thread", "failed to create thread", err)
    }
    return thread, nil
}

// GetUserThreads lists the user's threads, most recently active first.
func (s *ChatService) GetUserThreads(ctx context.Context, userID uint) ([]domain.Thread, error) {
    threads, err := s.threadRepo.ListByUser(ctx, userID)
    if err != nil {
        return nil, chat.NewStorageError("get_user_threads", "failed to list threads", err)
    }
    return threads, nil
}

// GetThreadMessages returns a thread's messages oldest first, verifying
// ownership on the way.
func (s *ChatService) GetThreadMessages(ctx context.Context, userID uint, threadID string) ([]domain.Message, error) {
    thread, err := s.threadRepo.FindByPublicID(ctx, userID, threadID)
    if err != nil {
        if errors.Is(err, threadrepo.ErrThreadNotFound) {
            return nil, chat.NewNotFoundError("get_thread_messages", "thread not found")
        }
        return nil, chat.NewStorageError("get_thread_messages", "failed to load thread", err)
    }
    messages, err := s.messageRepo.ListByThread(ctx, thread.ID)
    if err != nil {
        return nil, chat.NewStorageError("get_thread_messages", "failed to list messages", err)
    }
    return messages, nil
}

// DeleteThread removes a thread and its messages.
func (s *ChatService) DeleteThread(ctx context.Context, userID uint, threadID string) error {
    thread, err := s.threadRepo.FindByPublicID(ctx, userID, threadID)
    if err != nil {
        if errors.Is(err, threadrepo.ErrThreadNotFound) {
            return chat.NewNotFoundError("delete_thread", "thread not found")
        }
        return chat.NewStorageError("delete_thread", "failed to load thread", err)
    }
    if err := s.messageRepo.DeleteByThread(ctx, thread.ID); err != nil {
        return chat.NewStorageError("delete_thread", "failed to delete thread messages", err)
    }
    if err := s.threadRepo.Delete(ctx, userID, threadID); err != nil {
        return chat.NewStorageError("delete_thread", "failed to delete thread", err)
    }
    return nil
}

// resolveThread loads the addressed thread or starts a new one titled
// with the first message. An unknown id, or one owned by another user,
// silently starts a fresh thread rather than erroring; the response
// carries the actual threadId either way.
func (s *ChatService) resolveThread(ctx context.Context, userID uint, threadID, message string) (*domain.Thread, error) {
    if threadID == "" {
        return s.CreateThread(ctx, userID, message)
    }
    thread, err := s.threadRepo.FindByPublicID(ctx, userID, threadID)
    if err != nil {
        if errors.Is(err, threadrepo.ErrThreadNotFound) {
            s.logger.Debug("thread not found, starting a new one", "thread_id", threadID)
            return s.CreateThread(ctx, userID, message)
        }
        return nil, chat.NewStorageError("send_message", "failed to load thread", err)
    }
    return thread, nil
}

func (s *ChatService) renderHTML(markdownText string) string {
    var buf bytes.Buffer
    if err := s.markdown.Convert([]byte(markdownText), &buf); err != nil {
        s.logger.Warn("markdown rendering failed", "error", err.Error())
        return ""
    }
    return buf.String()
}

// renderRecordMarkdown formats a record as the assistant's reply: a short
// readable summary followed by the full record as a JSON block.
func renderRecordMarkdown(record *domain.MedicineRecord) string {
    var b strings.Builder
    fmt.Fprintf(&b, "## %s\n\n", record.Name)
    fmt.Fprintf(&b, "**Category:** %s  \n", record.Category)
    fmt.Fprintf(&b, "**Formulation:** %s  \n", record.Formulation)
    fmt.Fprintf(&b, "**Intended for:** %s  \n", record.IntendedFor)
    fmt.Fprintf(&b, "**Prescription required:** %s\n\n", yesNo(record.PrescriptionRequired))

    b.WriteString("**Uses:**\n")
    for _, use := range record.Uses {
        fmt.Fprintf(&b, "- %s\n", use)
    }
    b.WriteString("\n")

    if record.Inferred {
        fmt.Fprintf(&b, "_%d field(s) are conservative inferences, not verified data._\n\n", len(record.InferenceNotes))
    }

    if data, err := json.MarshalIndent(record, "", "  "); err == nil {
        fmt.Fprintf(&b, "```json\n%s\n```\n\n", data)
    }

    fmt.Fprintf(&b, "> %s\n", record.Disclaimer)
    return b.String()
}

func yesNo(v bool) string {
    if v {
        return "Yes"
    }
    return "No"
}

// newThreadID generates the public thread identifier, "t-" plus 16 hex
// characters.
func newThreadID() string {
    buf := make([]byte, 8)
    if _, err := rand.Read(buf); err != nil {
        // crypto/rand failing is unrecoverable in practice.
        panic(fmt.Sprintf("failed to generate thread id: %v", err))
    }
    return "t-" + hex.EncodeToString(buf)
}

func truncate(s string, max int) string {
    if len(s) <= max {
        return s
    }
    return s[:max]
}
