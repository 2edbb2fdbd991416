// File: internal/services/chat/types.go
package chat

import "github.com/iyunix/pharma-assist/internal/domain"

// Logger defines the logging interface for the chat assembler.
type Logger interface {
    Info(msg string, keysAndValues ...interface{})
    Error(msg string, keysAndValues ...interface{})
    Debug(msg string, keysAndValues ...interface{})
    Warn(msg string, keysAndValues ...interface{})
}

// Result is one assistant turn as returned to the frontend. Reply holds
// markdown; ReplyHTML is the same content rendered server-side so thin
// clients can display it directly.
type Result struct {
    Present   bool                   `json:"present"`
    Reply     string                 `json:"reply"`
    ReplyHTML string                 `json:"replyHtml,omitempty"`
    Details   *domain.MedicineRecord `json:"details,omitempty"`
    ThreadID  string                 `json:"threadId"`
}
