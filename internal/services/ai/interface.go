// File: internal/services/ai/interface.go
package ai

import "context"

// Message roles mirroring the OpenAI-compatible chat API.
const (
    RoleSystem    = "system"
    RoleUser      = "user"
    RoleAssistant = "assistant"
)

// Message is a single chat turn sent to the model. Few-shot examples are
// passed as prior user/assistant turns ahead of the real query.
type Message struct {
    Role    string
    Content string
}

// CompletionRequest describes one chat completion call.
type CompletionRequest struct {
    Messages  []Message
    MaxTokens int
}

// CompletionProvider handles chat completions against the configured model.
type CompletionProvider interface {
    CreateCompletion(ctx context.Context, req CompletionRequest) (string, error)
}
