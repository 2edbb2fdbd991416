// File: internal/services/ai/groq_provider.go
package ai

import (
    "context"
    "math"

    openai "github.com/sashabaranov/go-openai"
)

// GroqProvider talks to Groq's OpenAI-compatible chat completion endpoint.
type GroqProvider struct {
    config *Config
    client *openai.Client
}

func NewGroqProvider(config *Config) *GroqProvider {
    clientConfig := openai.DefaultConfig(config.APIKey)
    if config.BaseURL != "" {
        clientConfig.BaseURL = config.BaseURL
    }
    return &GroqProvider{
        config: config,
        client: openai.NewClientWithConfig(clientConfig),
    }
}

func (p *GroqProvider) CreateCompletion(ctx context.Context, req CompletionRequest) (string, error) {
    messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
    for _, m := range req.Messages {
        messages = append(messages, openai.ChatCompletionMessage{
            Role:    m.Role,
            Content: m.Content,
        })
    }

    if p.config.Timeout > 0 {
        var cancel context.CancelFunc
        ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
        defer cancel()
    }

    resp, err := p.client.CreateChatCompletion(
        ctx,
        openai.ChatCompletionRequest{
            Model:       p.config.Model,
            Messages:    messages,
            MaxTokens:   req.MaxTokens,
            Temperature: pinnedSampling(p.config.Temperature),
            TopP:        pinnedSampling(p.config.TopP),
        },
    )

    if err != nil {
        return "", NewProviderError("completion", "failed to create completion", err)
    }

    if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
        return "", &AIError{
            Type:      ErrTypeProvider,
            Operation: "completion",
            Message:   "empty completion response",
            Model:     p.config.Model,
        }
    }

    return resp.Choices[0].Message.Content, nil
}

// pinnedSampling maps a configured 0 to the smallest nonzero float32.
// The client marshals temperature/top_p with omitempty, so a literal 0
// is dropped from the request and the API would fall back to its own
// defaults instead of greedy decoding.
func pinnedSampling(v float32) float32 {
    if v == 0 {
        return math.SmallestNonzeroFloat32
    }
    return v
}
