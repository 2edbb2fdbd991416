// File: internal/services/ai/config.go
package ai

import (
    "fmt"
    "time"
)

type Config struct {
    // LLM Configuration
    APIKey  string
    BaseURL string
    Model   string

    // Performance Configuration
    Timeout time.Duration

    // Model Parameters. Both pinned to zero so classification and detail
    // resolution stay deterministic across identical queries.
    Temperature float32
    TopP        float32
}

func (c *Config) Validate() error {
    if c.APIKey == "" {
        return fmt.Errorf("GROQ_API_KEY is required")
    }
    if c.Model == "" {
        return fmt.Errorf("GROQ_MODEL is required")
    }
    if c.Timeout <= 0 {
        return fmt.Errorf("timeout must be positive")
    }
    return nil
}

func DefaultConfig() *Config {
    return &Config{
        BaseURL:     "https://api.groq.com/openai/v1",
        Model:       "llama-3.1-8b-instant",
        Timeout:     2 * time.Minute,
        Temperature: 0.0,
        TopP:        0.0,
    }
}
