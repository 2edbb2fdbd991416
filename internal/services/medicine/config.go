// File: internal/services/medicine/config.go
package medicine

import "fmt"

type Config struct {
    // Token caps per call type. Classification verdicts are tiny JSON
    // objects; detail records need room for ~20 populated fields.
    ClassifyMaxTokens int
    DetailMaxTokens   int

    // Classifier results below this confidence are treated as "not found"
    // by the conversation layer.
    ConfidenceThreshold float64
}

func (c *Config) Validate() error {
    if c.ClassifyMaxTokens <= 0 {
        return fmt.Errorf("classify_max_tokens must be positive")
    }
    if c.DetailMaxTokens <= 0 {
        return fmt.Errorf("detail_max_tokens must be positive")
    }
    if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
        return fmt.Errorf("confidence_threshold must be in [0,1]")
    }
    return nil
}

func DefaultConfig() *Config {
    return &Config{
        ClassifyMaxTokens:   160,
        DetailMaxTokens:     1400,
        ConfidenceThreshold: 0.6,
    }
}
