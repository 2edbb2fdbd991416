// File: internal/services/chat/config.go
package chat

import "fmt"

type Config struct {
    // Classifier verdicts below this confidence are reported as "not in
    // the database" instead of triggering detail resolution.
    ConfidenceThreshold float64

    // New threads are titled with the first message, truncated here.
    MaxTitleLength int

    // Canned replies for the two degraded outcomes.
    NotFoundReply           string
    DetailsUnavailableReply string
}

func (c *Config) Validate() error {
    if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
        return fmt.Errorf("confidence_threshold must be in [0,1]")
    }
    if c.MaxTitleLength <= 0 {
        return fmt.Errorf("max_title_length must be positive")
    }
    if c.NotFoundReply == "" {
        return fmt.Errorf("not_found_reply is required")
    }
    if c.DetailsUnavailableReply == "" {
        return fmt.Errorf("details_unavailable_reply is required")
    }
    return nil
}

func DefaultConfig() *Config {
    return &Config{
        ConfidenceThreshold:     0.6,
        MaxTitleLength:          100,
        NotFoundReply:           "This medicine is not present in DB.",
        DetailsUnavailableReply: "Medicine recognized but details could not be loaded.",
    }
}
