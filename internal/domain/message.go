// File: internal/domain/message.go
package domain

import "time"

// Message represents a single message within a thread.
type Message struct {
    ID        uint      `gorm:"primarykey" json:"-"`
    ThreadID  uint      `json:"-" gorm:"index;not null"` // The ID of the thread this message belongs to
    Role      string    `json:"role" gorm:"not null"`    // "user" or "assistant"
    Content   string    `json:"content" gorm:"not null"`
    CreatedAt time.Time `json:"timestamp"`
}
