// File: internal/domain/thread.go
package domain

import "time"

// Thread represents a single conversation thread.
// ThreadID is the public identifier handed to the frontend ("t-<hex>");
// the numeric ID stays internal to the database.
type Thread struct {
    ID        uint   `gorm:"primarykey" json:"-"`
    ThreadID  string `gorm:"uniqueIndex;not null" json:"threadId"`
    UserID    uint   `gorm:"index;not null" json:"-"` // The ID of the user who owns the thread
    Title     string `json:"title"` // The title of the thread, e.g., "brotone s liquid"
    CreatedAt time.Time `json:"createdAt"`
    UpdatedAt time.Time `json:"updatedAt"`
}
