// File: internal/ratelimit/ratelimit.go
package ratelimit

import (
    "sync"
    "time"
)

// Limiter is a fixed-window request limiter keyed by client identity.
type Limiter interface {
    Allow(key string) bool
}

type window struct {
    count int
    start time.Time
}

// MemoryRateLimiter keeps per-key windows in memory. Suitable for a
// single-process deployment; swap for a shared store behind the same
// interface when running more than one instance.
type MemoryRateLimiter struct {
    mu       sync.Mutex
    windows  map[string]*window
    limit    int
    interval time.Duration
}

// NewMemoryRateLimiter allows limit requests per interval per key and
// starts a background sweep that drops stale windows.
func NewMemoryRateLimiter(limit int, interval time.Duration) *MemoryRateLimiter {
    rl := &MemoryRateLimiter{
        windows:  make(map[string]*window),
        limit:    limit,
        interval: interval,
    }
    go rl.cleanupLoop()
    return rl
}

// Allow reports whether the key may make another request right now.
func (rl *MemoryRateLimiter) Allow(key string) bool {
    rl.mu.Lock()
    defer rl.mu.Unlock()

    now := time.Now()
    w, ok := rl.windows[key]
    if !ok || now.Sub(w.start) >= rl.interval {
        rl.windows[key] = &window{count: 1, start: now}
        return true
    }
    if w.count >= rl.limit {
        return false
    }
    w.count++
    return true
}

func (rl *MemoryRateLimiter) cleanupLoop() {
    ticker := time.NewTicker(rl.interval)
    defer ticker.Stop()
    for range ticker.C {
        rl.mu.Lock()
        now := time.Now()
        for key, w := range rl.windows {
            if now.Sub(w.start) >= rl.interval {
                delete(rl.windows, key)
            }
        }
        rl.mu.Unlock()
    }
}
