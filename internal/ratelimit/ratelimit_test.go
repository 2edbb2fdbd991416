// File: internal/ratelimit/ratelimit_test.go
package ratelimit

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestMemoryRateLimiterEnforcesLimit(t *testing.T) {
    rl := NewMemoryRateLimiter(3, time.Hour)

    assert.True(t, rl.Allow("1.2.3.4"))
    assert.True(t, rl.Allow("1.2.3.4"))
    assert.True(t, rl.Allow("1.2.3.4"))
    assert.False(t, rl.Allow("1.2.3.4"))

    // Other keys have their own budget.
    assert.True(t, rl.Allow("5.6.7.8"))
}

func TestMemoryRateLimiterWindowReset(t *testing.T) {
    rl := NewMemoryRateLimiter(1, 10*time.Millisecond)

    assert.True(t, rl.Allow("1.2.3.4"))
    assert.False(t, rl.Allow("1.2.3.4"))

    time.Sleep(15 * time.Millisecond)
    assert.True(t, rl.Allow("1.2.3.4"))
}
