// File: internal/services/ai/groq_provider_test.go
package ai

import (
    "math"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestPinnedSamplingSurvivesOmitempty(t *testing.T) {
    // A configured 0 must serialize as a nonzero value so the request
    // actually pins greedy decoding.
    assert.Equal(t, float32(math.SmallestNonzeroFloat32), pinnedSampling(0))
    assert.NotZero(t, pinnedSampling(0))

    assert.Equal(t, float32(0.7), pinnedSampling(0.7))
}
