// File: internal/services/medicine/prefilter_test.go
package medicine

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestLooksLikeMedicineQuery(t *testing.T) {
    tests := []struct {
        query string
        want  bool
    }{
        {"paracetamol", true},
        {"PARACETAMOL 500", true},
        {"ivermectin for dogs", true},
        {"some tonic for my cat", true},
        {"take 500 mg twice daily", true},
        {"2ml injection", true},
        {"brotone", true},
        {"what is the weather today", false},
        {"hello there", false},
        {"", false},
        {"    ", false},
        {"500 kilometers", false},
    }
    for _, tt := range tests {
        assert.Equal(t, tt.want, LooksLikeMedicineQuery(tt.query), tt.query)
    }
}

func TestContainsAnyToken(t *testing.T) {
    assert.True(t, containsAnyToken("Herbal TONIC for cats", tonicKeywords))
    assert.False(t, containsAnyToken("plain water", tonicKeywords))
    assert.False(t, containsAnyToken("", tonicKeywords))
    assert.False(t, containsAnyToken("anything", nil))
}
