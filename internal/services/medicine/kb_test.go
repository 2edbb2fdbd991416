// File: internal/services/medicine/kb_test.go
package medicine

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
    assert.Equal(t, "brotone s liquid", NormalizeKey("  Brotone-S   Liquid! "))
    assert.Equal(t, "ivermectin injection 1", NormalizeKey("Ivermectin Injection 1%"))
    assert.Equal(t, "", NormalizeKey("!!!"))
}

func TestKnowledgeBaseExactLookup(t *testing.T) {
    kb := NewKnowledgeBase()

    entry := kb.Lookup("Brotone S Liquid")
    require.NotNil(t, entry)
    assert.Equal(t, "Brotone S Liquid", entry.Name)
    assert.Equal(t, "Nutritional Supplement", entry.Category)
    assert.True(t, entry.IsVeterinary)
}

func TestKnowledgeBaseContainmentLookup(t *testing.T) {
    kb := NewKnowledgeBase()

    // Query longer than the key.
    entry := kb.Lookup("tell me about enrofloxacin please")
    require.NotNil(t, entry)
    assert.Equal(t, "Enrofloxacin", entry.Name)

    // Query shorter than the key.
    entry = kb.Lookup("multistar")
    require.NotNil(t, entry)
    assert.Equal(t, "Multistar Pet Tonic", entry.Name)
}

func TestKnowledgeBaseMiss(t *testing.T) {
    kb := NewKnowledgeBase()

    assert.Nil(t, kb.Lookup("xyzzy123notamedicine"))
    assert.Nil(t, kb.Lookup(""))
    assert.Nil(t, kb.Lookup("   "))
}

func TestKnowledgeBaseReturnsIndependentCopies(t *testing.T) {
    kb := NewKnowledgeBase()

    first := kb.Lookup("ivermectin injection 1%")
    require.NotNil(t, first)
    first.Name = "mutated"
    first.Uses[0] = "mutated"

    second := kb.Lookup("ivermectin injection 1%")
    require.NotNil(t, second)
    assert.Equal(t, "Ivermectin Injection 1%", second.Name)
    assert.NotEqual(t, "mutated", second.Uses[0])
}

func TestKnowledgeBaseRecordsAreComplete(t *testing.T) {
    kb := NewKnowledgeBase()
    for _, key := range kb.Keys() {
        entry := kb.Lookup(key)
        require.NotNil(t, entry, key)
        assert.NotEmpty(t, entry.Name, key)
        assert.NotEmpty(t, entry.Composition, key)
        assert.NotEmpty(t, entry.Uses, key)
        assert.NotEmpty(t, entry.CommonSideEffects, key)
        assert.NotEmpty(t, entry.Contraindications, key)
        assert.Equal(t, "Not a substitute for professional medical advice.", entry.Disclaimer, key)
    }
}
