// File: internal/services/medicine/jsonrepair_test.go
package medicine

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestExtractJSONObjectClean(t *testing.T) {
    candidate, repaired, ok := ExtractJSONObject(`{"a":1}`)
    assert.True(t, ok)
    assert.False(t, repaired)
    assert.Equal(t, `{"a":1}`, candidate)
}

func TestExtractJSONObjectWithSurroundingWhitespace(t *testing.T) {
    candidate, repaired, ok := ExtractJSONObject("\n  {\"a\":1}  \n")
    assert.True(t, ok)
    assert.False(t, repaired)
    assert.Equal(t, `{"a":1}`, candidate)
}

func TestExtractJSONObjectRepairsProse(t *testing.T) {
    candidate, repaired, ok := ExtractJSONObject("Sure! Here is the JSON:\n```json\n{\"a\":1}\n```\nHope it helps.")
    assert.True(t, ok)
    assert.True(t, repaired)
    assert.Equal(t, `{"a":1}`, candidate)
}

func TestExtractJSONObjectNoObject(t *testing.T) {
    for _, text := range []string{
        "",
        "   ",
        "sorry, I cannot help with that",
        "}{",
    } {
        _, _, ok := ExtractJSONObject(text)
        assert.False(t, ok, text)
    }
}
