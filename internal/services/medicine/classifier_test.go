// File: internal/services/medicine/classifier_test.go
package medicine

import (
    "context"
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iyunix/pharma-assist/internal/domain"
    "github.com/iyunix/pharma-assist/internal/services/ai"
)

// fakeProvider returns a canned reply (or error) and counts calls.
type fakeProvider struct {
    reply string
    err   error
    calls int
}

func (f *fakeProvider) CreateCompletion(ctx context.Context, req ai.CompletionRequest) (string, error) {
    f.calls++
    if f.err != nil {
        return "", f.err
    }
    return f.reply, nil
}

func newTestClassifier(t *testing.T, provider ai.CompletionProvider) *Classifier {
    t.Helper()
    c, err := NewClassifier(DefaultConfig(), NewKnowledgeBase(), provider, nil)
    require.NoError(t, err)
    return c
}

func TestClassifyKnownMedicineSkipsLLM(t *testing.T) {
    provider := &fakeProvider{reply: `should never be used`}
    c := newTestClassifier(t, provider)

    result := c.Classify(context.Background(), "Brotone S Liquid")

    assert.True(t, result.IsMedicine)
    assert.Equal(t, 0.99, result.Confidence)
    assert.Equal(t, "brotone s liquid", result.NormalizedName)
    assert.True(t, result.IsVeterinary)
    assert.Equal(t, domain.IntendedForVeterinary, result.IntendedFor)
    assert.Equal(t, 0, provider.calls)
}

func TestClassifyEmptyInput(t *testing.T) {
    provider := &fakeProvider{}
    c := newTestClassifier(t, provider)

    for _, query := range []string{"", "   ", "\n\t"} {
        result := c.Classify(context.Background(), query)
        assert.False(t, result.IsMedicine)
        assert.Equal(t, 0.0, result.Confidence)
    }
    assert.Equal(t, 0, provider.calls)
}

func TestClassifyGateRejectsWithoutLLM(t *testing.T) {
    provider := &fakeProvider{}
    c := newTestClassifier(t, provider)

    for _, query := range []string{
        "what is the weather today",
        "xyzzy123notamedicine",
    } {
        result := c.Classify(context.Background(), query)
        assert.False(t, result.IsMedicine, query)
        assert.Equal(t, 0.0, result.Confidence, query)
    }
    assert.Equal(t, 0, provider.calls)
}

func TestClassifyViaLLM(t *testing.T) {
    provider := &fakeProvider{
        reply: `{"is_medicine":true,"normalized_name":"doxycycline","confidence":0.92,"is_veterinary":false,"intended_species":null,"intended_for":"human"}`,
    }
    c := newTestClassifier(t, provider)

    result := c.Classify(context.Background(), "doxycycline")

    assert.True(t, result.IsMedicine)
    assert.Equal(t, "doxycycline", result.NormalizedName)
    assert.Equal(t, 0.92, result.Confidence)
    assert.False(t, result.IsVeterinary)
    assert.Equal(t, domain.IntendedForHuman, result.IntendedFor)
    assert.Equal(t, 1, provider.calls)
}

func TestClassifyRepairsProseWrappedJSON(t *testing.T) {
    provider := &fakeProvider{
        reply: "Here you go: {\"is_medicine\":true,\"normalized_name\":\"metformin\",\"confidence\":0.9,\"is_veterinary\":false} enjoy!",
    }
    c := newTestClassifier(t, provider)

    result := c.Classify(context.Background(), "metformin")

    assert.True(t, result.IsMedicine)
    assert.Equal(t, "metformin", result.NormalizedName)
}

func TestClassifyClampsConfidence(t *testing.T) {
    provider := &fakeProvider{
        reply: `{"is_medicine":true,"normalized_name":"aspirin","confidence":7.5,"is_veterinary":false}`,
    }
    c := newTestClassifier(t, provider)

    result := c.Classify(context.Background(), "aspirin")
    assert.Equal(t, 1.0, result.Confidence)
}

func TestClassifyToleratesBareScalarSpecies(t *testing.T) {
    provider := &fakeProvider{
        reply: `{"is_medicine":true,"normalized_name":"oxytetracycline","confidence":0.9,"is_veterinary":true,"intended_species":"bovine","intended_for":"veterinary"}`,
    }
    c := newTestClassifier(t, provider)

    result := c.Classify(context.Background(), "oxytetracycline dose")
    assert.Equal(t, []string{"bovine"}, result.IntendedSpecies)
}

func TestClassifyLLMFailureIsNotAnError(t *testing.T) {
    provider := &fakeProvider{err: errors.New("upstream down")}
    c := newTestClassifier(t, provider)

    result := c.Classify(context.Background(), "doxycycline")

    assert.False(t, result.IsMedicine)
    assert.Equal(t, 0.0, result.Confidence)
}

func TestClassifyMalformedReply(t *testing.T) {
    provider := &fakeProvider{reply: "sorry, I cannot help with that"}
    c := newTestClassifier(t, provider)

    result := c.Classify(context.Background(), "doxycycline")

    assert.False(t, result.IsMedicine)
    assert.Equal(t, 0.0, result.Confidence)
}

func TestClassifyRejectsInvalidIntendedFor(t *testing.T) {
    provider := &fakeProvider{
        reply: `{"is_medicine":true,"normalized_name":"aspirin","confidence":0.9,"intended_for":"robots"}`,
    }
    c := newTestClassifier(t, provider)

    result := c.Classify(context.Background(), "aspirin")
    assert.Empty(t, string(result.IntendedFor))
}

func TestNewClassifierValidation(t *testing.T) {
    provider := &fakeProvider{}

    _, err := NewClassifier(nil, nil, provider, nil)
    assert.Error(t, err)

    _, err = NewClassifier(nil, NewKnowledgeBase(), nil, nil)
    assert.Error(t, err)

    _, err = NewClassifier(&Config{}, NewKnowledgeBase(), provider, nil)
    assert.Error(t, err)
}
