// File: internal/services/medicine/classifier.go
package medicine

import (
    "context"
    "encoding/json"
    "strings"

    "github.com/iyunix/pharma-assist/internal/domain"
    "github.com/iyunix/pharma-assist/internal/services/ai"
)

// classifyStrategy is one stage of the classification chain. handled=false
// means "not my call, try the next strategy". Strategies never return
// errors: operational failures map onto conservative verdicts.
type classifyStrategy struct {
    name string
    run  func(ctx context.Context, query string) (domain.ClassificationResult, bool)
}

// Classifier decides whether free text names a medicine. Precedence is an
// explicit ordered strategy list: curated KB, lexical gate, LLM. First
// strategy to answer wins, so adding a second LLM provider later is a
// one-line change.
type Classifier struct {
    config     *Config
    kb         *KnowledgeBase
    llm        ai.CompletionProvider
    logger     Logger
    strategies []classifyStrategy
}

func NewClassifier(config *Config, kb *KnowledgeBase, llm ai.CompletionProvider, logger Logger) (*Classifier, error) {
    if kb == nil {
        return nil, NewValidationError("constructor", "knowledge base is required")
    }
    if llm == nil {
        return nil, NewValidationError("constructor", "completion provider is required")
    }
    if config == nil {
        config = DefaultConfig()
    }
    if err := config.Validate(); err != nil {
        return nil, NewConfigError("constructor", err.Error())
    }
    if logger == nil {
        logger = &noopLogger{}
    }

    c := &Classifier{config: config, kb: kb, llm: llm, logger: logger}
    c.strategies = []classifyStrategy{
        {name: "knowledge_base", run: c.classifyFromKB},
        {name: "lexical_gate", run: c.classifyFromGate},
        {name: "llm", run: c.classifyFromLLM},
    }
    return c, nil
}

// Classify returns a verdict for query. It never returns an error: empty
// input, gate rejection, LLM transport failures and malformed model
// output all collapse into the zero-confidence "not a medicine" result.
func (c *Classifier) Classify(ctx context.Context, query string) domain.ClassificationResult {
    trimmed := strings.TrimSpace(query)
    if trimmed == "" {
        return notMedicine()
    }

    for _, strategy := range c.strategies {
        if result, handled := strategy.run(ctx, trimmed); handled {
            c.logger.Debug("classification decided",
                "strategy", strategy.name,
                "is_medicine", result.IsMedicine,
                "confidence", result.Confidence)
            return result
        }
    }
    // Unreachable while the LLM strategy terminates the chain.
    return notMedicine()
}

func notMedicine() domain.ClassificationResult {
    return domain.ClassificationResult{IsMedicine: false, Confidence: 0.0}
}

// classifyFromKB answers only on a curated hit. KB-backed verdicts carry
// a fixed 0.99 confidence.
func (c *Classifier) classifyFromKB(_ context.Context, query string) (domain.ClassificationResult, bool) {
    entry := c.kb.Lookup(query)
    if entry == nil {
        return domain.ClassificationResult{}, false
    }

    intendedFor := entry.IntendedFor
    if intendedFor == "" {
        if entry.IsVeterinary {
            intendedFor = domain.IntendedForVeterinary
        } else {
            intendedFor = domain.IntendedForHuman
        }
    }
    return domain.ClassificationResult{
        IsMedicine:      true,
        NormalizedName:  strings.ToLower(entry.Name),
        Confidence:      0.99,
        IsVeterinary:    entry.IsVeterinary,
        IntendedSpecies: entry.IntendedSpecies,
        IntendedFor:     intendedFor,
    }, true
}

// classifyFromGate answers only when the lexical pre-filter rejects the
// query, short-circuiting before any LLM spend.
func (c *Classifier) classifyFromGate(_ context.Context, query string) (domain.ClassificationResult, bool) {
    if LooksLikeMedicineQuery(query) {
        return domain.ClassificationResult{}, false
    }
    return notMedicine(), true
}

// rawClassification is the tolerant decode target for model output.
type rawClassification struct {
    IsMedicine      flexBool    `json:"is_medicine"`
    NormalizedName  flexString  `json:"normalized_name"`
    Confidence      flexFloat   `json:"confidence"`
    IsVeterinary    flexBool    `json:"is_veterinary"`
    IntendedSpecies flexStrings `json:"intended_species"`
    IntendedFor     flexString  `json:"intended_for"`
}

// classifyFromLLM always answers; it terminates the chain.
func (c *Classifier) classifyFromLLM(ctx context.Context, query string) (domain.ClassificationResult, bool) {
    reply, err := c.llm.CreateCompletion(ctx, ai.CompletionRequest{
        Messages:  classifyMessages(query),
        MaxTokens: c.config.ClassifyMaxTokens,
    })
    if err != nil {
        c.logger.Warn("classifier LLM call failed", "error", err.Error())
        return notMedicine(), true
    }

    candidate, repaired, ok := ExtractJSONObject(reply)
    if !ok {
        c.logger.Warn("classifier returned no JSON object", "reply_length", len(reply))
        return notMedicine(), true
    }
    if repaired {
        c.logger.Debug("classifier JSON repaired from surrounding text")
    }

    var raw rawClassification
    if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
        c.logger.Warn("classifier JSON parse failed", "error", err.Error())
        return notMedicine(), true
    }

    result := domain.ClassificationResult{
        IsMedicine:      raw.IsMedicine.Value,
        NormalizedName:  string(raw.NormalizedName),
        IsVeterinary:    raw.IsVeterinary.Value,
        IntendedSpecies: []string(raw.IntendedSpecies),
    }
    if raw.Confidence.Set {
        result.Confidence = clamp01(raw.Confidence.Value)
    }
    if domain.ValidIntendedFor(string(raw.IntendedFor)) {
        result.IntendedFor = domain.IntendedFor(raw.IntendedFor)
    }
    return result, true
}

func clamp01(v float64) float64 {
    if v < 0 {
        return 0
    }
    if v > 1 {
        return 1
    }
    return v
}

// noopLogger keeps constructors usable without a logger wired in.
type noopLogger struct{}

func (n *noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (n *noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
