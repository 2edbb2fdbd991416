// File: internal/services/medicine/resolver.go
package medicine

import (
    "context"
    "encoding/json"
    "strings"

    "github.com/iyunix/pharma-assist/internal/domain"
    "github.com/iyunix/pharma-assist/internal/services/ai"
)

// Resolver produces the complete structured record for a recognized
// medicine name. Curated KB entries win outright; everything else goes
// through the LLM and then the reconciliation pass, which guarantees
// every field of the returned record is populated.
type Resolver struct {
    config *Config
    kb     *KnowledgeBase
    llm    ai.CompletionProvider
    logger Logger
}

func NewResolver(config *Config, kb *KnowledgeBase, llm ai.CompletionProvider, logger Logger) (*Resolver, error) {
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
    return &Resolver{config: config, kb: kb, llm: llm, logger: logger}, nil
}

// rawRecord is the tolerant decode target for detail-call output. Every
// field absorbs type mismatches instead of failing the unmarshal.
type rawRecord struct {
    Name                      flexString  `json:"name"`
    Composition               flexString  `json:"composition"`
    Formulation               flexString  `json:"formulation"`
    Category                  flexString  `json:"category"`
    IntendedFor               flexString  `json:"intended_for"`
    IsVeterinary              flexBool    `json:"is_veterinary"`
    IntendedSpecies           flexStrings `json:"intended_species"`
    TargetPopulation          flexStrings `json:"target_population"`
    Uses                      flexStrings `json:"uses"`
    CommonSideEffects         flexStrings `json:"common_side_effects"`
    SeriousSideEffects        flexStrings `json:"serious_side_effects"`
    Contraindications         flexStrings `json:"contraindications"`
    SafeAgeGroups             flexStrings `json:"safe_age_groups"`
    PregnancyAndLactation     flexString  `json:"pregnancy_and_lactation"`
    ShelfLifeAfterManufacture flexString  `json:"shelf_life_after_manufacture"`
    StorageInstructions       flexString  `json:"storage_instructions"`
    PrescriptionRequired      flexBool    `json:"prescription_required"`
    DosageNote                flexString  `json:"dosage_note"`
    Sources                   flexStrings `json:"sources"`
    Disclaimer                flexString  `json:"disclaimer"`
}

// Resolve returns the full record for name. Returns nil only for a blank
// name; an unreachable model or garbage output still yields a complete
// record assembled entirely from reconciliation defaults.
func (r *Resolver) Resolve(ctx context.Context, name string) *domain.MedicineRecord {
    trimmed := strings.TrimSpace(name)
    if trimmed == "" {
        return nil
    }

    if entry := r.kb.Lookup(trimmed); entry != nil {
        entry.Inferred = false
        entry.InferenceNotes = []domain.InferenceNote{}
        r.logger.Debug("detail resolved from knowledge base", "name", entry.Name)
        return entry
    }

    raw, prescriptionSet := r.fetchDetails(ctx, trimmed)
    record, notes := reconcile(trimmed, raw, prescriptionSet)
    record.Inferred = len(notes) > 0
    record.InferenceNotes = notes
    r.logger.Debug("detail resolved via inference",
        "name", record.Name,
        "inferred_fields", len(notes))
    return record
}

// fetchDetails runs the detail completion and decodes whatever comes
// back. Any failure returns an empty rawRecord so reconciliation fills
// every field itself.
func (r *Resolver) fetchDetails(ctx context.Context, name string) (rawRecord, bool) {
    var raw rawRecord

    reply, err := r.llm.CreateCompletion(ctx, ai.CompletionRequest{
        Messages:  detailMessages(name),
        MaxTokens: r.config.DetailMaxTokens,
    })
    if err != nil {
        r.logger.Warn("detail LLM call failed", "name", name, "error", err.Error())
        return raw, false
    }

    candidate, repaired, ok := ExtractJSONObject(reply)
    if !ok {
        r.logger.Warn("detail reply carried no JSON object", "name", name, "reply_length", len(reply))
        return raw, false
    }
    if repaired {
        r.logger.Debug("detail JSON repaired from surrounding text", "name", name)
    }

    if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
        r.logger.Warn("detail JSON parse failed", "name", name, "error", err.Error())
        return rawRecord{}, false
    }
    return raw, raw.PrescriptionRequired.Set
}
