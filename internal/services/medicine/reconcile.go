// File: internal/services/medicine/reconcile.go
package medicine

import (
    "regexp"
    "strings"

    "github.com/iyunix/pharma-assist/internal/domain"
)

// Reconciliation patterns. All matching is case-insensitive and runs on
// the product name (or, for varies-rejection, the model's field value).
var (
    variesPattern       = regexp.MustCompile(`(?i)^varies`)
    injectionPattern    = regexp.MustCompile(`(?i)\binjection\b`)
    liquidFormPattern   = regexp.MustCompile(`(?i)\b(liquid|syrup|solution|suspension)\b`)
    antiparasiticNames  = regexp.MustCompile(`(?i)\b(ivermectin|fenbendazole|albendazole|praziquantel)\b`)
    antibioticNames     = regexp.MustCompile(`(?i)\b(enrofloxacin|amoxicillin|oxytetracycline|cef)`)
    veterinaryCues      = regexp.MustCompile(`(?i)\b(for dogs|for cats|for cattle|for horses|for poultry|canine|feline|bovine|equine|poultry|livestock|vet|veterinary)\b`)
    supplementCategory  = regexp.MustCompile(`(?i)nutritional|tonic|supplement`)
)

// speciesCues maps name tokens to canonical species labels, scanned in
// fixed order so inferred species lists are deterministic.
var speciesCues = []struct {
    tokens  []string
    species string
}{
    {[]string{"dog", "dogs", "canine"}, "canine"},
    {[]string{"cat", "cats", "feline"}, "feline"},
    {[]string{"cattle", "bovine"}, "bovine"},
    {[]string{"poultry", "chicken"}, "poultry"},
    {[]string{"horse", "horses", "equine"}, "equine"},
}

// Default texts for fields the model left empty. Each is deliberately
// conservative and marked as inferred where the phrasing allows.
const (
    defaultPregnancyText  = "Use with caution; consult a veterinarian or healthcare professional before use during pregnancy or lactation."
    defaultShelfLifeText  = "Inferred: check manufacturer label (commonly 2–3 years unopened)"
    defaultStorageText    = "Store in a cool, dry place away from direct sunlight. Keep tightly closed."
    defaultDosageNoteText = "Strictly weight-based dosing where applicable. Must be determined by a licensed veterinarian or healthcare professional. Do NOT use inferred doses."
)

// reconcile turns a (possibly empty) raw model record into a complete
// MedicineRecord. Every filled-in field gets an InferenceNote so the UI
// can distinguish model/KB data from conservative defaults. The pass is
// idempotent: feeding a reconciled record's values back through changes
// nothing.
func reconcile(query string, raw rawRecord, prescriptionSet bool) (*domain.MedicineRecord, []domain.InferenceNote) {
    notes := []domain.InferenceNote{}
    note := func(field, reason string, value any) {
        notes = append(notes, domain.InferenceNote{Field: field, Reason: reason, InferredValue: value})
    }

    record := &domain.MedicineRecord{}

    record.Name = strings.TrimSpace(string(raw.Name))
    if record.Name == "" {
        record.Name = query
        note("name", "model did not return a product name; using the query text", query)
    }

    record.Composition = strings.TrimSpace(string(raw.Composition))
    if record.Composition == "" || variesPattern.MatchString(record.Composition) {
        record.Composition = "Inferred: exact composition not reliably known; check the manufacturer label."
        note("composition", "missing or non-committal composition from model", record.Composition)
    }

    // Name-token inference keys off the queried name, not the model's
    // self-reported one; a renamed product must not derail the rules.
    record.Formulation = strings.TrimSpace(string(raw.Formulation))
    if record.Formulation == "" || variesPattern.MatchString(record.Formulation) {
        switch {
        case injectionPattern.MatchString(query):
            record.Formulation = "Injection"
        case liquidFormPattern.MatchString(query):
            record.Formulation = "Liquid"
        default:
            record.Formulation = "Inferred: unknown formulation"
        }
        note("formulation", "derived from queried name tokens", record.Formulation)
    }

    record.Category = strings.TrimSpace(string(raw.Category))
    if record.Category == "" || variesPattern.MatchString(record.Category) {
        switch {
        case antiparasiticNames.MatchString(query):
            record.Category = "Antiparasitic"
        case antibioticNames.MatchString(query):
            record.Category = "Antibiotic"
        case containsAnyToken(query, tonicKeywords):
            record.Category = "Nutritional Supplement"
        default:
            record.Category = "Inferred: unknown category"
        }
        note("category", "derived from queried name tokens", record.Category)
    }

    record.IntendedFor, record.IsVeterinary = reconcileIntendedFor(raw, query)
    if !domain.ValidIntendedFor(string(raw.IntendedFor)) {
        note("intended_for", "model value missing or outside the accepted enum; derived from name cues", string(record.IntendedFor))
    }

    record.IntendedSpecies = []string(raw.IntendedSpecies)
    if len(record.IntendedSpecies) == 0 {
        record.IntendedSpecies = inferSpecies(query, record.IsVeterinary)
        note("intended_species", "derived from species tokens in the queried name", record.IntendedSpecies)
    }

    record.TargetPopulation = []string(raw.TargetPopulation)
    if len(record.TargetPopulation) == 0 {
        if record.IsVeterinary {
            record.TargetPopulation = []string{"livestock", "pets"}
        } else {
            record.TargetPopulation = []string{"adults", "children (formulation-dependent)"}
        }
        note("target_population", "defaulted by intended audience", record.TargetPopulation)
    }

    record.Uses = []string(raw.Uses)
    if len(record.Uses) == 0 {
        record.Uses = defaultUses(record.Category)
        note("uses", "defaulted from product category", record.Uses)
    }

    record.CommonSideEffects = []string(raw.CommonSideEffects)
    if len(record.CommonSideEffects) == 0 {
        record.CommonSideEffects = defaultCommonSideEffects(record.Category)
        note("common_side_effects", "defaulted from product category", record.CommonSideEffects)
    }

    record.SeriousSideEffects = []string(raw.SeriousSideEffects)
    if len(record.SeriousSideEffects) == 0 {
        record.SeriousSideEffects = defaultSeriousSideEffects(record.Category)
        note("serious_side_effects", "defaulted from product category", record.SeriousSideEffects)
    }

    record.Contraindications = []string(raw.Contraindications)
    if len(record.Contraindications) == 0 {
        record.Contraindications = []string{"Known hypersensitivity to any component"}
        note("contraindications", "defaulted to the universal hypersensitivity caution", record.Contraindications)
    }

    record.SafeAgeGroups = []string(raw.SafeAgeGroups)
    if len(record.SafeAgeGroups) == 0 {
        record.SafeAgeGroups = []string{"Adults"}
        if record.IsVeterinary {
            record.SafeAgeGroups = append(record.SafeAgeGroups, "Young animals (species-specific dosing may apply)")
        }
        note("safe_age_groups", "defaulted by intended audience", record.SafeAgeGroups)
    }

    record.PregnancyAndLactation = strings.TrimSpace(string(raw.PregnancyAndLactation))
    if record.PregnancyAndLactation == "" || variesPattern.MatchString(record.PregnancyAndLactation) {
        record.PregnancyAndLactation = defaultPregnancyText
        note("pregnancy_and_lactation", "defaulted to the conservative caution", record.PregnancyAndLactation)
    }

    record.ShelfLifeAfterManufacture = strings.TrimSpace(string(raw.ShelfLifeAfterManufacture))
    if record.ShelfLifeAfterManufacture == "" {
        record.ShelfLifeAfterManufacture = defaultShelfLifeText
        note("shelf_life_after_manufacture", "not reliably known without the label", record.ShelfLifeAfterManufacture)
    }

    record.StorageInstructions = strings.TrimSpace(string(raw.StorageInstructions))
    if record.StorageInstructions == "" {
        record.StorageInstructions = defaultStorageText
        note("storage_instructions", "defaulted to standard storage guidance", record.StorageInstructions)
    }

    if prescriptionSet {
        record.PrescriptionRequired = raw.PrescriptionRequired.Value
    } else {
        // Supplements and tonics are over-the-counter; everything else is
        // assumed prescription-only when the model does not say.
        record.PrescriptionRequired = !supplementCategory.MatchString(record.Category)
        note("prescription_required", "derived from product category", record.PrescriptionRequired)
    }

    record.DosageNote = strings.TrimSpace(string(raw.DosageNote))
    if record.DosageNote == "" {
        record.DosageNote = defaultDosageNoteText
        note("dosage_note", "defaulted to the non-prescriptive dosing caution", record.DosageNote)
    }

    record.Sources = []string(raw.Sources)
    if len(record.Sources) == 0 {
        record.Sources = []string{"inferred"}
        note("sources", "model cited no sources", record.Sources)
    }

    // The disclaimer is pinned regardless of what the model returned.
    record.Disclaimer = domain.Disclaimer

    return record, notes
}

// reconcileIntendedFor validates the model's intended_for against the
// enum and otherwise derives audience from name cues. is_veterinary
// always agrees with the final intended_for.
func reconcileIntendedFor(raw rawRecord, name string) (domain.IntendedFor, bool) {
    if domain.ValidIntendedFor(string(raw.IntendedFor)) {
        intendedFor := domain.IntendedFor(raw.IntendedFor)
        vet := intendedFor == domain.IntendedForVeterinary || intendedFor == domain.IntendedForBoth
        if raw.IsVeterinary.Set && raw.IsVeterinary.Value {
            vet = true
        }
        return intendedFor, vet
    }
    if veterinaryCues.MatchString(name) || containsAnyToken(name, tonicKeywords) {
        return domain.IntendedForVeterinary, true
    }
    return domain.IntendedForUnknown, false
}

// inferSpecies scans the name for species tokens. Matching is on whole
// words ("cat" must not match "cattle"). A veterinary product with no
// recognizable species still gets a placeholder so species lists are
// never empty.
func inferSpecies(name string, veterinary bool) []string {
    words := make(map[string]bool)
    for _, w := range strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
        return (r < 'a' || r > 'z') && (r < '0' || r > '9')
    }) {
        words[w] = true
    }

    var species []string
    for _, cue := range speciesCues {
        for _, token := range cue.tokens {
            if words[token] {
                species = append(species, cue.species)
                break
            }
        }
    }
    if len(species) > 0 {
        return species
    }
    if veterinary {
        return []string{"Inferred: species not specified"}
    }
    return []string{"human"}
}

func defaultUses(category string) []string {
    switch {
    case strings.Contains(strings.ToLower(category), "antiparasitic"):
        return []string{
            "Treatment of internal parasites",
            "Treatment of external parasites (formulation-dependent)",
        }
    case strings.Contains(strings.ToLower(category), "antibiotic"):
        return []string{
            "Treatment of susceptible bacterial infections",
        }
    case supplementCategory.MatchString(category):
        return []string{
            "Nutritional support",
            "Correction of vitamin or mineral deficiencies",
            "Support during recovery from illness",
        }
    }
    return []string{"Inferred: consult a professional for intended therapeutic uses."}
}

func defaultCommonSideEffects(category string) []string {
    switch {
    case strings.Contains(strings.ToLower(category), "antiparasitic"):
        return []string{"Transient lethargy", "Gastrointestinal upset"}
    case strings.Contains(strings.ToLower(category), "antibiotic"):
        return []string{"Gastrointestinal upset", "Reduced appetite"}
    case supplementCategory.MatchString(category):
        return []string{"Mild gastrointestinal upset (rare)"}
    }
    return []string{"Inferred: side-effect profile not established; monitor and consult a professional."}
}

func defaultSeriousSideEffects(category string) []string {
    switch {
    case strings.Contains(strings.ToLower(category), "antiparasitic"):
        return []string{"Neurologic signs in sensitive breeds or with overdose"}
    case strings.Contains(strings.ToLower(category), "antibiotic"):
        return []string{"Severe allergic reaction (rare)"}
    }
    return []string{"Inferred: seek immediate care for any severe or unexpected reaction."}
}
