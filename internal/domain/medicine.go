// File: internal/domain/medicine.go
package domain

// Disclaimer is the fixed disclaimer attached to every medicine record.
// The detail prompt pins the model to this exact string and the
// reconciliation pass overwrites whatever comes back with it.
const Disclaimer = "Not a substitute for professional medical advice."

// IntendedFor enumerates who a product is meant for.
type IntendedFor string

const (
    IntendedForHuman      IntendedFor = "human"
    IntendedForVeterinary IntendedFor = "veterinary"
    IntendedForBoth       IntendedFor = "both"
    IntendedForUnknown    IntendedFor = "unknown"
)

// ValidIntendedFor reports whether s is one of the accepted enum values.
func ValidIntendedFor(s string) bool {
    switch IntendedFor(s) {
    case IntendedForHuman, IntendedForVeterinary, IntendedForBoth, IntendedForUnknown:
        return true
    }
    return false
}

// ClassificationResult is the classifier's verdict for a single query.
// It is built fresh per request and never persisted on its own.
type ClassificationResult struct {
    IsMedicine      bool        `json:"is_medicine"`
    NormalizedName  string      `json:"normalized_name,omitempty"`
    Confidence      float64     `json:"confidence"`
    IsVeterinary    bool        `json:"is_veterinary"`
    IntendedSpecies []string    `json:"intended_species,omitempty"`
    IntendedFor     IntendedFor `json:"intended_for,omitempty"`
}

// InferenceNote records one field the resolver had to fill in itself.
// InferredValue carries whatever shape the field has (string, list, bool
// or nil), matching the field it annotates.
type InferenceNote struct {
    Field         string `json:"field"`
    Reason        string `json:"reason"`
    InferredValue any    `json:"inferred_value"`
}

// MedicineRecord is the canonical structured description of a medicine.
// Invariant: every slice field is non-nil and non-empty on any record
// returned by the resolver; unknown data is an "Inferred: ..." placeholder,
// never an absent field.
type MedicineRecord struct {
    Name                      string      `json:"name"`
    Composition               string      `json:"composition"`
    Formulation               string      `json:"formulation"`
    Category                  string      `json:"category"`
    IntendedFor               IntendedFor `json:"intended_for"`
    IsVeterinary              bool        `json:"is_veterinary"`
    IntendedSpecies           []string    `json:"intended_species"`
    TargetPopulation          []string    `json:"target_population"`
    Uses                      []string    `json:"uses"`
    CommonSideEffects         []string    `json:"common_side_effects"`
    SeriousSideEffects        []string    `json:"serious_side_effects"`
    Contraindications         []string    `json:"contraindications"`
    SafeAgeGroups             []string    `json:"safe_age_groups"`
    PregnancyAndLactation     string      `json:"pregnancy_and_lactation"`
    ShelfLifeAfterManufacture string      `json:"shelf_life_after_manufacture"`
    StorageInstructions       string      `json:"storage_instructions"`
    PrescriptionRequired      bool        `json:"prescription_required"`
    DosageNote                string      `json:"dosage_note"`
    Sources                   []string    `json:"sources"`
    Disclaimer                string      `json:"disclaimer"`

    Inferred       bool            `json:"_inferred"`
    InferenceNotes []InferenceNote `json:"_inference_notes"`
}

// Clone returns a deep, independent copy. Callers of the KB receive clones
// so they can mutate freely without corrupting curated entries.
func (m *MedicineRecord) Clone() *MedicineRecord {
    if m == nil {
        return nil
    }
    out := *m
    out.IntendedSpecies = cloneStrings(m.IntendedSpecies)
    out.TargetPopulation = cloneStrings(m.TargetPopulation)
    out.Uses = cloneStrings(m.Uses)
    out.CommonSideEffects = cloneStrings(m.CommonSideEffects)
    out.SeriousSideEffects = cloneStrings(m.SeriousSideEffects)
    out.Contraindications = cloneStrings(m.Contraindications)
    out.SafeAgeGroups = cloneStrings(m.SafeAgeGroups)
    out.Sources = cloneStrings(m.Sources)
    if m.InferenceNotes != nil {
        out.InferenceNotes = make([]InferenceNote, len(m.InferenceNotes))
        copy(out.InferenceNotes, m.InferenceNotes)
    }
    return &out
}

func cloneStrings(in []string) []string {
    if in == nil {
        return nil
    }
    out := make([]string, len(in))
    copy(out, in)
    return out
}
