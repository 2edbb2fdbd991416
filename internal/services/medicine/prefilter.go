// File: internal/services/medicine/prefilter.go
package medicine

import (
    "regexp"
    "strings"
)

// medKeywords is the fixed vocabulary of medicine-domain tokens used to
// gate LLM classification. A query matching none of these (and no dose
// pattern) is rejected without spending an API call.
var medKeywords = []string{
    "mg", "ml", "tablet", "syrup", "capsule", "injection", "ointment", "cream",
    "antibiotic", "analgesic", "vaccine", "antacid", "antihistamine",
    "paracetamol", "ibuprofen", "aspirin", "metformin", "insulin",
    "doxycycline", "amoxicillin", "antipsychotic", "antidepressant",
    "dose", "eye drop", "eye-drop", "liquid",
    "veterinary", "vet", "for dogs", "for cats", "for horses", "for cattle",
    "for poultry", "equine", "bovine", "canine", "feline", "avian",
    "tonic", "tonics", "nutritional tonic", "herbal tonic", "animal tonic", "electrolyte",
    "poultry tonic", "cattle tonic", "livestock", "brotone", "vitum",
    "enrofloxacin", "ivermectin", "meloxicam", "calcium",
}

// tonicKeywords marks supplement/tonic cues used by the category and
// intended_for inference rules.
var tonicKeywords = []string{
    "tonic", "tonics", "nutritional tonic", "herbal tonic", "animal tonic",
    "syrup", "liquid", "brotone", "vitum",
}

var dosePattern = regexp.MustCompile(`(?i)\b\d+\s*(mg|ml|mcg|g|iu)\b`)

// containsAnyToken reports whether s contains any of tokens,
// case-insensitively.
func containsAnyToken(s string, tokens []string) bool {
    if s == "" || len(tokens) == 0 {
        return false
    }
    lower := strings.ToLower(s)
    for _, t := range tokens {
        if strings.Contains(lower, strings.ToLower(t)) {
            return true
        }
    }
    return false
}

// LooksLikeMedicineQuery reports whether free text is plausibly about a
// medicine: any domain token or a numeric dose pattern. Pure function,
// used only to bound LLM spend.
func LooksLikeMedicineQuery(text string) bool {
    if strings.TrimSpace(text) == "" {
        return false
    }
    return containsAnyToken(text, medKeywords) || dosePattern.MatchString(text)
}
