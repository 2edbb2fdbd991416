// File: internal/services/medicine/kb.go
package medicine

import (
    "regexp"
    "strings"

    "github.com/iyunix/pharma-assist/internal/domain"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)
var multiSpace = regexp.MustCompile(`\s+`)

// NormalizeKey canonicalizes a product name for KB lookup: lowercase,
// strip everything that is not a letter, digit or space, collapse runs
// of whitespace.
func NormalizeKey(s string) string {
    s = strings.ToLower(s)
    s = nonAlphanumeric.ReplaceAllString(s, "")
    s = multiSpace.ReplaceAllString(s, " ")
    return strings.TrimSpace(s)
}

// KnowledgeBase holds the curated, trusted medicine records that bypass
// the LLM entirely. Keys are kept in a slice so the containment fallback
// iterates in insertion order and ties resolve deterministically.
type KnowledgeBase struct {
    keys    []string
    entries map[string]*domain.MedicineRecord
}

// Lookup returns a deep copy of the curated record for name, or nil.
// Matching: exact normalized key first, then bidirectional substring
// containment over keys in insertion order. Containment is deliberately
// lenient; short queries can match a longer key and vice versa.
func (kb *KnowledgeBase) Lookup(name string) *domain.MedicineRecord {
    key := NormalizeKey(name)
    if key == "" {
        return nil
    }
    if entry, ok := kb.entries[key]; ok {
        return entry.Clone()
    }
    for _, k := range kb.keys {
        if strings.Contains(key, k) || strings.Contains(k, key) {
            return kb.entries[k].Clone()
        }
    }
    return nil
}

// Keys returns the KB keys in iteration order.
func (kb *KnowledgeBase) Keys() []string {
    out := make([]string, len(kb.keys))
    copy(out, kb.keys)
    return out
}

func (kb *KnowledgeBase) add(key string, entry *domain.MedicineRecord) {
    kb.keys = append(kb.keys, key)
    kb.entries[key] = entry
}

// NewKnowledgeBase builds the curated KB. Entries are hand-written and
// carry Inferred=false; extend with more entries as they are trusted.
func NewKnowledgeBase() *KnowledgeBase {
    kb := &KnowledgeBase{entries: make(map[string]*domain.MedicineRecord)}

    kb.add("brotone s liquid", &domain.MedicineRecord{
        Name:        "Brotone S Liquid",
        Composition: "B-complex vitamins, liver extract, iron (ferrous), amino acids; exact composition varies by manufacturer",
        Formulation: "Liquid",
        Category:    "Nutritional Supplement",
        Uses: []string{
            "Support appetite and weight gain",
            "Correct nutritional deficiencies",
            "Support recovery after illness",
            "Improve energy and general vitality",
        },
        CommonSideEffects: []string{
            "Mild gastrointestinal upset (rare)",
            "Temporary change in stool consistency",
        },
        SeriousSideEffects: []string{
            "Allergic reaction (rare)",
        },
        Contraindications: []string{
            "Known hypersensitivity to any component",
            "Use with caution in animals with severe hepatic disease",
        },
        TargetPopulation:          []string{"pets", "young animals", "adult animals"},
        SafeAgeGroups:             []string{"Puppies", "Kittens", "Adult dogs", "Adult cats"},
        PregnancyAndLactation:     "Use with caution; consult a veterinarian before administration to pregnant or lactating animals.",
        ShelfLifeAfterManufacture: "Varies by manufacturer; check label (commonly ~2 years unopened).",
        StorageInstructions:       "Store in a cool, dry place away from direct sunlight. Keep tightly closed.",
        PrescriptionRequired:      false,
        IsVeterinary:              true,
        IntendedFor:               domain.IntendedForVeterinary,
        IntendedSpecies:           []string{"canine", "feline"},
        DosageNote:                "Dosage varies by species and weight; do NOT calculate doses here — consult a veterinarian.",
        Sources:                   []string{"Manufacturer label"},
        Disclaimer:                domain.Disclaimer,
    })

    kb.add("vitum h liquid", &domain.MedicineRecord{
        Name:        "Vitum H Liquid",
        Composition: "Multivitamin formulation — typically vitamins A, D, E, K, B-complex and minerals; composition varies by manufacturer",
        Formulation: "Liquid",
        Category:    "Nutritional Supplement",
        Uses: []string{
            "Support overall health and well-being",
            "Correct vitamin/mineral deficiencies",
            "Support recovery after illness or poor appetite",
        },
        CommonSideEffects: []string{
            "Rare gastrointestinal upset",
            "Taste disturbance (rare)",
        },
        SeriousSideEffects: []string{
            "Allergic reaction (rare)",
        },
        Contraindications: []string{
            "Known hypersensitivity to any component",
            "Caution in patients with hypervitaminosis or specific mineral overload conditions",
        },
        TargetPopulation:          []string{"humans", "children and adults depending on formulation"},
        SafeAgeGroups:             []string{"Children (age-specific formulations)", "Adults"},
        PregnancyAndLactation:     "Use only as advised by a healthcare professional; some vitamins require caution in pregnancy.",
        ShelfLifeAfterManufacture: "Varies by manufacturer; check label.",
        StorageInstructions:       "Store in a cool, dry place away from direct sunlight. Keep tightly closed.",
        PrescriptionRequired:      false,
        IsVeterinary:              false,
        IntendedFor:               domain.IntendedForHuman,
        IntendedSpecies:           nil,
        DosageNote:                "Dosage varies by age and formulation; consult a healthcare professional for exact dosing.",
        Sources:                   []string{"Manufacturer label"},
        Disclaimer:                domain.Disclaimer,
    })

    kb.add("enrofloxacin", &domain.MedicineRecord{
        Name:            "Enrofloxacin",
        Composition:     "Enrofloxacin (concentration varies by formulation; e.g., 100 mg tablet, 100 mg/ml injectable solution)",
        Formulation:     "Oral tablet, Injectable solution, Topical solution",
        Category:        "Antibiotic (Fluoroquinolone)",
        IntendedFor:     domain.IntendedForVeterinary,
        IsVeterinary:    true,
        IntendedSpecies: []string{"canine", "feline", "bovine", "ovine", "caprine", "porcine"},
        TargetPopulation: []string{
            "adult animals", "juveniles (with breed/age cautions)",
        },
        Uses: []string{
            "Treatment of bacterial infections (respiratory tract, urinary tract, skin and soft tissue)",
            "Treatment of gastrointestinal bacterial infections where fluoroquinolones are indicated",
            "Treatment of wound and post-surgical infections (as per veterinary guidance)",
        },
        CommonSideEffects: []string{
            "Vomiting",
            "Diarrhea",
            "Lethargy",
            "Decreased appetite",
        },
        SeriousSideEffects: []string{
            "Seizures or other neurologic signs (rare; higher risk in animals with seizure history)",
            "Tendon/joint/cartilage effects in growing animals (young animals risk)",
            "Phototoxicity (skin sensitivity to light in some cases)",
            "Severe allergic reaction (rare)",
        },
        Contraindications: []string{
            "Known hypersensitivity to enrofloxacin or other fluoroquinolones",
            "Use in very young animals where cartilage development concerns apply (follow specific product labeling)",
            "Animals with a history of seizures or central nervous system disorders",
            "Concurrent use with drugs known to lower seizure threshold unless under strict veterinary supervision",
        },
        SafeAgeGroups: []string{
            "Adults",
            "Juveniles — use with caution; follow veterinary guidance and product labeling",
        },
        PregnancyAndLactation:     "Use only if clearly indicated and under veterinary direction; assess risk/benefit—some fluoroquinolones are avoided in pregnancy/lactation depending on species.",
        ShelfLifeAfterManufacture: "Varies by manufacturer and formulation; check product label (commonly 2–3 years unopened for tablets; solutions vary).",
        StorageInstructions:       "Store below 25–30°C, protect from light; follow label instructions for injectable storage and discard opened/expired solutions per manufacturer guidance.",
        PrescriptionRequired:      true,
        DosageNote:                "Strictly weight- and species-based dosing. Dose and regimen must be prescribed by a licensed veterinarian. Do NOT use inferred doses.",
        Sources: []string{
            "Plumb's Veterinary Drug Handbook",
            "Product label / manufacturer datasheet",
        },
        Disclaimer: domain.Disclaimer,
    })

    kb.add("ivermectin injection 1%", &domain.MedicineRecord{
        Name:             "Ivermectin Injection 1%",
        Composition:      "Ivermectin 10 mg per ml",
        Formulation:      "Injection",
        Category:         "Antiparasitic",
        IntendedFor:      domain.IntendedForVeterinary,
        IsVeterinary:     true,
        IntendedSpecies:  []string{"bovine", "ovine", "caprine", "canine"},
        TargetPopulation: []string{"livestock", "dogs (specific formulations only)"},
        Uses: []string{
            "Treatment of internal parasites (roundworms)",
            "Treatment of external parasites (mites, lice)",
            "Control of mange",
        },
        CommonSideEffects: []string{
            "Temporary swelling at injection site",
        },
        SeriousSideEffects: []string{
            "Neurotoxicity (especially in certain dog breeds like Collies)",
            "Hypersalivation",
            "Ataxia",
        },
        Contraindications: []string{
            "Do not use in Collies or MDR1-deficient dogs",
            "Avoid use in very young animals",
            "Do not use with other neurotoxic drugs",
        },
        SafeAgeGroups:             []string{"Adults", "Young livestock"},
        PregnancyAndLactation:     "Generally safe but use only under veterinary supervision.",
        ShelfLifeAfterManufacture: "3 years unopened",
        StorageInstructions:       "Store below 25°C, protect from light.",
        PrescriptionRequired:      true,
        DosageNote:                "Strictly weight-based dosing. Must ONLY be administered by a veterinarian.",
        Sources:                   []string{"Veterinary drug handbook", "Label information"},
        Disclaimer:                domain.Disclaimer,
    })

    kb.add("meloxicam oral suspension (veterinary)", &domain.MedicineRecord{
        Name:             "Meloxicam Oral Suspension (Veterinary)",
        Composition:      "Meloxicam 1.5 mg/ml or 0.5 mg/ml depending on formulation",
        Formulation:      "Oral Suspension",
        Category:         "NSAID (Anti-Inflammatory)",
        IntendedFor:      domain.IntendedForVeterinary,
        IsVeterinary:     true,
        IntendedSpecies:  []string{"canine", "feline"},
        TargetPopulation: []string{"adult dogs", "adult cats"},
        Uses: []string{
            "Pain relief",
            "Post-operative inflammation",
            "Musculoskeletal disorders",
            "Arthritis management",
        },
        CommonSideEffects: []string{
            "Vomiting",
            "Diarrhea",
            "Loss of appetite",
        },
        SeriousSideEffects: []string{
            "Kidney damage (overdose or prolonged use)",
            "Gastrointestinal ulceration",
        },
        Contraindications: []string{
            "Dehydration",
            "Renal disease",
            "Concurrent NSAID or steroid use",
        },
        SafeAgeGroups:             []string{"Adults only"},
        PregnancyAndLactation:     "Use with caution; consult veterinarian.",
        ShelfLifeAfterManufacture: "Varies by manufacturer; check label.",
        StorageInstructions:       "Store below 25°C.",
        PrescriptionRequired:      true,
        DosageNote:                "Strict weight-based dosing; must be prescribed by a veterinarian.",
        Sources:                   []string{"Veterinary NSAID handbook", "Product label"},
        Disclaimer:                domain.Disclaimer,
    })

    kb.add("calcium pet tonic", &domain.MedicineRecord{
        Name:             "Calcium Pet Tonic",
        Composition:      "Calcium, Phosphorus, Vitamin D3; formulation varies by manufacturer",
        Formulation:      "Liquid",
        Category:         "Nutritional Supplement",
        IntendedFor:      domain.IntendedForVeterinary,
        IsVeterinary:     true,
        IntendedSpecies:  []string{"canine", "feline"},
        TargetPopulation: []string{"puppies", "kittens", "adult dogs", "cats"},
        Uses: []string{
            "Supports bone growth",
            "Improves calcium levels",
            "Useful during pregnancy and lactation",
            "Supports overall musculoskeletal health",
        },
        CommonSideEffects: []string{
            "Mild constipation (rare)",
            "Gastrointestinal upset",
        },
        SeriousSideEffects: []string{
            "Hypercalcemia (overdose risk)",
        },
        Contraindications: []string{
            "Hypercalcemia",
            "Vitamin D toxicity",
        },
        SafeAgeGroups:             []string{"All age groups (dose varies)"},
        PregnancyAndLactation:     "Commonly used; consult veterinarian for correct dosing.",
        ShelfLifeAfterManufacture: "2 years (varies)",
        StorageInstructions:       "Store in a cool, dry place.",
        PrescriptionRequired:      false,
        DosageNote:                "Dosing depends on age and body weight; follow veterinarian advice.",
        Sources:                   []string{"Veterinary nutritional guides"},
        Disclaimer:                domain.Disclaimer,
    })

    kb.add("multistar pet tonic", &domain.MedicineRecord{
        Name:             "Multistar Pet Tonic",
        Composition:      "B-complex vitamins, Vitamin A, D3, E, amino acids, minerals",
        Formulation:      "Liquid",
        Category:         "Nutritional Supplement",
        IntendedFor:      domain.IntendedForVeterinary,
        IsVeterinary:     true,
        IntendedSpecies:  []string{"canine", "feline"},
        TargetPopulation: []string{"puppies", "kittens", "adult dogs", "adult cats"},
        Uses: []string{
            "Supports immunity",
            "Improves appetite",
            "Enhances metabolism",
            "Promotes healthy skin and coat",
        },
        CommonSideEffects: []string{
            "Mild gastrointestinal upset",
        },
        SeriousSideEffects: []string{
            "Allergic reaction to specific vitamins (rare)",
        },
        Contraindications: []string{
            "Vitamin hypersensitivity",
            "Hypervitaminosis A or D",
        },
        SafeAgeGroups:             []string{"All ages (with dosing adjustment)"},
        PregnancyAndLactation:     "Generally safe; use under veterinary guidance.",
        ShelfLifeAfterManufacture: "2–3 years",
        StorageInstructions:       "Store in a cool and dry place.",
        PrescriptionRequired:      false,
        DosageNote:                "Dose varies with weight and age; consult a veterinarian.",
        Sources:                   []string{"Veterinary nutritional guide"},
        Disclaimer:                domain.Disclaimer,
    })

    return kb
}
