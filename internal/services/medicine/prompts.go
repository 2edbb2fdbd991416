// File: internal/services/medicine/prompts.go
package medicine

import (
    "fmt"

    "github.com/iyunix/pharma-assist/internal/services/ai"
)

const classifySystemPrompt = `You are a STRICT JSON-only classifier. Output EXACTLY ONE JSON object and NOTHING ELSE.

Schema:
{
  "is_medicine": boolean,
  "normalized_name": string | null,
  "confidence": number,
  "is_veterinary": boolean,
  "intended_species": string[] | null,
  "intended_for": "human" | "veterinary" | "both" | null
}

Rules:
- is_medicine true only when input clearly refers to a medicine, supplement, tonic, or similar product.
- intended_for must be "human", "veterinary", "both", or null.
- If unsure, prefer conservative results and set confidence lower.
- DO NOT output any extra text.`

const detailSystemPrompt = `You are a medical product information extractor. Output EXACTLY ONE JSON object and NOTHING ELSE.

Schema:
{
  "name": string,
  "composition": string,
  "formulation": string,
  "category": string,
  "intended_for": "human" | "veterinary" | "both" | "unknown",
  "is_veterinary": boolean,
  "intended_species": string[] | null,
  "target_population": string[] | null,
  "uses": string[],
  "common_side_effects": string[],
  "serious_side_effects": string[],
  "contraindications": string[],
  "safe_age_groups": string[],
  "pregnancy_and_lactation": string,
  "shelf_life_after_manufacture": string,
  "storage_instructions": string,
  "prescription_required": boolean,
  "dosage_note": string,
  "sources": string[] | null,
  "disclaimer": string
}

Rules:
- Provide a complete record filling every field. Do NOT output "None specified" or leave empty fields.
- If a field is not known from reliable data, provide a CONSERVATIVE inferred phrase starting with "Inferred: ..." that indicates it is an inference — e.g., "Inferred: likely contains B-complex vitamins". This helps downstream UI show inferred vs. KB-backed data.
- intended_for must be one of "human", "veterinary", "both", or "unknown".
- is_veterinary must be true when intended_for is "veterinary" or "both".
- dosage_note must remain non-prescriptive and must NOT include any dosing calculations.
- disclaimer must be exactly: "Not a substitute for professional medical advice."
- Output valid JSON only, nothing else.`

// classifyMessages builds the few-shot message list for one classification
// call. Examples ride along as prior user/assistant turns.
func classifyMessages(query string) []ai.Message {
    messages := []ai.Message{
        {Role: ai.RoleSystem, Content: classifySystemPrompt},
    }
    examples := []struct {
        query  string
        answer string
    }{
        {
            "paracetamol",
            `{"is_medicine":true,"normalized_name":"paracetamol","confidence":0.95,"is_veterinary":false,"intended_species":null,"intended_for":"human"}`,
        },
        {
            "oxytetracycline for cattle",
            `{"is_medicine":true,"normalized_name":"oxytetracycline","confidence":0.95,"is_veterinary":true,"intended_species":["bovine"],"intended_for":"veterinary"}`,
        },
        {
            "brotone s liquid",
            `{"is_medicine":true,"normalized_name":"brotone s liquid","confidence":0.9,"is_veterinary":true,"intended_species":["canine","feline"],"intended_for":"veterinary"}`,
        },
    }
    for _, ex := range examples {
        messages = append(messages,
            ai.Message{Role: ai.RoleUser, Content: ex.query},
            ai.Message{Role: ai.RoleAssistant, Content: ex.answer},
        )
    }
    return append(messages, ai.Message{Role: ai.RoleUser, Content: query})
}

// detailMessages builds the message list for one detail resolution call.
func detailMessages(medicineName string) []ai.Message {
    return []ai.Message{
        {Role: ai.RoleSystem, Content: detailSystemPrompt},
        {Role: ai.RoleUser, Content: fmt.Sprintf("Provide structured information for the product: %q.", medicineName)},
    }
}
