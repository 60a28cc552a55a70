package llm

import (
	"strings"
)

// BuildPrompt composes the fixed system instruction with the normalized OCR
// text. The instruction pins the model to deterministic, strict-JSON output;
// decoding still happens leniently in ParseCandidate because small local
// models routinely wrap the JSON in prose anyway.
func BuildPrompt(normalizedText string) string {
	parts := []string{
		"You are an OCR shipping-label parser.",
		"",
		"Extract the REAL HUMAN RECIPIENT NAME",
		"and the PRIMARY DELIVERY ADDRESS.",
		"",
		"Rules:",
		"- Ignore tracking numbers, phone numbers, weights",
		"- Ignore sender/billing/company information",
		"- Name must be a real person",
		"- Address must include street + city + state + ZIP",
		"- If unsure, return empty string",
		"",
		"Return STRICT JSON only.",
		"",
		"Format:",
		"{",
		`  "recipient_name": "",`,
		`  "recipient_address": ""`,
		"}",
		"",
		"OCR TEXT:",
		normalizedText,
	}
	return strings.Join(parts, "\n")
}
