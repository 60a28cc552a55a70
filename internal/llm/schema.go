package llm

// BuildLabelJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Both fields are optional (missing means "not determined"),
// but when present they must be strings; a model that hallucinates other
// shapes fails validation and the candidate is discarded.
func BuildLabelJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recipient_name":    map[string]any{"type": "string"},
			"recipient_address": map[string]any{"type": "string"},
		},
	}
}
